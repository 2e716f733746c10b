// Package config defines the format-agnostic configuration model for the
// application, along with the core interfaces (Loader, Converter) for
// loading and interpreting configuration from various sources.
//
// The `config.Model` is the input to the app's composition step, which
// turns declared components into a registration table. Concrete
// implementations of the interfaces, such as for HCL, are provided in
// separate packages.
package config
