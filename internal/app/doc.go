// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// An App loads declared components, composes them into a registration
// table using the kinds provided by its modules, and runs them inside one
// activation scope.
package app
