// Package component defines the data model shared by the composition core:
// the registration table, dependency bindings, factories, and the explicit
// Lifecycle / Plain instance variant.
//
// A component is a named unit with a factory and a set of declared
// dependencies. The factory receives its dependencies keyed by local alias
// and returns either a Lifecycle, whose Open and Close are driven by the
// lifecycle package, or a plain value that needs no teardown.
//
// The package performs no graph work itself; see the dag, system and
// lifecycle packages for the builder, assembler and orchestrator.
package component
