// Package system assembles a validated dependency graph into constructed
// component instances.
//
// Assemble walks an Order left to right. Each factory receives the
// already-constructed instances of its dependencies, bound under the local
// aliases declared in the graph. Build chains graph construction, sorting
// and assembly into the single entry point used by callers that start from a
// registration table.
package system
