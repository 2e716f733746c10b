// Package dag turns a component registration table into a validated
// dependency graph and linearizes it.
//
// Build normalizes every table entry into a node carrying its ordered
// dependency bindings and checks that each referenced name exists. Sort runs
// Kahn's algorithm with a FIFO ready queue seeded in declaration order, so
// the same table always yields the same Order. Components left unresolved
// when the queue drains form at least one cycle and are reported through a
// CycleError rather than dropped.
package dag
