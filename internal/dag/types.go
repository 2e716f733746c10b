package dag

import "github.com/specialistvlad/compgrid/internal/component"

// Graph is the validated, read-only view of a registration table.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by component name.
	nodes map[string]*node
	// names keeps declaration order; it drives tie-breaking in Sort.
	names []string
}

// node represents a single component. It is un-exported to enforce
// interaction with the graph via the public API (using names), not by
// direct struct manipulation.
type node struct {
	id       string
	index    int
	factory  component.Factory
	bindings component.DependencySpec
	// deps holds the nodes this node depends on, in binding order.
	deps []*node
	// dependents holds the nodes depending on this node, in declaration order.
	dependents []*node
}

// Order is a dependency-respecting linearization of all components.
type Order []string

// Index returns the position of name in the order, or -1.
func (o Order) Index(name string) int {
	for i, n := range o {
		if n == name {
			return i
		}
	}
	return -1
}

// Reverse returns a reversed copy of the order.
func (o Order) Reverse() Order {
	out := make(Order, len(o))
	for i, n := range o {
		out[len(o)-1-i] = n
	}
	return out
}
