package dag

import (
	"fmt"

	"github.com/specialistvlad/compgrid/internal/component"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// Build normalizes a registration table into a Graph. It fails fast with a
// MissingDependencyError on the first dependency that names no component.
// No factory is invoked.
func Build(table *component.Table) (*Graph, error) {
	g := New()
	specs := table.Specs()

	for _, spec := range specs {
		g.AddNode(spec.Name, spec.Factory, spec.Dependencies)
	}

	for _, spec := range specs {
		for _, b := range spec.Dependencies {
			if err := g.AddEdge(b.Name, spec.Name); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// AddNode adds a new node to the graph. If a node with the same name already
// exists, the function does nothing.
func (g *Graph) AddNode(id string, factory component.Factory, bindings component.DependencySpec) {
	if _, ok := g.nodes[id]; ok {
		return
	}

	g.nodes[id] = &node{
		id:       id,
		index:    len(g.names),
		factory:  factory,
		bindings: bindings,
	}
	g.names = append(g.names, id)
}

// AddEdge records that toID depends on fromID. A self-referencing edge is
// accepted here and surfaces as a cycle in Sort.
func (g *Graph) AddEdge(fromID, toID string) error {
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("component not found: %s", toID)
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return &MissingDependencyError{Component: toID, Missing: fromID}
	}

	toNode.deps = append(toNode.deps, fromNode)
	fromNode.dependents = append(fromNode.dependents, toNode)
	return nil
}

// Len returns the number of components in the graph.
func (g *Graph) Len() int {
	return len(g.names)
}

// Names returns all component names in declaration order.
func (g *Graph) Names() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)
	return out
}

// Has reports whether the graph contains a component.
func (g *Graph) Has(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Dependencies returns the names a component depends on, in binding order.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("component not found: %s", id)
	}
	return ids(n.deps), nil
}

// Dependents returns the names depending on a component, in declaration order.
func (g *Graph) Dependents(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("component not found: %s", id)
	}
	return ids(n.dependents), nil
}

// Bindings returns the dependency bindings (name and alias) of a component.
func (g *Graph) Bindings(id string) (component.DependencySpec, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("component not found: %s", id)
	}
	out := make(component.DependencySpec, len(n.bindings))
	copy(out, n.bindings)
	return out, nil
}

// Aliases returns the dependency name to local alias map of a component.
func (g *Graph) Aliases(id string) (map[string]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("component not found: %s", id)
	}
	out := make(map[string]string, len(n.bindings))
	for _, b := range n.bindings {
		out[b.Name] = b.Alias
	}
	return out, nil
}

// Factory returns the factory of a component.
func (g *Graph) Factory(id string) (component.Factory, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("component not found: %s", id)
	}
	return n.factory, nil
}

func ids(nodes []*node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.id
	}
	return out
}
