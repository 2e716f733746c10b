package system

import (
	"context"
	"fmt"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/dag"
)

// Assemble constructs every component of g in the given order. Each factory
// receives the exact values produced by its dependencies' factories.
func Assemble(ctx context.Context, g *dag.Graph, order dag.Order) (component.InstanceMap, error) {
	logger := ctxlog.FromContext(ctx)

	if len(order) != g.Len() {
		return nil, &AssemblyInvariantError{
			Detail: fmt.Sprintf("order has %d components, graph has %d", len(order), g.Len()),
		}
	}

	instances := make(component.InstanceMap, len(order))
	for _, name := range order {
		if _, done := instances[name]; done {
			return nil, &AssemblyInvariantError{Component: name, Detail: "component appears twice in order"}
		}

		factory, err := g.Factory(name)
		if err != nil {
			return nil, &AssemblyInvariantError{Component: name, Detail: err.Error()}
		}
		bindings, err := g.Bindings(name)
		if err != nil {
			return nil, &AssemblyInvariantError{Component: name, Detail: err.Error()}
		}

		deps := make(component.Deps, len(bindings))
		for _, b := range bindings {
			inst, ok := instances[b.Name]
			if !ok {
				return nil, &AssemblyInvariantError{
					Component: name,
					Detail:    fmt.Sprintf("dependency %q is not constructed yet", b.Name),
				}
			}
			deps[b.Alias] = inst.Value()
		}

		logger.Debug("Constructing component.", "component", name, "deps", len(deps))
		v, err := factory(ctx, deps)
		if err != nil {
			return nil, &ConstructError{Component: name, Err: err}
		}

		inst := component.Classify(v)
		instances[name] = inst
		logger.Debug("Component constructed.", "component", name, "kind", inst.Kind().String())
	}

	return instances, nil
}
