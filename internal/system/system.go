package system

import (
	"context"
	"fmt"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/dag"
	"github.com/specialistvlad/compgrid/internal/lifecycle"
)

// System is a fully constructed, not yet activated set of components.
type System struct {
	Graph     *dag.Graph
	Order     dag.Order
	Instances component.InstanceMap
}

// Build validates the table, derives the order and constructs every
// component. Graph and order errors are returned before any factory runs.
func Build(ctx context.Context, table *component.Table) (*System, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "components", table.Len())

	g, err := dag.Build(table)
	if err != nil {
		return nil, fmt.Errorf("error validating dependency graph: %w", err)
	}
	logger.Debug("Build: Dependency validation passed.")

	order, err := g.Sort()
	if err != nil {
		return nil, fmt.Errorf("error ordering dependency graph: %w", err)
	}
	logger.Debug("Build: Order resolved.", "order", []string(order))

	instances, err := Assemble(ctx, g, order)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Assembly complete.")

	return &System{Graph: g, Order: order, Instances: instances}, nil
}

// Activate opens the system's components in order, runs fn with the
// activated map and closes everything in reverse order when fn returns.
func (s *System) Activate(ctx context.Context, fn func(ctx context.Context, active component.ActivatedMap) error) error {
	return lifecycle.Activate(ctx, s.Instances, s.Order, fn)
}
