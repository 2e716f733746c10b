package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/config"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/modules/healthcheck"
)

// HealthcheckComponent is the name of the component added when a
// healthcheck port is configured.
const HealthcheckComponent = "_healthcheck"

// Compose turns the loaded model into a registration table. Every
// component's arguments are decoded here, so configuration errors surface
// before any factory runs.
func (a *App) Compose(ctx context.Context) (*component.Table, error) {
	logger := ctxlog.FromContext(ctx)
	tbl := component.NewTable()

	if a.config.HealthcheckPort > 0 {
		spec, err := a.healthcheckSpec()
		if err != nil {
			return nil, err
		}
		if err := tbl.Add(spec); err != nil {
			return nil, err
		}
		logger.Debug("Implicit health check component added.", "port", a.config.HealthcheckPort)
	}

	for _, c := range a.model.Components {
		spec, err := a.composeOne(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("component %q in %s: %w", c.Name, c.Source, err)
		}
		if err := tbl.Add(spec); err != nil {
			return nil, fmt.Errorf("in %s: %w", c.Source, err)
		}
		logger.Debug("Component composed.", "component", c.Name, "type", c.Type)
	}

	return tbl, nil
}

func (a *App) composeOne(ctx context.Context, c *config.Component) (component.Spec, error) {
	kind, ok := a.registry.Kind(c.Type)
	if !ok {
		return component.Spec{}, fmt.Errorf("unknown component type %q", c.Type)
	}

	var input any
	if kind.NewInput != nil {
		input = kind.NewInput()
		if err := a.converter.DecodeArguments(ctx, c.Arguments, input); err != nil {
			return component.Spec{}, err
		}
	} else if c.Arguments != nil {
		// Rejects any attribute in a kind that takes none.
		if err := a.converter.DecodeArguments(ctx, c.Arguments, &struct{}{}); err != nil {
			return component.Spec{}, err
		}
	}

	deps := append(component.DependsOn(c.DependsOn...), component.Aliased(c.Uses)...)
	create := kind.Create
	return component.Spec{
		Name: c.Name,
		Factory: func(ctx context.Context, deps component.Deps) (any, error) {
			return create(ctx, input, deps)
		},
		Dependencies: deps,
	}, nil
}

func (a *App) healthcheckSpec() (component.Spec, error) {
	kind, ok := a.registry.Kind("healthcheck")
	if !ok {
		return component.Spec{}, fmt.Errorf("healthcheck port is set but no healthcheck kind is registered")
	}
	input := &healthcheck.Input{Port: a.config.HealthcheckPort}
	create := kind.Create
	return component.Spec{
		Name: HealthcheckComponent,
		Factory: func(ctx context.Context, deps component.Deps) (any, error) {
			return create(ctx, input, deps)
		},
	}, nil
}
