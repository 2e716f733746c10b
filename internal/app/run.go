package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/dag"
	"github.com/specialistvlad/compgrid/internal/system"
)

// Run builds the system and executes it inside one activation scope. Every
// activated component implementing component.Runner runs once, in order.
func (a *App) Run(ctx context.Context) error {
	ctx, logger := ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "run_id", uuid.NewString())
	logger.Debug("App.Run method started.")

	tbl, err := a.Compose(ctx)
	if err != nil {
		return fmt.Errorf("failed to compose components: %w", err)
	}
	if tbl.Len() == 0 {
		logger.Warn("No components found in configuration, nothing to run.")
		return nil
	}

	if a.config.DryRun {
		return a.printPlan(tbl)
	}

	sys, err := system.Build(ctx, tbl)
	if err != nil {
		return fmt.Errorf("failed to build system: %w", err)
	}
	logger.Info("🚀 Activating components...", "count", len(sys.Order))

	err = sys.Activate(ctx, func(ctx context.Context, active component.ActivatedMap) error {
		for _, name := range sys.Order {
			runner, ok := active[name].(component.Runner)
			if !ok {
				continue
			}
			logger.Info("⚙️ Running component", "component", name)
			if err := runner.Run(ctx); err != nil {
				return fmt.Errorf("component %q failed: %w", name, err)
			}
		}

		if a.config.Hold {
			logger.Info("⏸️ Holding components open until interrupted.")
			<-ctx.Done()
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	logger.Info("🏁 Execution finished.")
	return nil
}

// printPlan writes the resolved order without constructing anything.
func (a *App) printPlan(tbl *component.Table) error {
	g, err := dag.Build(tbl)
	if err != nil {
		return fmt.Errorf("failed to build dependency graph: %w", err)
	}
	order, err := g.Sort()
	if err != nil {
		return fmt.Errorf("failed to order dependency graph: %w", err)
	}

	for i, name := range order {
		bindings, err := g.Bindings(name)
		if err != nil {
			return err
		}

		parts := make([]string, 0, len(bindings))
		for _, b := range bindings {
			if b.Alias != b.Name {
				parts = append(parts, fmt.Sprintf("%s as %s", b.Name, b.Alias))
			} else {
				parts = append(parts, b.Name)
			}
		}

		line := fmt.Sprintf("%d. %s", i+1, name)
		if len(parts) > 0 {
			line += " <- " + strings.Join(parts, ", ")
		}
		if _, err := fmt.Fprintln(a.outW, line); err != nil {
			return err
		}
	}
	return nil
}
