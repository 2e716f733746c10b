package lifecycle

import (
	"context"
	"fmt"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/dag"
)

type state int

const (
	unopened state = iota
	opened
	closed
)

// entry is one component the scope has opened.
type entry struct {
	name      string
	lifecycle component.Lifecycle // nil for plain instances
	state     state
}

// scope is the state of a single Activate call: the prefix of the order that
// has been opened so far. It is never shared between calls.
type scope struct {
	entries []*entry
}

// open opens instances in order until one fails or the context is done.
func (s *scope) open(ctx context.Context, instances component.InstanceMap, order dag.Order) (component.ActivatedMap, error) {
	logger := ctxlog.FromContext(ctx)
	active := make(component.ActivatedMap, len(order))

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			logger.Warn("Context canceled, aborting activation.", "component", name)
			return nil, fmt.Errorf("activation canceled before opening %q: %w", name, err)
		}

		inst, ok := instances[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNoInstance, name)
		}

		if inst.Kind() == component.KindPlain {
			logger.Debug("Binding plain component.", "component", name)
			s.entries = append(s.entries, &entry{name: name, state: opened})
			active[name] = inst.Value()
			continue
		}

		e := &entry{name: name, lifecycle: inst.Lifecycle(), state: unopened}
		logger.Info("▶️ Opening component", "component", name)
		v, err := e.lifecycle.Open(ctx)
		if err != nil {
			logger.Error("Component failed to open.", "component", name, "error", err)
			return nil, err
		}
		e.state = opened
		s.entries = append(s.entries, e)
		active[name] = v
		logger.Info("✅ Component opened", "component", name)
	}

	return active, nil
}

// close closes every opened entry in reverse order. Entries already closed
// are skipped, so a second call is a no-op. Closing uses a context that is
// not canceled with ctx. A panicking Close is recorded as a CloseError and
// the remaining entries are still closed; the first panic value is returned.
func (s *scope) close(ctx context.Context) (errs []error, panicked any) {
	logger := ctxlog.FromContext(ctx)
	closeCtx := context.WithoutCancel(ctx)

	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.state != opened {
			continue
		}
		e.state = closed

		if e.lifecycle == nil {
			continue
		}

		logger.Info("🔥 Closing component", "component", e.name)
		r, err := closeEntry(closeCtx, e)
		if r != nil && panicked == nil {
			panicked = r
		}
		if err != nil {
			logger.Error("Component failed to close.", "component", e.name, "error", err)
			errs = append(errs, &CloseError{Component: e.name, Err: err})
		}
	}
	return errs, panicked
}

func closeEntry(ctx context.Context, e *entry) (panicked any, err error) {
	defer func() {
		if r := recover(); r != nil {
			panicked = r
			err = fmt.Errorf("panic during close: %v", r)
		}
	}()
	return nil, e.lifecycle.Close(ctx)
}
