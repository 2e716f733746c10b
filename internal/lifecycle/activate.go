package lifecycle

import (
	"context"
	"errors"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/dag"
)

// Activate opens instances in order, runs fn with the opened values and
// closes every opened instance in reverse order once fn exits.
//
// An open failure is returned as-is after the components opened before it
// have been closed. Close failures are chained onto the returned error with
// errors.Join; they never stop the remaining closes. A panic raised by an
// Open, a Close or by fn is re-raised after teardown; a panic from fn
// takes precedence over one from a Close.
func Activate(ctx context.Context, instances component.InstanceMap, order dag.Order, fn func(ctx context.Context, active component.ActivatedMap) error) (err error) {
	logger := ctxlog.FromContext(ctx)
	s := &scope{}

	defer func() {
		r := recover()
		closeErrs, closePanic := s.close(ctx)
		if r == nil {
			r = closePanic
		}
		if r != nil {
			for _, ce := range closeErrs {
				var closeErr *CloseError
				if errors.As(ce, &closeErr) {
					logger.Error("Teardown after panic reported an error.", "component", closeErr.Component, "error", closeErr.Err)
				}
			}
			panic(r)
		}
		err = chain(err, closeErrs)
		logger.Debug("Scope closed.", "close_errors", len(closeErrs))
	}()

	active, err := s.open(ctx, instances, order)
	if err != nil {
		logger.Warn("Activation failed, unwinding opened components.", "opened", len(s.entries))
		return err
	}

	logger.Debug("All components opened, entering scope.", "count", len(active))
	return fn(ctx, active)
}
