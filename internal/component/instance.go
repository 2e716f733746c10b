package component

import (
	"context"
	"fmt"
)

// Lifecycle is a scoped resource: Open yields the value bound into the
// activated map, Close releases it. Close is called at most once, and only
// after a successful Open.
type Lifecycle interface {
	Open(ctx context.Context) (any, error)
	Close(ctx context.Context) error
}

// Runner is implemented by activated values that perform work while the
// scope is open.
type Runner interface {
	Run(ctx context.Context) error
}

// scoped adapts a pair of functions to Lifecycle.
type scoped struct {
	open  func(ctx context.Context) (any, error)
	close func(ctx context.Context) error
}

func (s *scoped) Open(ctx context.Context) (any, error) { return s.open(ctx) }

func (s *scoped) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// Scoped builds a Lifecycle from an open function and an optional close
// function. It covers the "produce one value, clean up after the scope"
// shape without a dedicated type.
func Scoped(open func(ctx context.Context) (any, error), close func(ctx context.Context) error) Lifecycle {
	return &scoped{open: open, close: close}
}

// Kind tags how an Instance participates in the lifecycle.
type Kind int

const (
	// KindPlain is an opaque value: already open, no-op close.
	KindPlain Kind = iota
	// KindLifecycle is a value with explicit Open and Close.
	KindLifecycle
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindLifecycle:
		return "lifecycle"
	default:
		return "unknown"
	}
}

// Instance is a constructed, not yet opened component.
type Instance struct {
	kind      Kind
	value     any
	lifecycle Lifecycle
}

// Classify wraps a factory result, deciding once whether it is a Lifecycle.
func Classify(v any) Instance {
	if lc, ok := v.(Lifecycle); ok {
		return Instance{kind: KindLifecycle, value: v, lifecycle: lc}
	}
	return Instance{kind: KindPlain, value: v}
}

// Kind returns the instance variant.
func (i Instance) Kind() Kind { return i.kind }

// Value returns the value produced by the factory. This is what dependents
// receive at construction time.
func (i Instance) Value() any { return i.value }

// Lifecycle returns the scoped resource, or nil for plain instances.
func (i Instance) Lifecycle() Lifecycle { return i.lifecycle }

// InstanceMap maps component names to constructed instances.
type InstanceMap map[string]Instance

// ActivatedMap maps component names to opened values. It is only valid
// inside the scope that produced it.
type ActivatedMap map[string]any

// Lookup returns the activated value of a component as T.
func Lookup[T any](m ActivatedMap, name string) (T, error) {
	var zero T
	raw, ok := m[name]
	if !ok {
		return zero, fmt.Errorf("component %q is not active", name)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("component %q has type %T, not %T", name, raw, zero)
	}
	return v, nil
}
