package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/compgrid/internal/component"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// CreateFunc builds a component value from its decoded input and injected
// dependencies. The result may implement component.Lifecycle.
type CreateFunc func(ctx context.Context, input any, deps component.Deps) (any, error)

// Kind is the compiled Go side of a component type.
type Kind struct {
	Type        string
	Description string
	// NewInput returns a pointer to a fresh input struct. Nil means the
	// kind takes no arguments.
	NewInput func() any
	Create   CreateFunc
}

// NewKind builds a Kind whose Create receives a typed input.
func NewKind[In any](typ, description string, create func(ctx context.Context, input *In, deps component.Deps) (any, error)) *Kind {
	return &Kind{
		Type:        typ,
		Description: description,
		NewInput:    func() any { return new(In) },
		Create: func(ctx context.Context, input any, deps component.Deps) (any, error) {
			in, ok := input.(*In)
			if !ok {
				return nil, fmt.Errorf("kind %q: input has type %T, not %T", typ, input, in)
			}
			return create(ctx, in, deps)
		},
	}
}

// Registry holds all the registered kinds for a single application instance.
type Registry struct {
	kinds map[string]*Kind
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{kinds: make(map[string]*Kind)}
}

// RegisterKind adds a kind. Registering the same type twice is a
// programming error and panics.
func (r *Registry) RegisterKind(k *Kind) {
	if k == nil || k.Type == "" {
		panic("component kind must have a type")
	}
	if k.Create == nil {
		panic(fmt.Sprintf("component kind '%s' has no create function", k.Type))
	}
	if _, exists := r.kinds[k.Type]; exists {
		panic(fmt.Sprintf("component kind '%s' already registered", k.Type))
	}
	slog.Debug("Registering component kind.", "type", k.Type)
	r.kinds[k.Type] = k
}

// Kind returns the kind registered under typ.
func (r *Registry) Kind(typ string) (*Kind, bool) {
	k, ok := r.kinds[typ]
	return k, ok
}

// Types returns all registered kind types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.kinds))
	for t := range r.kinds {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
