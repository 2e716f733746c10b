package testutil

import (
	"context"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/registry"
)

// NoOpModule registers a "noop" kind that takes no arguments and builds an
// empty plain value. It is useful for tests about graph shape only.
type NoOpModule struct{}

// Register registers the "noop" kind.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterKind(&registry.Kind{
		Type: "noop",
		Create: func(context.Context, any, component.Deps) (any, error) {
			return struct{}{}, nil
		},
	})
}
