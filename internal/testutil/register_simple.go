package testutil

import "github.com/specialistvlad/compgrid/internal/registry"

// SimpleModule is a test helper for registering ad-hoc kinds.
type SimpleModule struct {
	Kinds []*registry.Kind
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, k := range m.Kinds {
		r.RegisterKind(k)
	}
}
