package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration.
type Model struct {
	Components []*Component
}

// Component is the format-agnostic representation of a `component` block.
type Component struct {
	Type string
	Name string
	// DependsOn lists dependencies injected under their own name.
	DependsOn []string
	// Uses maps dependency name to the alias the factory sees.
	Uses map[string]string
	// Arguments is decoded lazily against the kind's input struct.
	Arguments hcl.Body
	// Source is the file the block was declared in.
	Source string
}

// Find returns the component with the given name, or nil.
func (m *Model) Find(name string) *Component {
	for _, c := range m.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}
