package component

import (
	"errors"
	"fmt"
)

// ErrDuplicateComponent is returned when two components share a name.
var ErrDuplicateComponent = errors.New("duplicate component")

// Table is the registration table. It keeps declaration order, which the
// sorter uses to break ties between independent components.
type Table struct {
	specs []Spec
	index map[string]int
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add appends a component to the table.
func (t *Table) Add(spec Spec) error {
	if spec.Name == "" {
		return errors.New("component name cannot be empty")
	}
	if spec.Factory == nil {
		return fmt.Errorf("component %q: factory cannot be nil", spec.Name)
	}
	if _, exists := t.index[spec.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateComponent, spec.Name)
	}
	if err := spec.Dependencies.validate(); err != nil {
		return fmt.Errorf("component %q: %w", spec.Name, err)
	}

	t.index[spec.Name] = len(t.specs)
	t.specs = append(t.specs, spec)
	return nil
}

// Register is a shorthand for Add with plain, non-aliased dependencies.
func (t *Table) Register(name string, factory Factory, deps ...string) error {
	return t.Add(Spec{Name: name, Factory: factory, Dependencies: DependsOn(deps...)})
}

// Specs returns the entries in declaration order.
func (t *Table) Specs() []Spec {
	out := make([]Spec, len(t.specs))
	copy(out, t.specs)
	return out
}

// Has reports whether a component with the given name is registered.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Len returns the number of registered components.
func (t *Table) Len() int {
	return len(t.specs)
}
