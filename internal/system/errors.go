package system

import (
	"errors"
	"fmt"
)

// ErrAssemblyInvariant is matched by AssemblyInvariantError.
var ErrAssemblyInvariant = errors.New("assembly invariant violated")

// AssemblyInvariantError signals that an order and its graph disagree. It
// points at a bug in the sorter or in the caller, never at user configuration.
type AssemblyInvariantError struct {
	Component string
	Detail    string
}

func (e *AssemblyInvariantError) Error() string {
	return fmt.Sprintf("%s at component %q: %s", ErrAssemblyInvariant, e.Component, e.Detail)
}

func (e *AssemblyInvariantError) Is(target error) bool {
	return target == ErrAssemblyInvariant
}

// ConstructError wraps a failing factory.
type ConstructError struct {
	Component string
	Err       error
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("constructing component %q: %v", e.Component, e.Err)
}

func (e *ConstructError) Unwrap() error {
	return e.Err
}
