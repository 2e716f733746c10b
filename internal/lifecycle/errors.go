package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrClose is matched by CloseError.
	ErrClose = errors.New("close failed")

	// ErrNoInstance is returned when the order names a component that has
	// no constructed instance.
	ErrNoInstance = errors.New("no instance for component")
)

// CloseError wraps a failing Close of one component.
type CloseError struct {
	Component string
	Err       error
}

func (e *CloseError) Error() string {
	return fmt.Sprintf("closing component %q: %v", e.Component, e.Err)
}

func (e *CloseError) Unwrap() error {
	return e.Err
}

func (e *CloseError) Is(target error) bool {
	return target == ErrClose
}

// chain returns primary unchanged when there is nothing to add, so callers
// can still compare the original error by identity.
func chain(primary error, secondary []error) error {
	if len(secondary) == 0 {
		return primary
	}
	if primary == nil && len(secondary) == 1 {
		return secondary[0]
	}
	return errors.Join(append([]error{primary}, secondary...)...)
}
