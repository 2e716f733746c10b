package dag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingDependency is matched by MissingDependencyError.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrCycle is matched by CycleError.
	ErrCycle = errors.New("dependency cycle detected")
)

// MissingDependencyError reports a component that references a name absent
// from the registration table.
type MissingDependencyError struct {
	Component string
	Missing   string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("dependency %q needed by component %q not found", e.Missing, e.Component)
}

func (e *MissingDependencyError) Is(target error) bool {
	return target == ErrMissingDependency
}

// CycleError reports the components that could not be ordered.
type CycleError struct {
	// Components lists every unresolved component in declaration order.
	Components []string
	// Path is one concrete cycle, first element repeated at the end.
	Path []string
}

func (e *CycleError) Error() string {
	if len(e.Path) > 0 {
		return fmt.Sprintf("%s: %s", ErrCycle, strings.Join(e.Path, " -> "))
	}
	return fmt.Sprintf("%s involving: %s", ErrCycle, strings.Join(e.Components, ", "))
}

func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}
