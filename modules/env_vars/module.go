package env_vars

import (
	"context"
	"os"
	"strings"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments for the env_vars kind.
type Input struct {
	// Prefix keeps only variables starting with it. It is not stripped.
	Prefix string `hcl:"prefix,optional"`
}

// Vars is a snapshot of the process environment.
type Vars map[string]string

func newVars(_ context.Context, input *Input, _ component.Deps) (any, error) {
	vars := make(Vars)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 && strings.HasPrefix(pair[0], input.Prefix) {
			vars[pair[0]] = pair[1]
		}
	}
	return vars, nil
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("env_vars", "Snapshot of environment variables.", newVars))
}
