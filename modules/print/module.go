package print

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct {
	// Out receives printed lines. Defaults to os.Stdout.
	Out io.Writer
}

// Input defines the arguments for the print kind.
type Input struct {
	Message string            `hcl:"message,optional"`
	Values  map[string]string `hcl:"values,optional"`
}

// Printer writes its message, values and injected dependencies when run.
type Printer struct {
	out   io.Writer
	input *Input
	deps  component.Deps
}

func (m *Module) newPrinter(_ context.Context, input *Input, deps component.Deps) (any, error) {
	out := m.Out
	if out == nil {
		out = os.Stdout
	}
	return &Printer{out: out, input: input, deps: deps}, nil
}

// Run prints the message followed by values and dependencies, each sorted
// by key for consistent output.
func (p *Printer) Run(ctx context.Context) error {
	ctxlog.FromContext(ctx).Info("Printing input")

	if p.input.Message != "" {
		if _, err := fmt.Fprintln(p.out, p.input.Message); err != nil {
			return err
		}
	}

	for _, k := range sortedKeys(p.input.Values) {
		if _, err := fmt.Fprintf(p.out, "      %s = %q\n", k, p.input.Values[k]); err != nil {
			return err
		}
	}

	for _, k := range sortedKeys(p.deps) {
		if _, err := fmt.Fprintf(p.out, "      %s = %v\n", k, p.deps[k]); err != nil {
			return err
		}
	}

	if p.input.Message == "" && len(p.input.Values) == 0 && len(p.deps) == 0 {
		_, err := fmt.Fprintln(p.out, "      (null)")
		return err
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Register registers the kind with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterKind(registry.NewKind("print", "Prints a message, values and injected dependencies.", m.newPrinter))
}
