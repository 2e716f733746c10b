package print

import (
	"bytes"
	"context"
	"testing"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/specialistvlad/compgrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	testCases := []struct {
		name  string
		input *Input
		deps  component.Deps
		want  string
	}{
		{
			name:  "empty",
			input: &Input{},
			want:  "      (null)\n",
		},
		{
			name:  "message and sorted values",
			input: &Input{Message: "done", Values: map[string]string{"b": "2", "a": "1"}},
			want:  "done\n      a = \"1\"\n      b = \"2\"\n",
		},
		{
			name:  "dependencies",
			input: &Input{},
			deps:  component.Deps{"env": "prod"},
			want:  "      env = prod\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			m := &Module{Out: &out}
			r := registry.New()
			m.Register(r)

			k, ok := r.Kind("print")
			require.True(t, ok)
			v, err := k.Create(context.Background(), tc.input, tc.deps)
			require.NoError(t, err)

			runner, ok := v.(component.Runner)
			require.True(t, ok)
			require.NoError(t, runner.Run(context.Background()))
			assert.Equal(t, tc.want, out.String())
		})
	}
}
