package dag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertValidOrder checks that every dependency precedes its dependent.
func assertValidOrder(t *testing.T, g *Graph, order Order) {
	t.Helper()
	require.Len(t, order, g.Len())
	for _, name := range g.Names() {
		deps, err := g.Dependencies(name)
		require.NoError(t, err)
		for _, d := range deps {
			assert.Less(t, order.Index(d), order.Index(name), "%s must come before %s", d, name)
		}
	}
}

func TestSort(t *testing.T) {
	testCases := []struct {
		name     string
		entries  []entry
		expected Order
	}{
		{
			name:     "empty graph",
			expected: Order{},
		},
		{
			name:     "independent components keep declaration order",
			entries:  []entry{{name: "c"}, {name: "a"}, {name: "b"}},
			expected: Order{"c", "a", "b"},
		},
		{
			name: "system fixture",
			entries: []entry{
				{name: "app", deps: []string{"counter", "cfg", "init_counter"}},
				{name: "init_counter"},
				{name: "cfg", deps: []string{"init_counter"}},
				{name: "counter", aliases: map[string]string{"cfg": "config", "init_counter": "counter"}},
			},
			expected: Order{"init_counter", "cfg", "counter", "app"},
		},
		{
			name: "diamond",
			entries: []entry{
				{name: "top", deps: []string{"left", "right"}},
				{name: "left", deps: []string{"base"}},
				{name: "right", deps: []string{"base"}},
				{name: "base"},
			},
			expected: Order{"base", "left", "right", "top"},
		},
		{
			name: "roots are emitted before later ready nodes",
			entries: []entry{
				{name: "a"},
				{name: "b", deps: []string{"a"}},
				{name: "c"},
			},
			expected: Order{"a", "c", "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := Build(newTable(t, tc.entries...))
			require.NoError(t, err)

			order, err := g.Sort()
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, order); diff != "" {
				t.Errorf("order mismatch (-want +got):\n%s", diff)
			}
			assertValidOrder(t, g, order)
		})
	}
}

func TestSort_Deterministic(t *testing.T) {
	entries := []entry{
		{name: "svc", deps: []string{"db", "cache", "log"}},
		{name: "db", deps: []string{"log", "cfg"}},
		{name: "cache", deps: []string{"cfg"}},
		{name: "log", deps: []string{"cfg"}},
		{name: "cfg"},
		{name: "metrics"},
	}

	g, err := Build(newTable(t, entries...))
	require.NoError(t, err)
	first, err := g.Sort()
	require.NoError(t, err)
	assertValidOrder(t, g, first)

	for i := 0; i < 20; i++ {
		again, err := Build(newTable(t, entries...))
		require.NoError(t, err)
		order, err := again.Sort()
		require.NoError(t, err)
		require.Equal(t, first, order)
	}
}

func TestSort_Cycles(t *testing.T) {
	t.Run("two components depending on each other", func(t *testing.T) {
		g, err := Build(newTable(t,
			entry{name: "a", deps: []string{"b"}},
			entry{name: "b", deps: []string{"a"}},
		))
		require.NoError(t, err)

		order, err := g.Sort()
		assert.Nil(t, order)
		require.True(t, errors.Is(err, ErrCycle))

		var cycle *CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"a", "b"}, cycle.Components)
		assert.Equal(t, []string{"a", "b", "a"}, cycle.Path)
		assert.Contains(t, err.Error(), "a -> b -> a")
	})

	t.Run("self dependency", func(t *testing.T) {
		g, err := Build(newTable(t, entry{name: "a", deps: []string{"a"}}))
		require.NoError(t, err)

		_, err = g.Sort()
		var cycle *CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"a", "a"}, cycle.Path)
	})

	t.Run("nodes downstream of a cycle are unresolved too", func(t *testing.T) {
		g, err := Build(newTable(t,
			entry{name: "ok"},
			entry{name: "consumer", deps: []string{"x"}},
			entry{name: "x", deps: []string{"y", "ok"}},
			entry{name: "y", deps: []string{"x"}},
		))
		require.NoError(t, err)

		_, err = g.Sort()
		var cycle *CycleError
		require.True(t, errors.As(err, &cycle))
		assert.Equal(t, []string{"consumer", "x", "y"}, cycle.Components)
		assert.Equal(t, []string{"x", "y", "x"}, cycle.Path)
	})
}
