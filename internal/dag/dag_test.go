package dag

import (
	"context"
	"errors"
	"testing"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, component.Deps) (any, error) { return nil, nil }

// newTable builds a table from name/deps pairs, failing the test on error.
func newTable(t *testing.T, entries ...entry) *component.Table {
	t.Helper()
	tbl := component.NewTable()
	for _, e := range entries {
		spec := component.Spec{Name: e.name, Factory: noop, Dependencies: component.DependsOn(e.deps...)}
		if e.aliases != nil {
			spec.Dependencies = component.Aliased(e.aliases)
		}
		require.NoError(t, tbl.Add(spec))
	}
	return tbl
}

type entry struct {
	name    string
	deps    []string
	aliases map[string]string
}

func TestNew(t *testing.T) {
	g := New()
	require.NotNil(t, g)
	assert.NotNil(t, g.nodes)
	assert.Empty(t, g.nodes)
	assert.Equal(t, 0, g.Len())
}

func TestAddNode(t *testing.T) {
	g := New()

	g.AddNode("a", noop, nil)
	assert.Len(t, g.nodes, 1)
	nodeA, ok := g.nodes["a"]
	require.True(t, ok)
	assert.Equal(t, "a", nodeA.id)
	assert.Equal(t, 0, nodeA.index)

	g.AddNode("a", noop, nil) // Test idempotency
	assert.Len(t, g.nodes, 1)

	g.AddNode("b", noop, nil)
	assert.Equal(t, []string{"a", "b"}, g.Names())
	assert.Equal(t, 1, g.nodes["b"].index)
}

func TestAddEdge(t *testing.T) {
	t.Run("success case", func(t *testing.T) {
		g := New()
		g.AddNode("a", noop, nil)
		g.AddNode("b", noop, nil)

		err := g.AddEdge("a", "b") // b depends on a
		require.NoError(t, err)

		deps, err := g.Dependencies("b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, deps)

		dependents, err := g.Dependents("a")
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, dependents)
	})

	t.Run("error cases", func(t *testing.T) {
		g := New()
		g.AddNode("a", noop, nil)

		err := g.AddEdge("a", "dne")
		assert.ErrorContains(t, err, "component not found")

		err = g.AddEdge("dne", "a")
		var missing *MissingDependencyError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "a", missing.Component)
		assert.Equal(t, "dne", missing.Missing)
	})
}

func TestBuild(t *testing.T) {
	t.Run("normalizes bindings", func(t *testing.T) {
		g, err := Build(newTable(t,
			entry{name: "init_counter"},
			entry{name: "cfg", deps: []string{"init_counter"}},
			entry{name: "counter", aliases: map[string]string{"cfg": "config", "init_counter": "counter"}},
		))
		require.NoError(t, err)
		assert.Equal(t, 3, g.Len())

		aliases, err := g.Aliases("counter")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"cfg": "config", "init_counter": "counter"}, aliases)

		aliases, err = g.Aliases("cfg")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"init_counter": "init_counter"}, aliases)

		bindings, err := g.Bindings("counter")
		require.NoError(t, err)
		assert.Equal(t, []string{"cfg", "init_counter"}, bindings.Names())

		dependents, err := g.Dependents("init_counter")
		require.NoError(t, err)
		assert.Equal(t, []string{"cfg", "counter"}, dependents)

		f, err := g.Factory("cfg")
		require.NoError(t, err)
		assert.NotNil(t, f)
	})

	t.Run("missing dependency", func(t *testing.T) {
		_, err := Build(newTable(t,
			entry{name: "app", deps: []string{"db"}},
		))
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingDependency))

		var missing *MissingDependencyError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "app", missing.Component)
		assert.Equal(t, "db", missing.Missing)
		assert.Contains(t, err.Error(), `"db"`)
		assert.Contains(t, err.Error(), `"app"`)
	})

	t.Run("reports first missing dependency in declaration order", func(t *testing.T) {
		_, err := Build(newTable(t,
			entry{name: "a", deps: []string{"x"}},
			entry{name: "b", deps: []string{"y"}},
		))
		var missing *MissingDependencyError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "x", missing.Missing)
	})

	t.Run("factories are not invoked", func(t *testing.T) {
		called := false
		tbl := component.NewTable()
		require.NoError(t, tbl.Register("a", func(context.Context, component.Deps) (any, error) {
			called = true
			return nil, nil
		}))
		_, err := Build(tbl)
		require.NoError(t, err)
		assert.False(t, called)
	})

	t.Run("unknown component accessors", func(t *testing.T) {
		g := New()
		_, err := g.Dependencies("x")
		assert.Error(t, err)
		_, err = g.Dependents("x")
		assert.Error(t, err)
		_, err = g.Aliases("x")
		assert.Error(t, err)
		_, err = g.Bindings("x")
		assert.Error(t, err)
		_, err = g.Factory("x")
		assert.Error(t, err)
		assert.False(t, g.Has("x"))
	})
}

func TestOrderHelpers(t *testing.T) {
	o := Order{"a", "b", "c"}
	assert.Equal(t, 1, o.Index("b"))
	assert.Equal(t, -1, o.Index("z"))
	assert.Equal(t, Order{"c", "b", "a"}, o.Reverse())
	assert.Equal(t, Order{"a", "b", "c"}, o, "Reverse must not mutate the receiver")
}
