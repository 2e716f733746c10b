package component

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run("plain value", func(t *testing.T) {
		inst := Classify(42)
		assert.Equal(t, KindPlain, inst.Kind())
		assert.Equal(t, 42, inst.Value())
		assert.Nil(t, inst.Lifecycle())
	})

	t.Run("lifecycle value", func(t *testing.T) {
		lc := Scoped(func(context.Context) (any, error) { return "opened", nil }, nil)
		inst := Classify(lc)
		assert.Equal(t, KindLifecycle, inst.Kind())
		assert.Same(t, lc, inst.Lifecycle())

		v, err := inst.Lifecycle().Open(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "opened", v)
		assert.NoError(t, inst.Lifecycle().Close(context.Background()))
	})

	t.Run("nil is plain", func(t *testing.T) {
		assert.Equal(t, KindPlain, Classify(nil).Kind())
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "lifecycle", KindLifecycle.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestGet(t *testing.T) {
	deps := Deps{"counter": []int{1}}

	v, err := Get[[]int](deps, "counter")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, v)

	_, err = Get[string](deps, "counter")
	assert.ErrorContains(t, err, "has type []int")

	_, err = Get[int](deps, "missing")
	assert.ErrorContains(t, err, "was not injected")
}

func TestLookup(t *testing.T) {
	m := ActivatedMap{"cnt": 5}

	v, err := Lookup[int](m, "cnt")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = Lookup[int](m, "other")
	assert.ErrorContains(t, err, "is not active")
}
