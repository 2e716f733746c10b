package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/compgrid/internal/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetInput struct {
	Name string `hcl:"name"`
}

func greetKind() *Kind {
	return NewKind("greet", "Says hello.", func(_ context.Context, in *greetInput, _ component.Deps) (any, error) {
		return "hello " + in.Name, nil
	})
}

func TestRegisterKind(t *testing.T) {
	r := New()
	r.RegisterKind(greetKind())
	r.RegisterKind(&Kind{Type: "const", Create: func(context.Context, any, component.Deps) (any, error) { return 1, nil }})

	assert.Equal(t, []string{"const", "greet"}, r.Types())

	k, ok := r.Kind("greet")
	require.True(t, ok)
	in := k.NewInput().(*greetInput)
	in.Name = "bob"
	v, err := k.Create(context.Background(), in, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello bob", v)

	_, ok = r.Kind("missing")
	assert.False(t, ok)
}

func TestRegisterKind_Panics(t *testing.T) {
	r := New()
	r.RegisterKind(greetKind())

	assert.PanicsWithValue(t, "component kind 'greet' already registered", func() { r.RegisterKind(greetKind()) })
	assert.Panics(t, func() { r.RegisterKind(&Kind{}) })
	assert.Panics(t, func() { r.RegisterKind(&Kind{Type: "x"}) })
}

func TestNewKind_WrongInputType(t *testing.T) {
	_, err := greetKind().Create(context.Background(), "not a pointer", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `kind "greet"`)
}

func TestValidate(t *testing.T) {
	create := func(context.Context, any, component.Deps) (any, error) { return nil, nil }

	r := New()
	r.RegisterKind(greetKind())
	r.RegisterKind(&Kind{Type: "no_args", Create: create})
	require.NoError(t, r.Validate(context.Background()))

	type untagged struct {
		Name string
	}
	r.RegisterKind(&Kind{Type: "bad_value", NewInput: func() any { return greetInput{} }, Create: create})
	r.RegisterKind(&Kind{Type: "bad_tags", NewInput: func() any { return new(untagged) }, Create: create})

	err := r.Validate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kind 'bad_value': input factory must return a non-nil pointer to a struct")
	assert.Contains(t, err.Error(), "kind 'bad_tags': input field 'Name' has no hcl tag")
}
