package component

import (
	"context"
	"fmt"
	"sort"
)

// Factory constructs a component from its resolved dependencies. The deps map
// is keyed by the local alias declared for each dependency.
type Factory func(ctx context.Context, deps Deps) (any, error)

// Deps holds the dependency instances handed to a Factory, keyed by alias.
type Deps map[string]any

// Get returns the dependency bound under alias as T.
func Get[T any](deps Deps, alias string) (T, error) {
	var zero T
	raw, ok := deps[alias]
	if !ok {
		return zero, fmt.Errorf("dependency %q was not injected", alias)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("dependency %q has type %T, not %T", alias, raw, zero)
	}
	return v, nil
}

// Binding maps one declared dependency to the alias its consumer expects.
type Binding struct {
	Name  string
	Alias string
}

// DependencySpec is the ordered set of dependencies a component declares.
type DependencySpec []Binding

// DependsOn declares dependencies that are received under their own names.
func DependsOn(names ...string) DependencySpec {
	spec := make(DependencySpec, 0, len(names))
	for _, n := range names {
		spec = append(spec, Binding{Name: n, Alias: n})
	}
	return spec
}

// Aliased declares dependencies that are received under a local alias. The
// map is keyed by dependency name; bindings are ordered by name.
func Aliased(aliases map[string]string) DependencySpec {
	names := make([]string, 0, len(aliases))
	for n := range aliases {
		names = append(names, n)
	}
	sort.Strings(names)

	spec := make(DependencySpec, 0, len(names))
	for _, n := range names {
		spec = append(spec, Binding{Name: n, Alias: aliases[n]})
	}
	return spec
}

// Names returns the dependency names in declaration order.
func (s DependencySpec) Names() []string {
	names := make([]string, len(s))
	for i, b := range s {
		names[i] = b.Name
	}
	return names
}

// validate rejects repeated dependencies and aliases within one spec.
func (s DependencySpec) validate() error {
	names := make(map[string]struct{}, len(s))
	aliases := make(map[string]struct{}, len(s))
	for _, b := range s {
		if b.Name == "" {
			return fmt.Errorf("dependency name cannot be empty")
		}
		if b.Alias == "" {
			return fmt.Errorf("alias for dependency %q cannot be empty", b.Name)
		}
		if _, dup := names[b.Name]; dup {
			return fmt.Errorf("dependency %q declared more than once", b.Name)
		}
		if _, dup := aliases[b.Alias]; dup {
			return fmt.Errorf("alias %q bound more than once", b.Alias)
		}
		names[b.Name] = struct{}{}
		aliases[b.Alias] = struct{}{}
	}
	return nil
}

// Spec is a single entry of the registration table.
type Spec struct {
	Name         string
	Factory      Factory
	Dependencies DependencySpec
}
