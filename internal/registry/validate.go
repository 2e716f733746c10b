package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/compgrid/internal/ctxlog"
)

// Validate checks that every kind's input factory yields a pointer to a
// struct whose exported fields all carry an `hcl` tag.
func (r *Registry) Validate(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, typ := range r.Types() {
		k := r.kinds[typ]
		if k.NewInput == nil {
			continue
		}

		input := k.NewInput()
		v := reflect.ValueOf(input)
		if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("kind '%s': input factory must return a non-nil pointer to a struct, got %T", typ, input))
			continue
		}

		st := v.Elem().Type()
		for i := 0; i < st.NumField(); i++ {
			field := st.Field(i)
			if !field.IsExported() {
				continue
			}
			if _, ok := field.Tag.Lookup("hcl"); !ok {
				errs = append(errs, fmt.Sprintf("kind '%s': input field '%s' has no hcl tag", typ, field.Name))
			}
		}
		logger.Debug("Component kind validated.", "type", typ, "input", st.String())
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
