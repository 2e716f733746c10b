package hcl_adapter

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes process environment variables as `env.<NAME>` and
// a small set of string functions.
func newEvalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

func defaultEvalContext() *hcl.EvalContext {
	return newEvalContext(os.Environ())
}
