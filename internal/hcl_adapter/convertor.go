package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
)

// Converter is the HCL-specific implementation of the config.Converter interface.
type Converter struct {
	evalCtx *hcl.EvalContext
}

// NewConverter creates a new HCL converter. A nil evalCtx falls back to one
// built from the current process environment.
func NewConverter(evalCtx *hcl.EvalContext) *Converter {
	if evalCtx == nil {
		evalCtx = defaultEvalContext()
	}
	return &Converter{evalCtx: evalCtx}
}

// DecodeArguments decodes an `arguments` body into target, which must be a
// pointer to a struct carrying `hcl` tags.
func (c *Converter) DecodeArguments(ctx context.Context, body hcl.Body, target any) error {
	logger := ctxlog.FromContext(ctx)
	if body == nil {
		body = hcl.EmptyBody()
	}

	diags := gohcl.DecodeBody(body, c.evalCtx, target)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode arguments: %w", diags)
	}
	logger.Debug("Arguments decoded.", "target", fmt.Sprintf("%T", target))
	return nil
}
