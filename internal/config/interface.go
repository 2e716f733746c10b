package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific data binding and type
// conversion implementation. It acts as the bridge between the raw configuration
// and the Go types used by modules.
type Converter interface {
	// DecodeArguments decodes a raw 'arguments' body into a kind's input
	// struct. A nil body decodes as empty, so missing required arguments
	// are still reported.
	DecodeArguments(ctx context.Context, body hcl.Body, target any) error
}
