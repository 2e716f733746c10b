package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Components []*componentBlock `hcl:"component,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

// componentBlock maps `component "<type>" "<name>" { ... }`.
type componentBlock struct {
	Type      string            `hcl:"type,label"`
	Name      string            `hcl:"name,label"`
	DependsOn []string          `hcl:"depends_on,optional"`
	Uses      map[string]string `hcl:"uses,optional"`
	Arguments *argumentsBlock   `hcl:"arguments,block"`
}

// argumentsBlock captures the raw body so it can be decoded later against
// the Go input struct of the component's kind.
type argumentsBlock struct {
	Body hcl.Body `hcl:",remain"`
}
