// Package hcl_adapter loads `component` blocks from HCL files into the
// format-agnostic config model and decodes their `arguments` blocks.
package hcl_adapter
