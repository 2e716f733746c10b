package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/compgrid/internal/config"
	"github.com/specialistvlad/compgrid/internal/ctxlog"
	"github.com/specialistvlad/compgrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	evalCtx *hcl.EvalContext
}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{evalCtx: defaultEvalContext()}
}

// Load parses every .hcl file reachable from paths and collects their
// `component` blocks in file order, then block order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}

	hclFiles, err := l.findAllHCLFiles(paths)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, l.evalCtx, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Components {
			c, err := translateComponent(block, file)
			if err != nil {
				return nil, nil, fmt.Errorf("in file %s: %w", file, err)
			}
			model.Components = append(model.Components, c)
		}
	}

	logger.Debug("HCL loading complete.", "components", len(model.Components))
	return model, NewConverter(l.evalCtx), nil
}

func translateComponent(b *componentBlock, source string) (*config.Component, error) {
	for _, name := range b.DependsOn {
		if _, dup := b.Uses[name]; dup {
			return nil, fmt.Errorf("component %q: dependency %q is named in both depends_on and uses", b.Name, name)
		}
	}

	c := &config.Component{
		Type:      b.Type,
		Name:      b.Name,
		DependsOn: b.DependsOn,
		Uses:      b.Uses,
		Source:    source,
	}
	if b.Arguments != nil {
		c.Arguments = b.Arguments.Body
	}
	return c, nil
}

// findAllHCLFiles walks all given paths and returns a flat list of all .hcl files found.
func (l *Loader) findAllHCLFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, wasSeen := seen[p]; !wasSeen {
			allFiles = append(allFiles, p)
			seen[p] = struct{}{}
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("configuration path %s does not exist", path)
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			files, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				add(f)
			}
		} else if filepath.Ext(path) == ".hcl" {
			add(path)
		}
	}
	return allFiles, nil
}
