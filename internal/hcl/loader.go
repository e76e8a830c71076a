package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
	"github.com/specialistvlad/dfakit/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL definitions loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file under paths and merges their blocks into one
// model. Files are read in lexical order so block order is reproducible.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	model := &config.Model{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Automata {
			def, err := l.translateAutomaton(ctx, b, evalCtx)
			if err != nil {
				return nil, err
			}
			model.Automata = append(model.Automata, def)
		}
		for _, b := range root.Compositions {
			model.Compositions = append(model.Compositions, l.translateComposition(b))
		}
		for _, b := range root.Checks {
			check, err := l.translateCheck(b)
			if err != nil {
				return nil, err
			}
			model.Checks = append(model.Checks, check)
		}
	}

	logger.Debug("HCL loading complete.",
		"automata", len(model.Automata),
		"compositions", len(model.Compositions),
		"checks", len(model.Checks),
	)
	return model, nil
}
