package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
	"github.com/specialistvlad/dfakit/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML definitions loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .yaml and .yml file under paths and merges their
// entries into one model, reading files in lexical order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml files found in %v", paths)
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		if err := l.loadFile(ctx, file, model); err != nil {
			return nil, err
		}
	}

	logger.Debug("YAML loading complete.",
		"automata", len(model.Automata),
		"compositions", len(model.Compositions),
		"checks", len(model.Checks),
	)
	return model, nil
}

func (l *Loader) loadFile(ctx context.Context, file string, model *config.Model) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}
	var pos positions
	if err := yaml.Unmarshal(src, &pos); err != nil {
		return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	origin := func(nodes []yaml.Node, i int) string {
		if i < len(nodes) {
			return fmt.Sprintf("%s:%d", file, nodes[i].Line)
		}
		return file
	}

	for i, d := range doc.Automata {
		def, err := translateAutomaton(ctx, d, origin(pos.Automata, i))
		if err != nil {
			return err
		}
		model.Automata = append(model.Automata, def)
	}
	for i, d := range doc.Compositions {
		c, err := translateComposition(d, origin(pos.Compositions, i))
		if err != nil {
			return err
		}
		model.Compositions = append(model.Compositions, c)
	}
	for i, d := range doc.Checks {
		c, err := translateCheck(d, origin(pos.Checks, i))
		if err != nil {
			return err
		}
		model.Checks = append(model.Checks, c)
	}
	return nil
}
