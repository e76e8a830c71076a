package app

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/dfakit/internal/builder"
	"github.com/specialistvlad/dfakit/internal/codegen"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
)

// emitGo writes one generated matcher per automaton to the configured file.
func (a *App) emitGo(ctx context.Context, set *builder.Set) error {
	logger := ctxlog.FromContext(ctx)

	matchers := make([]codegen.Matcher, 0, len(set.Entries()))
	for _, e := range set.Entries() {
		matchers = append(matchers, codegen.Matcher{Name: e.Name, Automaton: e.Automaton})
	}

	var buf bytes.Buffer
	if err := codegen.Render(&buf, a.config.EmitPackage, matchers...); err != nil {
		return fmt.Errorf("failed to generate Go matchers: %w", err)
	}
	if err := os.WriteFile(a.config.EmitGo, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write Go matchers: %w", err)
	}

	logger.Info("Go matchers written.", "path", a.config.EmitGo, "package", a.config.EmitPackage, "count", len(matchers))
	return nil
}
