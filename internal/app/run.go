package app

import (
	"bytes"
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/dfakit/internal/builder"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
)

// Run loads the definitions, prints a report for every automaton and
// evaluates the checks. It fails when any check fails.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.DefsPaths...)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	a.logger.Debug("Definitions loaded.",
		"automata", len(model.Automata), "compositions", len(model.Compositions), "checks", len(model.Checks))

	set, err := builder.Build(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to build automata: %w", err)
	}

	if err := a.writeReports(ctx, set); err != nil {
		return err
	}
	if a.config.EmitGo != "" {
		if err := a.emitGo(ctx, set); err != nil {
			return err
		}
	}

	if len(model.Checks) == 0 {
		a.logger.Debug("App.Run method finished, no checks defined.")
		return nil
	}

	failed := 0
	for _, c := range model.Checks {
		res, err := a.runCheck(ctx, set, c)
		if err != nil {
			return err
		}
		if res.OK() {
			fmt.Fprintf(a.outW, "check %s: ok\n", res.Name)
			continue
		}
		failed++
		fmt.Fprintf(a.outW, "check %s: FAIL\n", res.Name)
		for _, f := range res.Failures {
			fmt.Fprintf(a.outW, "  %s\n", f)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(model.Checks))
	}
	a.logger.Info("All checks passed.", "count", len(model.Checks))
	return nil
}

// writeReports renders the per-automaton reports on a bounded pool of
// workers and prints them in definition order.
func (a *App) writeReports(ctx context.Context, set *builder.Set) error {
	entries := set.Entries()
	bufs := make([]bytes.Buffer, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)
	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			a.writeReport(&bufs[i], e)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("report generation interrupted: %w", err)
	}

	for i := range bufs {
		if _, err := bufs[i].WriteTo(a.outW); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	a.logger.Debug("Reports written.", "count", len(entries), "workers", a.config.WorkerCount)
	return nil
}
