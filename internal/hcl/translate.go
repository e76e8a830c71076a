// This file contains the logic for translating decoded HCL blocks into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
)

// translateAutomaton converts an automaton block into the agnostic model.
func (l *Loader) translateAutomaton(ctx context.Context, b *automatonBlock, evalCtx *hcl.EvalContext) (*config.AutomatonDefinition, error) {
	logger := ctxlog.FromContext(ctx).With("automaton", b.Name)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Translating HCL automaton block.", "states", b.States, "transitions", len(b.Transitions))

	def := &config.AutomatonDefinition{
		Name:       b.Name,
		States:     b.States,
		Start:      b.Start,
		Final:      b.Final,
		ErrorState: b.ErrorState,
		Origin:     b.DeclRange.String(),
	}

	for i, t := range b.Transitions {
		symbols, err := symbolsFromExpr(ctx, t.On, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("%s: automaton %q, transition %d: %w", def.Origin, b.Name, i, err)
		}
		if symbols == "" {
			return nil, fmt.Errorf("%s: automaton %q, transition %d: no symbols given", def.Origin, b.Name, i)
		}
		def.Transitions = append(def.Transitions, &config.TransitionDefinition{
			From:    t.From,
			Symbols: symbols,
			To:      t.To,
		})
	}
	return def, nil
}

// translateComposition converts a compose block into the agnostic model.
// Operands are completed unless `complete = false` is given.
func (l *Loader) translateComposition(b *composeBlock) *config.Composition {
	complete := true
	if b.Complete != nil {
		complete = *b.Complete
	}
	return &config.Composition{
		Name:     b.Name,
		Op:       config.Op(b.Op),
		Operands: b.Operands,
		Complete: complete,
		Origin:   b.DeclRange.String(),
	}
}

// translateCheck converts a check block into the agnostic model, applying
// sampling defaults.
func (l *Loader) translateCheck(b *checkBlock) (*config.Check, error) {
	c := &config.Check{
		Name:          b.Name,
		Automaton:     b.Automaton,
		Accept:        b.Accept,
		Reject:        b.Reject,
		VerifyRegex:   b.VerifyRegex,
		SampleSymbols: config.DefaultSampleSymbols,
		SampleLength:  config.DefaultSampleLength,
		Origin:        b.DeclRange.String(),
	}
	if b.Equivalent != nil {
		c.Equivalent = *b.Equivalent
	}
	if b.SampleSymbols != nil {
		c.SampleSymbols = *b.SampleSymbols
	}
	if b.SampleLength != nil {
		c.SampleLength = *b.SampleLength
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
