package yaml

import (
	"context"
	"fmt"

	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
)

func translateAutomaton(ctx context.Context, d *automatonDoc, origin string) (*config.AutomatonDefinition, error) {
	ctxlog.FromContext(ctx).Debug("Translating YAML automaton.", "automaton", d.Name, "transitions", len(d.Transitions))

	def := &config.AutomatonDefinition{
		Name:       d.Name,
		States:     d.States,
		Start:      d.Start,
		Final:      d.Final,
		ErrorState: d.ErrorState,
		Origin:     origin,
	}
	if d.Name == "" {
		return nil, fmt.Errorf("%s: automaton has no name", origin)
	}
	for i, t := range d.Transitions {
		if t.On == "" {
			return nil, fmt.Errorf("%s: automaton %q, transition %d: no symbols given", origin, d.Name, i)
		}
		def.Transitions = append(def.Transitions, &config.TransitionDefinition{
			From:    t.From,
			Symbols: string(t.On),
			To:      t.To,
		})
	}
	return def, nil
}

func translateComposition(d *composeDoc, origin string) (*config.Composition, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%s: composition has no name", origin)
	}
	complete := true
	if d.Complete != nil {
		complete = *d.Complete
	}
	return &config.Composition{
		Name:     d.Name,
		Op:       config.Op(d.Op),
		Operands: d.Operands,
		Complete: complete,
		Origin:   origin,
	}, nil
}

func translateCheck(d *checkDoc, origin string) (*config.Check, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%s: check has no name", origin)
	}
	c := &config.Check{
		Name:          d.Name,
		Automaton:     d.Automaton,
		Accept:        d.Accept,
		Reject:        d.Reject,
		Equivalent:    d.Equivalent,
		VerifyRegex:   d.VerifyRegex,
		SampleSymbols: config.DefaultSampleSymbols,
		SampleLength:  config.DefaultSampleLength,
		Origin:        origin,
	}
	if d.SampleSymbols != nil {
		c.SampleSymbols = *d.SampleSymbols
	}
	if d.SampleLength != nil {
		c.SampleLength = *d.SampleLength
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
