package app

import (
	"context"
	"fmt"
	"regexp"

	"github.com/specialistvlad/dfakit/internal/automaton"
	"github.com/specialistvlad/dfakit/internal/builder"
	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
	"github.com/specialistvlad/dfakit/internal/kleene"
	"github.com/specialistvlad/dfakit/internal/regex"
	"github.com/specialistvlad/dfakit/internal/words"
)

// CheckResult is the outcome of one check block.
type CheckResult struct {
	Name     string
	Failures []string
}

// OK reports whether every expectation held.
func (r *CheckResult) OK() bool { return len(r.Failures) == 0 }

// runCheck evaluates c against the automata of set.
func (a *App) runCheck(ctx context.Context, set *builder.Set, c *config.Check) (*CheckResult, error) {
	logger := ctxlog.FromContext(ctx).With("check", c.Name)
	res := &CheckResult{Name: c.Name}

	m, ok := set.Get(c.Automaton)
	if !ok {
		return nil, fmt.Errorf("%s: check %q: unknown automaton %q", c.Origin, c.Name, c.Automaton)
	}

	for _, w := range c.Accept {
		if !m.Accepts(w) {
			res.Failures = append(res.Failures, fmt.Sprintf("expected %q to be accepted", w))
		}
	}
	for _, w := range c.Reject {
		if m.Accepts(w) {
			res.Failures = append(res.Failures, fmt.Sprintf("expected %q to be rejected", w))
		}
	}

	if c.Equivalent != "" {
		re, err := regex.Compile(c.Equivalent)
		if err != nil {
			return nil, fmt.Errorf("%s: check %q: equivalent: %w", c.Origin, c.Name, err)
		}
		res.Failures = append(res.Failures, compareSampled(m, re, c, "equivalent")...)
	}

	if c.VerifyRegex {
		if m.NumStates() > a.config.MaxRegexStates {
			logger.Warn("Skipping regex verification: automaton too large.",
				"states", m.NumStates(), "limit", a.config.MaxRegexStates)
		} else {
			expr := kleene.Synthesize(m)
			re, err := regex.Compile(expr.String())
			if err != nil {
				return nil, fmt.Errorf("%s: check %q: synthesized expression: %w", c.Origin, c.Name, err)
			}
			res.Failures = append(res.Failures, compareSampled(m, re, c, "synthesized regex")...)
		}
	}

	logger.Debug("Check evaluated.", "ok", res.OK(), "failures", len(res.Failures))
	return res, nil
}

// compareSampled reports every sampled word on which m and re disagree.
func compareSampled(m *automaton.Automaton, re *regexp.Regexp, c *config.Check, what string) []string {
	var failures []string
	words.Each(c.SampleSymbols, c.SampleLength, func(w string) {
		if got, want := re.MatchString(w), m.Accepts(w); got != want {
			failures = append(failures, fmt.Sprintf("%s disagrees on %q: automaton %t, regex %t", what, w, want, got))
		}
	})
	return failures
}
