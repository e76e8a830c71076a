package builder

import (
	"context"
	"fmt"

	"github.com/specialistvlad/dfakit/internal/automaton"
	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/ctxlog"
	"github.com/specialistvlad/dfakit/internal/dag"
)

// Kind tells how an entry was defined.
type Kind string

const (
	KindDefinition  Kind = "automaton"
	KindComposition Kind = "compose"
)

// Entry is one named automaton of a Set.
type Entry struct {
	Name      string
	Kind      Kind
	Origin    string
	Automaton *automaton.Automaton
}

// Set holds the automata built from a model.
type Set struct {
	entries []*Entry
	byName  map[string]*Entry
}

// Entries returns the entries in definition order.
func (s *Set) Entries() []*Entry {
	return s.entries
}

// Get returns the automaton with the given name.
func (s *Set) Get(name string) (*automaton.Automaton, bool) {
	e, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return e.Automaton, true
}

// Build constructs every automaton and composition of model.
func Build(ctx context.Context, model *config.Model) (*Set, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting automata construction.")

	set := &Set{byName: make(map[string]*Entry)}
	add := func(e *Entry) error {
		if prev, ok := set.byName[e.Name]; ok {
			return fmt.Errorf("%s: name %q already defined at %s", e.Origin, e.Name, prev.Origin)
		}
		set.byName[e.Name] = e
		set.entries = append(set.entries, e)
		return nil
	}

	// First pass: plain definitions.
	for _, def := range model.Automata {
		a, err := buildDefinition(def)
		if err != nil {
			return nil, fmt.Errorf("%s: automaton %q: %w", def.Origin, def.Name, err)
		}
		if err := add(&Entry{Name: def.Name, Kind: KindDefinition, Origin: def.Origin, Automaton: a}); err != nil {
			return nil, err
		}
		logger.Debug("Build: Automaton defined.", "name", def.Name, "states", a.NumStates(), "total", a.IsTotal())
	}

	// Second pass: link compositions to their operands.
	comps := make(map[string]*config.Composition, len(model.Compositions))
	for _, c := range model.Compositions {
		if err := add(&Entry{Name: c.Name, Kind: KindComposition, Origin: c.Origin}); err != nil {
			return nil, err
		}
		comps[c.Name] = c
	}
	order, err := linkCompositions(set, model.Compositions)
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Composition linking complete.", "compositions", len(order))

	// Third pass: evaluate in dependency order.
	for _, name := range order {
		c, ok := comps[name]
		if !ok {
			continue
		}
		a, err := compose(set, c)
		if err != nil {
			return nil, fmt.Errorf("%s: compose %q: %w", c.Origin, c.Name, err)
		}
		set.byName[name].Automaton = a
		logger.Debug("Build: Composition evaluated.", "name", name, "op", c.Op, "states", a.NumStates())
	}

	logger.Info("Build: Automata construction successful.", "count", len(set.entries))
	return set, nil
}

// buildDefinition builds one automaton from its definition.
func buildDefinition(def *config.AutomatonDefinition) (*automaton.Automaton, error) {
	a, err := automaton.New(def.States, def.Start, def.Final...)
	if err != nil {
		return nil, err
	}
	for _, t := range def.Transitions {
		for i := 0; i < len(t.Symbols); i++ {
			if err := a.AddTransition(t.From, t.Symbols[i], t.To); err != nil {
				return nil, err
			}
		}
	}
	if def.ErrorState {
		a.AddErrorState()
	}
	return a, nil
}

// linkCompositions builds the dependency graph of compositions and returns
// the evaluation order.
func linkCompositions(set *Set, comps []*config.Composition) ([]string, error) {
	g := dag.New()
	for _, e := range set.entries {
		g.AddNode(e.Name)
	}
	for _, c := range comps {
		for _, op := range c.Operands {
			if !g.Has(op) {
				return nil, fmt.Errorf("%s: compose %q: unknown operand %q", c.Origin, c.Name, op)
			}
			if err := g.AddEdge(op, c.Name); err != nil {
				return nil, fmt.Errorf("%s: compose %q: %w", c.Origin, c.Name, err)
			}
		}
	}
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, fmt.Errorf("invalid compositions: %w", err)
	}
	return order, nil
}

// compose evaluates one composition whose operands are already built.
func compose(set *Set, c *config.Composition) (*automaton.Automaton, error) {
	if !c.Op.Valid() {
		return nil, fmt.Errorf("unknown op %q (want %q, %q or %q)", c.Op, config.OpUnion, config.OpIntersection, config.OpComplement)
	}

	operands := make([]*automaton.Automaton, len(c.Operands))
	for i, name := range c.Operands {
		a, _ := set.Get(name)
		if c.Complete {
			a = automaton.Completed(a)
		}
		operands[i] = a
	}

	if c.Op == config.OpComplement {
		if len(operands) != 1 {
			return nil, fmt.Errorf("complement takes exactly one operand, got %d", len(operands))
		}
		return automaton.Complement(operands[0])
	}

	if len(operands) < 2 {
		return nil, fmt.Errorf("%s takes at least two operands, got %d", c.Op, len(operands))
	}
	binary := automaton.Union
	if c.Op == config.OpIntersection {
		binary = automaton.Intersect
	}
	acc := operands[0]
	for _, next := range operands[1:] {
		var err error
		if acc, err = binary(acc, next); err != nil {
			return nil, err
		}
	}
	return acc, nil
}
