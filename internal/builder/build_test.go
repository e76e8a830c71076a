package builder

import (
	"context"
	"testing"

	"github.com/specialistvlad/dfakit/internal/automaton"
	"github.com/specialistvlad/dfakit/internal/config"
	"github.com/specialistvlad/dfakit/internal/words"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func toggleDef() *config.AutomatonDefinition {
	return &config.AutomatonDefinition{
		Name:   "toggle",
		States: 2,
		Final:  []int{1},
		Transitions: []*config.TransitionDefinition{
			{From: 0, Symbols: "ab", To: 1},
			{From: 1, Symbols: "ab", To: 0},
			{From: 1, Symbols: "c", To: 1},
		},
		Origin: "toggle.hcl:1",
	}
}

func evenBDef() *config.AutomatonDefinition {
	return &config.AutomatonDefinition{
		Name:   "even_b",
		States: 2,
		Final:  []int{0},
		Transitions: []*config.TransitionDefinition{
			{From: 0, Symbols: "a", To: 0},
			{From: 0, Symbols: "b", To: 1},
			{From: 1, Symbols: "a", To: 1},
			{From: 1, Symbols: "b", To: 0},
		},
		Origin: "even_b.hcl:1",
	}
}

func TestBuild_DefinitionsAndCompositions(t *testing.T) {
	model := &config.Model{
		Automata: []*config.AutomatonDefinition{toggleDef(), evenBDef()},
		Compositions: []*config.Composition{
			// Declared before its operand "both" on purpose.
			{Name: "neither", Op: config.OpComplement, Operands: []string{"either"}, Complete: true},
			{Name: "either", Op: config.OpUnion, Operands: []string{"toggle", "even_b"}, Complete: true},
			{Name: "both", Op: config.OpIntersection, Operands: []string{"toggle", "even_b"}, Complete: true},
		},
	}

	set, err := Build(context.Background(), model)
	require.NoError(t, err)

	var names []string
	for _, e := range set.Entries() {
		names = append(names, e.Name)
		require.NotNil(t, e.Automaton, e.Name)
	}
	assert.Equal(t, []string{"toggle", "even_b", "neither", "either", "both"}, names)
	assert.Equal(t, KindDefinition, set.Entries()[0].Kind)
	assert.Equal(t, KindComposition, set.Entries()[2].Kind)

	toggle, _ := set.Get("toggle")
	evenB, _ := set.Get("even_b")
	either, _ := set.Get("either")
	both, _ := set.Get("both")
	neither, _ := set.Get("neither")

	assert.False(t, toggle.IsTotal(), "definitions are not completed implicitly")
	for _, w := range words.All("abc", 5) {
		inT, inE := toggle.Accepts(w), evenB.Accepts(w)
		assert.Equal(t, inT || inE, either.Accepts(w), "either %q", w)
		assert.Equal(t, inT && inE, both.Accepts(w), "both %q", w)
		assert.Equal(t, !(inT || inE), neither.Accepts(w), "neither %q", w)
	}

	_, ok := set.Get("missing")
	assert.False(t, ok)
}

func TestBuild_ErrorStateAndMultiOperand(t *testing.T) {
	def := toggleDef()
	def.ErrorState = true
	third := &config.AutomatonDefinition{
		Name:        "empty_word",
		States:      1,
		Final:       []int{0},
		Transitions: nil,
	}
	model := &config.Model{
		Automata: []*config.AutomatonDefinition{def, evenBDef(), third},
		Compositions: []*config.Composition{
			{Name: "any", Op: config.OpUnion, Operands: []string{"toggle", "even_b", "empty_word"}, Complete: true},
		},
	}

	set, err := Build(context.Background(), model)
	require.NoError(t, err)

	toggle, _ := set.Get("toggle")
	assert.True(t, toggle.IsTotal())
	assert.Equal(t, 3, toggle.NumStates())

	anyA, _ := set.Get("any")
	assert.True(t, anyA.Accepts(""))
	assert.True(t, anyA.Accepts("a"))
	assert.True(t, anyA.Accepts("aa"))
	assert.False(t, anyA.Accepts("ba"))
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		model   *config.Model
		errPart string
		errIs   error
	}{
		{
			name: "start out of range",
			model: &config.Model{Automata: []*config.AutomatonDefinition{
				{Name: "x", States: 1, Start: 3},
			}},
			errIs: automaton.ErrInvalidConstruction,
		},
		{
			name: "duplicate transition",
			model: &config.Model{Automata: []*config.AutomatonDefinition{
				{Name: "x", States: 2, Transitions: []*config.TransitionDefinition{
					{From: 0, Symbols: "a", To: 1},
					{From: 0, Symbols: "ba", To: 0},
				}},
			}},
			errIs: automaton.ErrDuplicateTransition,
		},
		{
			name: "unknown symbol",
			model: &config.Model{Automata: []*config.AutomatonDefinition{
				{Name: "x", States: 1, Transitions: []*config.TransitionDefinition{
					{From: 0, Symbols: "A", To: 0},
				}},
			}},
			errIs: automaton.ErrUnknownSymbol,
		},
		{
			name:    "duplicate name",
			model:   &config.Model{Automata: []*config.AutomatonDefinition{toggleDef(), toggleDef()}},
			errPart: "already defined",
		},
		{
			name: "unknown operand",
			model: &config.Model{
				Automata: []*config.AutomatonDefinition{toggleDef()},
				Compositions: []*config.Composition{
					{Name: "u", Op: config.OpUnion, Operands: []string{"toggle", "nope"}},
				},
			},
			errPart: `unknown operand "nope"`,
		},
		{
			name: "cycle",
			model: &config.Model{
				Automata: []*config.AutomatonDefinition{toggleDef()},
				Compositions: []*config.Composition{
					{Name: "p", Op: config.OpUnion, Operands: []string{"toggle", "q"}},
					{Name: "q", Op: config.OpUnion, Operands: []string{"toggle", "p"}},
				},
			},
			errPart: "cycle detected",
		},
		{
			name: "self reference",
			model: &config.Model{
				Compositions: []*config.Composition{
					{Name: "p", Op: config.OpComplement, Operands: []string{"p"}},
				},
			},
			errPart: "self-referential",
		},
		{
			name: "unknown op",
			model: &config.Model{
				Automata: []*config.AutomatonDefinition{toggleDef()},
				Compositions: []*config.Composition{
					{Name: "d", Op: "difference", Operands: []string{"toggle", "toggle"}},
				},
			},
			errPart: "unknown op",
		},
		{
			name: "complement arity",
			model: &config.Model{
				Automata: []*config.AutomatonDefinition{toggleDef(), evenBDef()},
				Compositions: []*config.Composition{
					{Name: "n", Op: config.OpComplement, Operands: []string{"toggle", "even_b"}, Complete: true},
				},
			},
			errPart: "exactly one operand",
		},
		{
			name: "union arity",
			model: &config.Model{
				Automata: []*config.AutomatonDefinition{toggleDef()},
				Compositions: []*config.Composition{
					{Name: "u", Op: config.OpUnion, Operands: []string{"toggle"}, Complete: true},
				},
			},
			errPart: "at least two operands",
		},
		{
			name: "partial operand without completion",
			model: &config.Model{
				Automata: []*config.AutomatonDefinition{toggleDef()},
				Compositions: []*config.Composition{
					{Name: "n", Op: config.OpComplement, Operands: []string{"toggle"}, Complete: false},
				},
			},
			errIs: automaton.ErrNotTotal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Build(context.Background(), tc.model)
			require.Error(t, err)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
			}
			if tc.errPart != "" {
				assert.ErrorContains(t, err, tc.errPart)
			}
		})
	}
}
