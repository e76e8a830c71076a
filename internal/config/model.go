package config

import (
	"fmt"
	"math"
)

// Model is the unified representation of all loaded definition files.
// Slices keep the order in which blocks were read.
type Model struct {
	Automata     []*AutomatonDefinition
	Compositions []*Composition
	Checks       []*Check
}

// AutomatonDefinition describes an automaton built state by state.
type AutomatonDefinition struct {
	Name        string
	States      int
	Start       int
	Final       []int
	ErrorState  bool
	Transitions []*TransitionDefinition
	// Origin is the source location of the definition, for messages.
	Origin string
}

// TransitionDefinition adds f(From, c) = To for every symbol c in Symbols.
type TransitionDefinition struct {
	From    int
	Symbols string
	To      int
}

// Op names an algebra operation.
type Op string

const (
	OpUnion        Op = "union"
	OpIntersection Op = "intersection"
	OpComplement   Op = "complement"
)

// Valid reports whether op is a known operation.
func (op Op) Valid() bool {
	switch op {
	case OpUnion, OpIntersection, OpComplement:
		return true
	}
	return false
}

// Composition defines an automaton as an algebra operation over other named
// automata or compositions.
type Composition struct {
	Name     string
	Op       Op
	Operands []string
	// Complete totalises partial operands before the operation.
	Complete bool
	Origin   string
}

// Check lists expectations about the language of a named automaton.
type Check struct {
	Name      string
	Automaton string
	Accept    []string
	Reject    []string

	// Equivalent, when set, is an expression in the synthesizer's syntax
	// whose language must agree with the automaton on every sampled word.
	Equivalent string
	// VerifyRegex compares the automaton with its own synthesized expression
	// on every sampled word.
	VerifyRegex bool

	// SampleSymbols and SampleLength bound the sampled words.
	SampleSymbols string
	SampleLength  int
	Origin        string
}

// Sampling defaults for checks that do not set them.
const (
	DefaultSampleSymbols = "ab"
	DefaultSampleLength  = 6
	// MaxSampleWords bounds |SampleSymbols|^SampleLength per check.
	MaxSampleWords = 1 << 20
)

// Validate reports sampling bounds a check cannot be evaluated with.
func (c *Check) Validate() error {
	if c.SampleLength < 0 {
		return fmt.Errorf("%s: check %q: sample_length must not be negative", c.Origin, c.Name)
	}
	if float64(c.SampleLength)*math.Log2(float64(max(len(c.SampleSymbols), 1))) > math.Log2(MaxSampleWords) {
		return fmt.Errorf("%s: check %q: %d symbols up to length %d exceed %d sampled words",
			c.Origin, c.Name, len(c.SampleSymbols), c.SampleLength, MaxSampleWords)
	}
	return nil
}
