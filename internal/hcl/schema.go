package hcl

import (
	"github.com/hashicorp/hcl/v2"
)

// fileRoot is used to decode all possible top-level blocks from any file.
// Unknown blocks and attributes are decode errors.
type fileRoot struct {
	Automata     []*automatonBlock `hcl:"automaton,block"`
	Compositions []*composeBlock   `hcl:"compose,block"`
	Checks       []*checkBlock     `hcl:"check,block"`
}

// automatonBlock is an `automaton "name" { ... }` block.
type automatonBlock struct {
	Name        string             `hcl:"name,label"`
	States      int                `hcl:"states"`
	Start       int                `hcl:"start,optional"`
	Final       []int              `hcl:"final,optional"`
	ErrorState  bool               `hcl:"error_state,optional"`
	Transitions []*transitionBlock `hcl:"transition,block"`
	DeclRange   hcl.Range          `hcl:",def_range"`
}

// transitionBlock is a `transition { from = 0  on = "ab"  to = 1 }` block.
// `on` is either a string of symbols or a list of strings.
type transitionBlock struct {
	From int            `hcl:"from"`
	On   hcl.Expression `hcl:"on"`
	To   int            `hcl:"to"`
}

// composeBlock is a `compose "name" { ... }` block.
type composeBlock struct {
	Name      string    `hcl:"name,label"`
	Op        string    `hcl:"op"`
	Operands  []string  `hcl:"operands"`
	Complete  *bool     `hcl:"complete,optional"`
	DeclRange hcl.Range `hcl:",def_range"`
}

// checkBlock is a `check "name" { ... }` block.
type checkBlock struct {
	Name          string    `hcl:"name,label"`
	Automaton     string    `hcl:"automaton"`
	Accept        []string  `hcl:"accept,optional"`
	Reject        []string  `hcl:"reject,optional"`
	Equivalent    *string   `hcl:"equivalent,optional"`
	VerifyRegex   bool      `hcl:"verify_regex,optional"`
	SampleSymbols *string   `hcl:"sample_symbols,optional"`
	SampleLength  *int      `hcl:"sample_length,optional"`
	DeclRange     hcl.Range `hcl:",def_range"`
}
