package yaml

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the shape of one definitions file.
type document struct {
	Automata     []*automatonDoc `yaml:"automata"`
	Compositions []*composeDoc   `yaml:"compositions"`
	Checks       []*checkDoc     `yaml:"checks"`
}

// positions mirrors document to recover the line of every entry.
type positions struct {
	Automata     []yaml.Node `yaml:"automata"`
	Compositions []yaml.Node `yaml:"compositions"`
	Checks       []yaml.Node `yaml:"checks"`
}

type automatonDoc struct {
	Name        string           `yaml:"name"`
	States      int              `yaml:"states"`
	Start       int              `yaml:"start"`
	Final       []int            `yaml:"final"`
	ErrorState  bool             `yaml:"error_state"`
	Transitions []*transitionDoc `yaml:"transitions"`
}

type transitionDoc struct {
	From int     `yaml:"from"`
	On   symbols `yaml:"on"`
	To   int     `yaml:"to"`
}

type composeDoc struct {
	Name     string   `yaml:"name"`
	Op       string   `yaml:"op"`
	Operands []string `yaml:"operands"`
	Complete *bool    `yaml:"complete"`
}

type checkDoc struct {
	Name          string   `yaml:"name"`
	Automaton     string   `yaml:"automaton"`
	Accept        []string `yaml:"accept"`
	Reject        []string `yaml:"reject"`
	Equivalent    string   `yaml:"equivalent"`
	VerifyRegex   bool     `yaml:"verify_regex"`
	SampleSymbols *string  `yaml:"sample_symbols"`
	SampleLength  *int     `yaml:"sample_length"`
}

// symbols is a transition's `on` value: a string of symbols or a sequence
// of strings that are concatenated.
type symbols string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *symbols) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*s = symbols(n.Value)
		return nil
	case yaml.SequenceNode:
		parts := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: symbols must be strings", c.Line)
			}
			parts = append(parts, c.Value)
		}
		*s = symbols(strings.Join(parts, ""))
		return nil
	}
	return fmt.Errorf("line %d: symbols must be a string or a list of strings", n.Line)
}
