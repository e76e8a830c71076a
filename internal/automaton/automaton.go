package automaton

import (
	"fmt"
	"sort"
)

// Key identifies one entry of the transition function.
type Key struct {
	State  int
	Symbol byte
}

// Transition is a single defined edge f(From, Symbol) = To.
type Transition struct {
	From   int
	Symbol byte
	To     int
}

// Automaton is a deterministic finite automaton whose states are the
// integers [0, NumStates()).
type Automaton struct {
	numStates int
	start     int
	finals    map[int]struct{}
	delta     map[Key]int
}

// New creates an automaton with numStates states, the given start state and
// final states, and no transitions.
func New(numStates, start int, finals ...int) (*Automaton, error) {
	if numStates < 1 {
		return nil, fmt.Errorf("%w: state count %d must be positive", ErrInvalidConstruction, numStates)
	}
	if start < 0 || start >= numStates {
		return nil, fmt.Errorf("%w: start state %d outside [0, %d)", ErrInvalidConstruction, start, numStates)
	}

	a := &Automaton{
		numStates: numStates,
		start:     start,
		finals:    make(map[int]struct{}, len(finals)),
		delta:     make(map[Key]int),
	}
	for _, f := range finals {
		if f < 0 || f >= numStates {
			return nil, fmt.Errorf("%w: final state %d outside [0, %d)", ErrInvalidConstruction, f, numStates)
		}
		a.finals[f] = struct{}{}
	}
	return a, nil
}

// NumStates returns the number of states.
func (a *Automaton) NumStates() int { return a.numStates }

// Start returns the start state.
func (a *Automaton) Start() int { return a.start }

// Alphabet returns the input symbols in iteration order.
func (a *Automaton) Alphabet() string { return Alphabet }

// IsFinal reports whether state is final.
func (a *Automaton) IsFinal(state int) bool {
	_, ok := a.finals[state]
	return ok
}

// Finals returns the final states in ascending order.
func (a *Automaton) Finals() []int {
	out := make([]int, 0, len(a.finals))
	for f := range a.finals {
		out = append(out, f)
	}
	sort.Ints(out)
	return out
}

func (a *Automaton) hasState(s int) bool {
	return s >= 0 && s < a.numStates
}

// AddState appends a state and returns its index.
func (a *Automaton) AddState(final bool) int {
	idx := a.numStates
	a.numStates++
	if final {
		a.finals[idx] = struct{}{}
	}
	return idx
}

// MarkFinal makes state final. Marking a state that is already final is a
// no-op.
func (a *Automaton) MarkFinal(state int) error {
	if !a.hasState(state) {
		return fmt.Errorf("%w: %d", ErrUnknownState, state)
	}
	a.finals[state] = struct{}{}
	return nil
}

// AddTransition defines f(from, symbol) = to. A pair can be defined once.
func (a *Automaton) AddTransition(from int, symbol byte, to int) error {
	if !a.hasState(from) {
		return fmt.Errorf("%w: source %d", ErrUnknownState, from)
	}
	if !a.hasState(to) {
		return fmt.Errorf("%w: destination %d", ErrUnknownState, to)
	}
	if !InAlphabet(symbol) {
		return fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	k := Key{State: from, Symbol: symbol}
	if prev, ok := a.delta[k]; ok {
		return fmt.Errorf("%w: f(%d,%c) already goes to %d", ErrDuplicateTransition, from, symbol, prev)
	}
	a.delta[k] = to
	return nil
}

// AddErrorState appends a non-final sink state and sends every undefined
// (state, symbol) pair to it, the sink's own pairs included. It returns the
// index of the sink. Afterwards the automaton is total.
func (a *Automaton) AddErrorState() int {
	sink := a.AddState(false)
	for s := 0; s < a.numStates; s++ {
		for i := 0; i < len(Alphabet); i++ {
			k := Key{State: s, Symbol: Alphabet[i]}
			if _, ok := a.delta[k]; !ok {
				a.delta[k] = sink
			}
		}
	}
	return sink
}

// Step returns f(state, symbol) and whether it is defined.
func (a *Automaton) Step(state int, symbol byte) (int, bool) {
	to, ok := a.delta[Key{State: state, Symbol: symbol}]
	return to, ok
}

// Run feeds word to the automaton from its start state and returns the
// state it ends in. It fails with *UndefinedTransitionError when the run gets
// stuck.
func (a *Automaton) Run(word string) (int, error) {
	cur := a.start
	for i := 0; i < len(word); i++ {
		next, ok := a.delta[Key{State: cur, Symbol: word[i]}]
		if !ok {
			return cur, &UndefinedTransitionError{State: cur, Symbol: word[i], Offset: i}
		}
		cur = next
	}
	return cur, nil
}

// Accepts reports whether word is in the language of a. A stuck run rejects.
func (a *Automaton) Accepts(word string) bool {
	end, err := a.Run(word)
	if err != nil {
		return false
	}
	return a.IsFinal(end)
}

// IsTotal reports whether every state has a transition on every symbol.
func (a *Automaton) IsTotal() bool {
	return len(a.delta) == a.numStates*len(Alphabet)
}

// Transitions returns all defined transitions ordered by source state and
// then by symbol.
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, len(a.delta))
	for k, to := range a.delta {
		out = append(out, Transition{From: k.State, Symbol: k.Symbol, To: to})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Clone returns an independent copy of a.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		numStates: a.numStates,
		start:     a.start,
		finals:    make(map[int]struct{}, len(a.finals)),
		delta:     make(map[Key]int, len(a.delta)),
	}
	for f := range a.finals {
		c.finals[f] = struct{}{}
	}
	for k, v := range a.delta {
		c.delta[k] = v
	}
	return c
}
