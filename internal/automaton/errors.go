package automaton

import (
	"errors"
	"fmt"
)

// Sentinel errors for construction, mutation and execution.
var (
	// ErrInvalidConstruction is returned by New when the state count is not
	// positive or the start or a final state lies outside the state range.
	ErrInvalidConstruction = errors.New("invalid automaton construction")

	// ErrUnknownState is returned when a transition or final marking refers
	// to a state that does not exist.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownSymbol is returned when a transition uses a symbol outside
	// the alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrDuplicateTransition is returned when a (state, symbol) pair already
	// has a destination.
	ErrDuplicateTransition = errors.New("duplicate transition")

	// ErrUndefinedTransition is matched by *UndefinedTransitionError.
	ErrUndefinedTransition = errors.New("undefined transition")

	// ErrNotTotal is returned by the algebra functions when an operand has
	// at least one undefined (state, symbol) pair.
	ErrNotTotal = errors.New("automaton is not total")
)

// UndefinedTransitionError describes where a run got stuck.
type UndefinedTransitionError struct {
	State  int
	Symbol byte
	// Offset is the index of Symbol in the input word.
	Offset int
}

func (e *UndefinedTransitionError) Error() string {
	return fmt.Sprintf("undefined transition f(%d,%q) at offset %d", e.State, e.Symbol, e.Offset)
}

func (e *UndefinedTransitionError) Unwrap() error {
	return ErrUndefinedTransition
}
