package automaton

import "fmt"

// Completed returns a total copy of a. If a is already total the copy has
// the same states; otherwise an error state is appended to it.
func Completed(a *Automaton) *Automaton {
	c := a.Clone()
	if !c.IsTotal() {
		c.AddErrorState()
	}
	return c
}

func requireTotal(name string, a *Automaton) error {
	if !a.IsTotal() {
		return fmt.Errorf("%s operand: %w", name, ErrNotTotal)
	}
	return nil
}

// Union returns an automaton accepting the words accepted by a or by b.
// Both operands must be total.
func Union(a, b *Automaton) (*Automaton, error) {
	if err := requireTotal("left", a); err != nil {
		return nil, err
	}
	if err := requireTotal("right", b); err != nil {
		return nil, err
	}
	return product(a, b), nil
}

// Complement returns an automaton accepting exactly the words a rejects.
// The operand must be total.
func Complement(a *Automaton) (*Automaton, error) {
	if err := requireTotal("complement", a); err != nil {
		return nil, err
	}
	c := a.Clone()
	c.finals = make(map[int]struct{}, a.numStates-len(a.finals))
	for s := 0; s < a.numStates; s++ {
		if !a.IsFinal(s) {
			c.finals[s] = struct{}{}
		}
	}
	return c, nil
}

// Intersect returns an automaton accepting the words accepted by both a and
// b, built as ¬(¬a ∪ ¬b). Both operands must be total.
func Intersect(a, b *Automaton) (*Automaton, error) {
	na, err := Complement(a)
	if err != nil {
		return nil, fmt.Errorf("left: %w", err)
	}
	nb, err := Complement(b)
	if err != nil {
		return nil, fmt.Errorf("right: %w", err)
	}
	u, err := Union(na, nb)
	if err != nil {
		return nil, err
	}
	return Complement(u)
}

// product builds the direct product of a and b with state (i, j) encoded as
// i*|b|+j. A product state is final when either component is. When only one
// side has a transition on a symbol, the missing side moves to its state 0;
// when neither has one, the product has none. For total operands the second
// rule never applies.
func product(a, b *Automaton) *Automaton {
	m := b.numStates
	p := &Automaton{
		numStates: a.numStates * m,
		start:     a.start*m + b.start,
		finals:    make(map[int]struct{}),
		delta:     make(map[Key]int),
	}

	for i := 0; i < a.numStates; i++ {
		for j := 0; j < m; j++ {
			cur := i*m + j
			if a.IsFinal(i) || b.IsFinal(j) {
				p.finals[cur] = struct{}{}
			}
			for k := 0; k < len(Alphabet); k++ {
				c := Alphabet[k]
				da, okA := a.Step(i, c)
				db, okB := b.Step(j, c)
				if !okA && !okB {
					continue
				}
				p.delta[Key{State: cur, Symbol: c}] = da*m + db
			}
		}
	}
	return p
}
