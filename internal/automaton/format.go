package automaton

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

func braces(body string) string {
	if body == "" {
		return "{ }"
	}
	return "{ " + body + " }"
}

// WriteTo writes a human-readable dump of a: states, final states, alphabet,
// start state and one line per defined transition, grouped by state.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	states := make([]int, a.numStates)
	for i := range states {
		states[i] = i
	}
	symbols := strings.Split(Alphabet, "")

	fmt.Fprintf(&buf, "States: %s\n", braces(joinInts(states)))
	fmt.Fprintf(&buf, "Final states: %s\n", braces(joinInts(a.Finals())))
	fmt.Fprintf(&buf, "Alphabet: %s\n", braces(strings.Join(symbols, ", ")))
	fmt.Fprintf(&buf, "Start state: %d\n", a.start)
	buf.WriteString("Transitions:\n")

	trs := a.Transitions()
	next := 0
	for s := 0; s < a.numStates; s++ {
		fmt.Fprintf(&buf, "State %d:\n", s)
		for next < len(trs) && trs[next].From == s {
			t := trs[next]
			fmt.Fprintf(&buf, "f(%d,%c) = %d\n", t.From, t.Symbol, t.To)
			next++
		}
	}

	return buf.WriteTo(w)
}

// String returns the same dump as WriteTo.
func (a *Automaton) String() string {
	var sb strings.Builder
	_, _ = a.WriteTo(&sb)
	return sb.String()
}

// DOT renders a as Graphviz source. Final states are drawn as double circles
// and parallel edges are merged into one edge labelled with all symbols.
func (a *Automaton) DOT(name string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("digraph %q {\n", name))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")
	sb.WriteString("  start [shape=point];\n")
	sb.WriteString(fmt.Sprintf("  start -> q%d;\n", a.start))

	for s := 0; s < a.numStates; s++ {
		if a.IsFinal(s) {
			sb.WriteString(fmt.Sprintf("  q%d [label=\"%d\", shape=doublecircle];\n", s, s))
		} else {
			sb.WriteString(fmt.Sprintf("  q%d [label=\"%d\"];\n", s, s))
		}
	}

	type edge struct{ from, to int }
	var order []edge
	labels := make(map[edge][]string)
	for _, t := range a.Transitions() {
		e := edge{t.From, t.To}
		if _, ok := labels[e]; !ok {
			order = append(order, e)
		}
		labels[e] = append(labels[e], string(t.Symbol))
	}
	for _, e := range order {
		sb.WriteString(fmt.Sprintf("  q%d -> q%d [label=%q];\n", e.from, e.to, strings.Join(labels[e], ",")))
	}

	sb.WriteString("}\n")
	return sb.String()
}
