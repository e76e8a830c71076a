package kleene

import (
	"bufio"
	"io"
	"math"
	"strings"
)

const (
	// EmptyWord is the literal for the word of length zero.
	EmptyWord = "$"
	// EmptySet is the literal for the language with no words.
	EmptySet = "#"
)

// Source is the read-only view of an automaton that synthesis needs.
type Source interface {
	NumStates() int
	Start() int
	Finals() []int
	Step(state int, symbol byte) (int, bool)
	Alphabet() string
}

// node is one cell of the table. Base cells carry a literal; inductive cells
// point at the four cells of the previous layer they are composed of.
type node struct {
	lit            string
	ij, ik, kk, kj *node
}

// table is the flat (n+1)^3 dynamic-programming table, 1-based in i and j.
type table struct {
	n     int
	cells []*node
}

func newTable(n int) *table {
	d := n + 1
	return &table{n: n, cells: make([]*node, d*d*d)}
}

func (t *table) idx(i, j, k int) int {
	d := t.n + 1
	return (i*d+j)*d + k
}

func (t *table) at(i, j, k int) *node { return t.cells[t.idx(i, j, k)] }

func (t *table) set(i, j, k int, nd *node) { t.cells[t.idx(i, j, k)] = nd }

// Expression is a synthesized regular expression: the alternation of its
// terms, or the empty language when there are none.
type Expression struct {
	terms []*node
}

// Synthesize returns a regular expression equivalent to src.
func Synthesize(src Source) *Expression {
	n := src.NumStates()
	alphabet := src.Alphabet()
	t := newTable(n)

	empty := &node{lit: EmptySet}
	epsilon := &node{lit: EmptyWord}

	// direct[i][j] collects the symbols leading from state i to state j.
	direct := make([][]strings.Builder, n)
	for i := range direct {
		direct[i] = make([]strings.Builder, n)
	}
	for s := 0; s < n; s++ {
		for c := 0; c < len(alphabet); c++ {
			to, ok := src.Step(s, alphabet[c])
			if !ok {
				continue
			}
			b := &direct[s][to]
			if b.Len() > 0 {
				b.WriteByte('+')
			}
			b.WriteByte(alphabet[c])
		}
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			syms := direct[i-1][j-1].String()
			switch {
			case syms != "" && i == j:
				t.set(i, j, 0, &node{lit: syms + "+" + EmptyWord})
			case syms != "":
				t.set(i, j, 0, &node{lit: syms})
			case i == j:
				t.set(i, j, 0, epsilon)
			default:
				t.set(i, j, 0, empty)
			}
		}
	}

	for k := 1; k <= n; k++ {
		for i := 1; i <= n; i++ {
			for j := 1; j <= n; j++ {
				t.set(i, j, k, &node{
					ij: t.at(i, j, k-1),
					ik: t.at(i, k, k-1),
					kk: t.at(k, k, k-1),
					kj: t.at(k, j, k-1),
				})
			}
		}
	}

	e := &Expression{}
	for _, f := range src.Finals() {
		e.terms = append(e.terms, t.at(src.Start()+1, f+1, n))
	}
	return e
}

// IsEmpty reports whether e denotes the empty language because the automaton
// has no final states.
func (e *Expression) IsEmpty() bool { return len(e.terms) == 0 }

// Len returns the length of the printed expression without rendering it.
// Lengths that do not fit in an int are reported as math.MaxInt.
func (e *Expression) Len() int {
	if e.IsEmpty() {
		return len(EmptySet)
	}
	memo := make(map[*node]int)
	total := len(e.terms) - 1
	for _, t := range e.terms {
		total = addSat(total, nodeLen(t, memo))
	}
	return total
}

func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// Punctuation an inductive cell prints around its four operands.
const inductiveOverhead = len("()+().()*.()")

func nodeLen(nd *node, memo map[*node]int) int {
	if nd.lit != "" {
		return len(nd.lit)
	}
	if l, ok := memo[nd]; ok {
		return l
	}
	l := inductiveOverhead
	for _, sub := range [...]*node{nd.ij, nd.ik, nd.kk, nd.kj} {
		l = addSat(l, nodeLen(sub, memo))
	}
	memo[nd] = l
	return l
}

// Length returns the length of the expression Synthesize would print for
// src, saturating at math.MaxInt. It keeps only two layers of cell lengths, so
// it needs O(n^2) memory and stops once every cell has saturated.
func Length(src Source) int {
	finals := src.Finals()
	if len(finals) == 0 {
		return len(EmptySet)
	}
	n := src.NumStates()
	alphabet := src.Alphabet()

	// prev holds the base lengths, 0-based: first the symbol counts.
	prev := make([]int, n*n)
	for s := 0; s < n; s++ {
		for c := 0; c < len(alphabet); c++ {
			if to, ok := src.Step(s, alphabet[c]); ok {
				prev[s*n+to]++
			}
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cnt := prev[i*n+j]
			switch {
			case cnt > 0 && i == j:
				prev[i*n+j] = 2*cnt - 1 + len("+"+EmptyWord)
			case cnt > 0:
				prev[i*n+j] = 2*cnt - 1
			case i == j:
				prev[i*n+j] = len(EmptyWord)
			default:
				prev[i*n+j] = len(EmptySet)
			}
		}
	}

	next := make([]int, n*n)
	for k := 0; k < n; k++ {
		saturated := true
		kk := prev[k*n+k]
		for i := 0; i < n; i++ {
			ik := prev[i*n+k]
			for j := 0; j < n; j++ {
				l := addSat(inductiveOverhead, prev[i*n+j])
				l = addSat(l, ik)
				l = addSat(l, kk)
				l = addSat(l, prev[k*n+j])
				next[i*n+j] = l
				if l != math.MaxInt {
					saturated = false
				}
			}
		}
		prev, next = next, prev
		if saturated {
			// Every later layer sums saturated cells.
			return math.MaxInt
		}
	}

	total := len(finals) - 1
	start := src.Start()
	for _, f := range finals {
		total = addSat(total, prev[start*n+f])
	}
	return total
}

// WriteTo streams the printed expression to w.
func (e *Expression) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	if e.IsEmpty() {
		cw.put(EmptySet)
	}
	for i, t := range e.terms {
		if i > 0 {
			cw.put("+")
		}
		writeNode(cw, t)
	}
	if cw.err == nil {
		cw.err = cw.w.Flush()
	}
	return cw.n, cw.err
}

// String renders the expression.
func (e *Expression) String() string {
	var sb strings.Builder
	_, _ = e.WriteTo(&sb)
	return sb.String()
}

func writeNode(cw *countingWriter, nd *node) {
	if nd.lit != "" {
		cw.put(nd.lit)
		return
	}
	cw.put("(")
	writeNode(cw, nd.ij)
	cw.put(")+(")
	writeNode(cw, nd.ik)
	cw.put(").(")
	writeNode(cw, nd.kk)
	cw.put(")*.(")
	writeNode(cw, nd.kj)
	cw.put(")")
}

// countingWriter remembers the first write error and stops writing after it.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) put(s string) {
	if cw.err != nil {
		return
	}
	n, err := cw.w.WriteString(s)
	cw.n += int64(n)
	cw.err = err
}
