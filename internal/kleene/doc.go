// Package kleene derives a regular expression from a finite automaton using
// Kleene's path-enumeration algorithm.
//
// For states numbered 1..n, R(i, j, k) denotes every word that drives the
// automaton from state i to state j without visiting an intermediate state
// numbered above k:
//
//	R(i, j, 0) = direct symbols from i to j, plus $ when i == j, or # if none
//	R(i, j, k) = (R(i,j,k-1))+(R(i,k,k-1)).(R(k,k,k-1))*.(R(k,j,k-1))
//
// The language of the automaton is the alternation of R(start, f, n) over
// the final states f.
//
// Output operators are '+' (alternation), '.' (concatenation) and postfix
// '*'; '$' is the empty word and '#' the empty language. The expression is
// not simplified.
//
// Each table cell is built once and shared by reference with every cell that
// contains it, so synthesis does O(n^3) work even though the printed form
// can be far longer.
package kleene
