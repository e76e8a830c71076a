// Package codegen renders automata as standalone Go source. Each automaton
// becomes a table-driven `func MatchX(input string) bool` with no
// dependency on this module.
package codegen
