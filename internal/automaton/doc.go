// Package automaton implements deterministic finite automata over a fixed
// alphabet of lowercase ASCII letters and digits.
//
// An Automaton is built incrementally with New, AddState, AddTransition,
// MarkFinal and AddErrorState, and is then treated as immutable: the algebra
// functions (Union, Intersect, Complement) read their operands and always
// return a freshly allocated result.
//
// The transition function is partial. A run that reaches a (state, symbol)
// pair with no transition is stuck; Run reports it as an
// *UndefinedTransitionError and Accepts treats it as a rejection.
package automaton
