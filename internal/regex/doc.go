// Package regex parses the expression language produced by package kleene
// and translates it into Go regexp syntax, so that a synthesized expression
// can be checked against an independent matcher.
//
// Grammar, from lowest to highest precedence:
//
//	alt    := concat ('+' concat)*
//	concat := star ('.'? star)*
//	star   := atom '*'*
//	atom   := symbol | '$' | '#' | '(' alt ')'
//
// Symbols are lowercase ASCII letters and digits. '$' is the empty word and
// '#' the empty language. Blanks are ignored, and concatenation may be
// written by juxtaposition as in "a+a(aa)*".
package regex
