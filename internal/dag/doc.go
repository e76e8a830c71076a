// Package dag is a small directed acyclic graph keyed by string IDs. The
// builder uses it to order compositions after the automata they are built
// from and to reject circular definitions.
package dag
