// Package app contains the demonstration driver. It loads automaton
// definitions, builds them, evaluates their checks and writes a report for
// every automaton, decoupled from any specific entrypoint like a CLI.
package app
