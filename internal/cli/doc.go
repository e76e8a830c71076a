// Package cli parses command-line arguments, validates user input and
// carries process-level concerns like exit codes. It translates CLI flags
// into the driver's configuration.
package cli
