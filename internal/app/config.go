package app

import (
	"errors"
	"fmt"
	"go/token"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefsPaths []string // definition files or directories
	Format    string   // "hcl" or "yaml"

	LogFormat   string
	LogLevel    string
	WorkerCount int

	// Report switches.
	Dump           bool
	DOT            bool
	Regex          bool
	MaxRegexStates int

	// EmitGo, when set, is the Go file that receives a generated matcher
	// per automaton, in package EmitPackage.
	EmitGo      string
	EmitPackage string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.DefsPaths) == 0 {
		return nil, errors.New("at least one definitions path is required")
	}
	if cfg.WorkerCount < 1 {
		return nil, fmt.Errorf("worker count must be positive, got %d", cfg.WorkerCount)
	}
	if cfg.MaxRegexStates < 0 {
		return nil, fmt.Errorf("max regex states must not be negative, got %d", cfg.MaxRegexStates)
	}
	if cfg.EmitGo != "" && !token.IsIdentifier(cfg.EmitPackage) {
		return nil, fmt.Errorf("invalid package name %q for generated matchers", cfg.EmitPackage)
	}
	return &cfg, nil
}
