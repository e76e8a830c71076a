package config

import "context"

// Loader is the interface for a format-specific definitions loader.
type Loader interface {
	// Load reads every definition file found under the given paths and
	// translates them into one format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
