// Package yaml provides the YAML implementation of the config.Loader
// interface. Files ending in .yaml or .yml hold top-level `automata`,
// `compositions` and `checks` sequences that mirror the HCL blocks.
package yaml
