// Package config defines the format-agnostic model of automaton definition
// files, along with the Loader interface that concrete formats implement.
//
// The Model is the single input of the builder package. The HCL
// implementation lives in the hcl package.
package config
