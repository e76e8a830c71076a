// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for discovering .hcl files, decoding the
// automaton, compose and check blocks, and translating them into the
// format-agnostic config.Model.
//
// Attribute expressions are evaluated against a context that exposes the
// variables `alphabet`, `letters` and `digits`, so a transition can be
// written as `on = letters`.
package hcl
