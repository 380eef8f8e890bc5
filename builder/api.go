// SPDX-License-Identifier: MIT
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs, options, seed and constructor order give identical networks.
//   - Constructors never panic; they return sentinel errors wrapped with context.

// Package builder generates synthetic pedestrian networks: lattices of
// streets and rings of paths, with coordinates for drawing and segment
// lengths drawn from a configurable policy. They serve as fixtures for tests
// and benchmarks and as sample inputs for the CLI.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pathdiv/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters first and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildNetwork creates an empty core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order.
//
// Errors:
//   - ErrConstructFailed (wrapped) for a nil constructor.
//   - any constructor error, wrapped with "BuildNetwork: %w".
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return g, nil
}
