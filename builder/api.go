// SPDX-License-Identifier: MIT
// Package: meshchan/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors write links with recompute=false; BuildGraph recomputes
//     distances exactly once at the end.
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshchan/core"
)

// Constructor applies a deterministic topology step using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, applies all constructors in order and recomputes hop distances.
//
// Constructors share one graph, so vertex IDs produced by several of them
// refer to the same nodes.
//
// Complexity: Σ constructor cost + O(V³) for the final distance update.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	g.UpdateDistances()

	return g, nil
}
