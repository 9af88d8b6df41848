// SPDX-License-Identifier: MIT
// Package: meshchan/builder
//
// connect.go - bridging step for sampled meshes.
//
// EnsureConnected runs after a topology constructor. It links the first node
// of every connected component to the first node of the next one, so the
// result is a single component whose hop distances are all finite.

package builder

import (
	"fmt"

	"github.com/katalvlaran/meshchan/bfs"
	"github.com/katalvlaran/meshchan/core"
)

// MethodEnsureConnected is the error prefix of EnsureConnected.
const MethodEnsureConnected = "EnsureConnected"

// EnsureConnected bridges the connected components of g with one link each,
// drawing channels from cfg.channelFn. Components are ordered by their
// smallest ID, and bridges join the smallest IDs of neighbouring components.
// A graph with zero or one component is left untouched.
//
// Complexity: O(V + E).
func EnsureConnected() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		comps, err := bfs.Components(g)
		if err != nil {
			return fmt.Errorf("%s: %w: %w", MethodEnsureConnected, ErrConstructFailed, err)
		}
		for i := 1; i < len(comps); i++ {
			if err = setLink(g, cfg, MethodEnsureConnected, comps[i-1][0], comps[i][0]); err != nil {
				return err
			}
		}

		return nil
	}
}
