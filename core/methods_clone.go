// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Copying and merging graph instances.
//
// Determinism:
//   - Copy/CopyFast never recompute distances; Merge recomputes exactly once.

package core

import (
	"fmt"
	"maps"
)

// Copy returns a deep copy of the Graph: vertices, edge values and distances.
// Complexity: O(V + E + D).
func (g *Graph) Copy() *Graph {
	return &Graph{
		vertices:  maps.Clone(g.vertices),
		values:    maps.Clone(g.values),
		distances: maps.Clone(g.distances),
	}
}

// CopyFast returns a copy holding the same vertices and edges, with distance 1
// on every edge and Infinity elsewhere. Call UpdateDistances on the copy when
// multi-hop distances are needed.
// Complexity: O(V + E).
func (g *Graph) CopyFast() *Graph {
	c := &Graph{
		vertices:  maps.Clone(g.vertices),
		values:    maps.Clone(g.values),
		distances: make(map[Pair]int, len(g.values)),
	}
	for p := range g.values {
		if p.A != p.B {
			c.distances[p] = 1
		}
	}

	return c
}

// Merge adds the vertices and edge values of other to g, then runs a single
// UpdateDistances. Values present in both graphs are overwritten by other.
//
// Errors:
//   - Propagates AddVertex/SetEdgeValue failures (not expected for a valid other).
//
// Complexity: O(V + E) + O(V³) for the distance update.
func (g *Graph) Merge(other *Graph) error {
	if other == nil {
		return nil
	}
	for id := range other.vertices {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("Merge: %w", err)
		}
	}
	for p, v := range other.values {
		if err := g.SetEdgeValue(p.A, p.B, v, false); err != nil {
			return fmt.Errorf("Merge: %w", err)
		}
	}
	g.UpdateDistances()

	return nil
}
