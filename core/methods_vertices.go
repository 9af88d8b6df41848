// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// A new vertex has no edges; its distance to itself is 0 and to every other
// vertex Infinity (represented by the absence of a distance entry).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex together with every edge value and distance
// that references it.
//
// Implementation:
//   - Stage 1: Validate ID and presence.
//   - Stage 2: Drop incident values and distances (both keyed by Pair).
//   - Stage 3: Drop the vertex itself.
//
// Distances between the remaining vertices are left untouched; paths that ran
// through the removed vertex are only corrected by UpdateDistances.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(E + D) where D is the number of stored finite distances.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; !exists {
		return fmt.Errorf("RemoveVertex(%s): %w", id, ErrVertexNotFound)
	}

	var p Pair
	for p = range g.values {
		if p.Has(id) {
			delete(g.values, p)
		}
	}
	for p = range g.distances {
		if p.Has(id) {
			delete(g.distances, p)
		}
	}
	delete(g.vertices, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// requireVertices returns ErrVertexNotFound for the first ID that is absent.
func (g *Graph) requireVertices(op string, ids ...string) error {
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%s: %w", op, ErrEmptyVertexID)
		}
		if _, ok := g.vertices[id]; !ok {
			return fmt.Errorf("%s: %q: %w", op, id, ErrVertexNotFound)
		}
	}

	return nil
}
