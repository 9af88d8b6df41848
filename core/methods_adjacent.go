// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries.
//
// Determinism:
//   - Neighbors() returns unique IDs sorted lex asc.

package core

import "sort"

// Neighbors returns the vertices that share a non-empty edge with id, sorted
// lexicographically ascending. A self-loop does not make a vertex its own
// neighbor.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound for unknown id.
//
// Complexity: O(E + d log d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if err := g.requireVertices("Neighbors", id); err != nil {
		return nil, err
	}

	out := make([]string, 0)
	for p := range g.values {
		if p.A == p.B {
			continue
		}
		if other, ok := p.Other(id); ok {
			out = append(out, other)
		}
	}
	sort.Strings(out)

	return out, nil
}

// IncidentEdges returns the canonical pairs of all edges touching id, ordered
// by (A, B). Unknown ids yield an empty slice.
func (g *Graph) IncidentEdges(id string) []Pair {
	out := make([]Pair, 0)
	for p := range g.values {
		if p.Has(id) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}
