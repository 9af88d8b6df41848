// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge value writes and queries: SetEdgeValue/EdgeValue/HasEdge/Edges/SortedEdges/EdgeCount.
//
// Determinism:
//   - SortedEdges() returns canonical pairs ordered by (A, B) asc.
//   - Edges() returns a map; callers needing a stable order use SortedEdges().

package core

import (
	"fmt"
	"sort"
)

// SetEdgeValue writes the value of the undirected edge {a, b}.
//
// Implementation:
//   - Stage 1: Validate both endpoints exist.
//   - Stage 2: Store or clear the value under the canonical pair.
//   - Stage 3: A non-empty value sets distance(a,b)=1 immediately.
//   - Stage 4: If recompute, run UpdateDistances.
//
// An empty value removes the edge. Its old distance entry stays until the next
// UpdateDistances, which rebuilds every distance from the edge set.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound for unknown endpoints.
//
// Complexity: O(1) without recompute, O(V³) with it.
func (g *Graph) SetEdgeValue(a, b, value string, recompute bool) error {
	if err := g.requireVertices("SetEdgeValue", a, b); err != nil {
		return err
	}

	p := NewPair(a, b)
	if value == "" {
		delete(g.values, p)
	} else {
		g.values[p] = value
		if a != b {
			g.distances[p] = 1
		}
	}

	if recompute {
		g.UpdateDistances()
	}

	return nil
}

// EdgeValue returns the value stored for {a, b}; "" means no edge.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound for unknown endpoints.
func (g *Graph) EdgeValue(a, b string) (string, error) {
	if err := g.requireVertices("EdgeValue", a, b); err != nil {
		return "", err
	}

	return g.values[NewPair(a, b)], nil
}

// HasEdge reports whether {a, b} carries a non-empty value. Unknown vertices
// yield false.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.values[NewPair(a, b)]

	return ok
}

// Edges returns every edge with a non-empty value.
//
// By default each undirected edge appears once under its canonical pair. With
// bothDirections the reversed pair is added as well, so {A,B} and {B,A} both
// map to the same value.
//
// Complexity: O(E).
func (g *Graph) Edges(bothDirections bool) map[Pair]string {
	size := len(g.values)
	if bothDirections {
		size *= 2
	}

	out := make(map[Pair]string, size)
	for p, v := range g.values {
		out[p] = v
		if bothDirections && p.A != p.B {
			out[p.Reverse()] = v
		}
	}

	return out
}

// SortedEdges returns the canonical pairs of all edges ordered by (A, B).
// Complexity: O(E log E).
func (g *Graph) SortedEdges() []Pair {
	out := make([]Pair, 0, len(g.values))
	for p := range g.values {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// EdgeCount returns the number of edges with a non-empty value.
func (g *Graph) EdgeCount() int { return len(g.values) }

// Distance returns the hop count between a and b: 0 for a == b and Infinity
// when no path is known.
//
// Errors:
//   - ErrEmptyVertexID / ErrVertexNotFound for unknown endpoints.
func (g *Graph) Distance(a, b string) (int, error) {
	if err := g.requireVertices("Distance", a, b); err != nil {
		return 0, err
	}

	return g.distance(a, b), nil
}

// distance is the unchecked lookup used on hot paths.
func (g *Graph) distance(a, b string) int {
	if a == b {
		return 0
	}
	if d, ok := g.distances[NewPair(a, b)]; ok {
		return d
	}

	return Infinity
}

// Equal reports whether both graphs have the same vertex set and the same
// edge values. Distances are not compared.
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.vertices) != len(other.vertices) || len(g.values) != len(other.values) {
		return false
	}
	for id := range g.vertices {
		if _, ok := other.vertices[id]; !ok {
			return false
		}
	}

	return SameEdges(g.values, other.values)
}

// SameEdges reports whether two edge maps hold identical pairs and values.
func SameEdges(x, y map[Pair]string) bool {
	if len(x) != len(y) {
		return false
	}
	for p, v := range x {
		if w, ok := y[p]; !ok || w != v {
			return false
		}
	}

	return true
}

// String renders a short summary, e.g. "Graph(V=5, E=4)".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(V=%d, E=%d)", len(g.vertices), len(g.values))
}
