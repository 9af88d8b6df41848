// SPDX-License-Identifier: MIT

// Package core provides the undirected network Graph used by the channel
// assignment engine: a vertex set, a value per unordered vertex pair and an
// all-pairs hop-count distance matrix kept consistent with the edge set.
//
// An edge exists between two vertices iff their pair carries a non-empty
// value. In a network graph the value is the channel assigned to the link,
// stored as text so that graphs can be round-tripped through the formats in
// package converters without loss.
//
// Storage is keyed by Pair, a canonical unordered vertex pair (A <= B), so the
// symmetry of values and distances holds by construction:
//
//	values[Pair{A,B}]    = "36"   // link A–B on channel 36
//	distances[Pair{A,C}] = 2      // A–B–C
//
// Distances are hop counts, independent of the edge values. A missing
// off-diagonal entry means Infinity; the distance from a vertex to itself is
// always 0.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                          // O(1), idempotent
//	RemoveVertex(id string) error                       // O(V)
//	Vertices() []string                                 // O(V·log V), sorted
//
//	// Edges
//	SetEdgeValue(a, b, value string, recompute bool) error
//	EdgeValue(a, b string) (string, error)              // O(1)
//	Edges(bothDirections bool) map[Pair]string          // O(E)
//	Neighbors(id string) ([]string, error)              // O(E)
//
//	// Distances
//	Distance(a, b string) (int, error)                  // O(1)
//	UpdateDistances()                                   // O(V³), Floyd–Warshall
//
//	// Whole-graph
//	Merge(other *Graph) error
//	Copy() *Graph / CopyFast() *Graph
//
// Callers performing several edge writes should pass recompute=false and call
// UpdateDistances once at the end, since any single edge change can shorten
// paths elsewhere in the graph.
//
// Errors:
//
//	ErrEmptyVertexID   – zero-length vertex ID
//	ErrVertexNotFound  – missing vertex on lookup or mutation
//
// A Graph is not safe for concurrent mutation. It is owned by exactly one
// assignment session at a time.
package core
