// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Pair types, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Infinity is the distance between two vertices that are not connected.
const Infinity = math.MaxInt32

// Pair is an unordered pair of vertex IDs in canonical form: A <= B.
//
// Always build a Pair through NewPair; a literal Pair{B, A} with B > A is not
// canonical and will miss map lookups.
type Pair struct {
	A string
	B string
}

// NewPair returns the canonical (lexicographically ordered) pair for a and b.
func NewPair(a, b string) Pair {
	if b < a {
		return Pair{A: b, B: a}
	}

	return Pair{A: a, B: b}
}

// Reverse returns the pair with swapped endpoints. The result is canonical
// only when A == B.
func (p Pair) Reverse() Pair { return Pair{A: p.B, B: p.A} }

// Has reports whether id is one of the endpoints.
func (p Pair) Has(id string) bool { return p.A == id || p.B == id }

// Other returns the endpoint opposite to id, or false if id is not an endpoint.
func (p Pair) Other(id string) (string, bool) {
	switch id {
	case p.A:
		return p.B, true
	case p.B:
		return p.A, true
	}

	return "", false
}

// Less orders pairs by A, then by B.
func (p Pair) Less(q Pair) bool {
	if p.A != q.A {
		return p.A < q.A
	}

	return p.B < q.B
}

// String renders the pair as "A_B".
func (p Pair) String() string { return p.A + "_" + p.B }

// Graph is an undirected graph with a value per vertex pair and a hop-count
// distance matrix.
//
// values holds only non-empty edge values; distances holds only finite
// off-diagonal entries. Both are keyed by canonical Pair.
type Graph struct {
	vertices  map[string]struct{}
	values    map[Pair]string
	distances map[Pair]int
}

// NewGraph creates a Graph containing the given vertices and no edges.
// Empty IDs are skipped.
// Complexity: O(len(vertices))
func NewGraph(vertices ...string) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}, len(vertices)),
		values:    make(map[Pair]string),
		distances: make(map[Pair]int),
	}
	for _, v := range vertices {
		_ = g.AddVertex(v)
	}

	return g
}
