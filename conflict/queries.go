// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Read-only accessors: sum, weights and vertex lookups.
//
// Determinism:
//   - Vertices, VerticesForNode and VertexNames are ordered by link.

package conflict

import (
	"maps"

	"github.com/katalvlaran/meshchan/core"
	"github.com/katalvlaran/meshchan/interference"
)

// InterferenceSum returns the sum of all pair weights.
//
// The value is reset exactly by UpdateEdges and adjusted by difference in
// UpdateEdge, so after many flips it may differ from a full recompute by
// floating-point rounding only.
//
// Complexity: O(1).
func (g *Graph) InterferenceSum() float64 { return g.sum }

// Weight returns the weight between a and b; a vertex has weight 0 with itself.
//
// Errors:
//   - ErrVertexNotFound if a or b does not belong to g.
func (g *Graph) Weight(a, b *Vertex) (float64, error) {
	if err := g.owns(a, "Weight"); err != nil {
		return 0, err
	}
	if err := g.owns(b, "Weight"); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}

	return g.weights[NewLinkPair(a.link, b.link)], nil
}

// Weights returns a copy of all pair weights.
func (g *Graph) Weights() map[LinkPair]float64 { return maps.Clone(g.weights) }

// Vertex returns the vertex for the link {a, b} in either orientation.
func (g *Graph) Vertex(a, b string) (*Vertex, bool) {
	v, ok := g.vertices[core.NewPair(a, b)]

	return v, ok
}

// VerticesForNode returns the vertices whose link has node as an endpoint.
func (g *Graph) VerticesForNode(node string) []*Vertex {
	var out []*Vertex
	for _, link := range g.sortedLinks() {
		if link.Has(node) {
			out = append(out, g.vertices[link])
		}
	}

	return out
}

// Vertices returns all vertices.
func (g *Graph) Vertices() []*Vertex {
	links := g.sortedLinks()
	out := make([]*Vertex, len(links))
	for i, link := range links {
		out[i] = g.vertices[link]
	}

	return out
}

// VertexNames returns the "A_B" name of every vertex.
func (g *Graph) VertexNames() []string {
	links := g.sortedLinks()
	out := make([]string, len(links))
	for i, link := range links {
		out[i] = link.String()
	}

	return out
}

// VertexCount returns the number of vertices, i.e. network links.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Network returns the bound network graph.
func (g *Graph) Network() *core.Graph { return g.network }

// Model returns the interference model.
func (g *Graph) Model() interference.Model { return g.model }
