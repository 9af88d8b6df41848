// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Vertex and LinkPair types, sentinel errors and options.

package conflict

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshchan/core"
	"github.com/katalvlaran/meshchan/interference"
	"github.com/katalvlaran/meshchan/metrics"
)

// Sentinel errors for conflict graph operations.
var (
	// ErrNilNetwork indicates construction or rebinding without a network graph.
	ErrNilNetwork = errors.New("conflict: network graph is nil")

	// ErrNilModel indicates construction without an interference model.
	ErrNilModel = errors.New("conflict: interference model is nil")

	// ErrVertexNotFound indicates a vertex that does not belong to this graph,
	// or a link that has no vertex.
	ErrVertexNotFound = errors.New("conflict: vertex not found")
)

// LinkPair is an unordered pair of links, stored with A ≤ B by Pair.Less.
type LinkPair struct {
	A, B core.Pair
}

// NewLinkPair returns the canonical LinkPair for x and y. Both links are
// canonicalized first.
func NewLinkPair(x, y core.Pair) LinkPair {
	x, y = core.NewPair(x.A, x.B), core.NewPair(y.A, y.B)
	if y.Less(x) {
		x, y = y, x
	}

	return LinkPair{A: x, B: y}
}

// String renders the pair as "A_B|C_D".
func (lp LinkPair) String() string { return lp.A.String() + "|" + lp.B.String() }

// Vertex is the conflict-graph view of one network link.
type Vertex struct {
	link  core.Pair
	graph *Graph // nil once the link left the network
}

// Graph is the conflict graph bound to a network graph. The network graph is
// not owned: it must outlive the conflict graph, and every channel change has
// to go through Vertex.SetChannel or SetChannels to keep weights current.
type Graph struct {
	network  *core.Graph
	model    interference.Model
	vertices map[core.Pair]*Vertex
	weights  map[LinkPair]float64
	sum      float64

	logger  *zap.Logger
	metrics *metrics.Registry
}

// Option configures a Graph.
type Option func(*Graph)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics records recompute counts, durations and the resulting sum.
func WithMetrics(r *metrics.Registry) Option {
	return func(g *Graph) { g.metrics = r }
}
