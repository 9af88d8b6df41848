// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Construction and the three recompute paths: UpdateEdges, UpdateEdge, Update.
//
// Atomicity:
//   - Every path computes new weights into a staging area first and commits
//     only when all model evaluations succeeded. A failed recompute leaves the
//     previous weights and sum in place.

package conflict

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/meshchan/core"
	"github.com/katalvlaran/meshchan/interference"
	"github.com/katalvlaran/meshchan/metrics"
)

// New binds a conflict graph to network, creating one vertex per link, and
// computes every weight with model.
//
// Errors:
//   - ErrNilNetwork / ErrNilModel for missing collaborators.
//   - Any model error from the initial UpdateEdges.
//
// Complexity: O(L²) model evaluations.
func New(network *core.Graph, model interference.Model, opts ...Option) (*Graph, error) {
	if network == nil {
		return nil, ErrNilNetwork
	}
	if model == nil {
		return nil, ErrNilModel
	}

	g := &Graph{
		network:  network,
		model:    model,
		vertices: make(map[core.Pair]*Vertex, network.EdgeCount()),
		weights:  make(map[LinkPair]float64),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, link := range network.SortedEdges() {
		g.vertices[link] = &Vertex{link: link, graph: g}
	}

	if err := g.UpdateEdges(); err != nil {
		return nil, err
	}
	g.logger.Info("conflict graph created",
		zap.String("model", model.Name()),
		zap.Int("links", len(g.vertices)),
		zap.Float64("interference_sum", g.sum),
	)

	return g, nil
}

// UpdateEdges recomputes the weight of every unordered vertex pair.
//
// Implementation:
//   - Stage 1: Sort links so pair order, and hence the first reported error,
//     is deterministic.
//   - Stage 2: Evaluate the model for each pair i<j into a fresh map.
//   - Stage 3: Swap the fresh map and sum in.
//
// Complexity: O(L²) model evaluations.
func (g *Graph) UpdateEdges() error {
	start := time.Now()
	next, sum, err := g.computeWeights(g.network, g.sortedLinks())
	if err != nil {
		return fmt.Errorf("conflict: UpdateEdges: %w", err)
	}
	g.commitWeights(next, sum, start)

	return nil
}

// computeWeights evaluates the model for every pair of links on network
// without touching g.
func (g *Graph) computeWeights(network *core.Graph, links []core.Pair) (map[LinkPair]float64, float64, error) {
	next := make(map[LinkPair]float64, len(links)*(len(links)-1)/2)
	var sum float64
	for i := 0; i < len(links); i++ {
		for j := i + 1; j < len(links); j++ {
			lp := LinkPair{A: links[i], B: links[j]}
			w, err := g.model.Interference(network, lp.A, lp.B)
			if err != nil {
				return nil, 0, fmt.Errorf("pair %s: %w", lp, err)
			}
			next[lp] = w
			sum += w
		}
	}

	return next, sum, nil
}

func (g *Graph) commitWeights(next map[LinkPair]float64, sum float64, start time.Time) {
	g.weights, g.sum = next, sum
	g.metrics.RecordRecompute(metrics.KindFull, time.Since(start), sum)
	g.logger.Debug("conflict graph recomputed",
		zap.Int("pairs", len(next)),
		zap.Float64("interference_sum", sum),
	)
}

// UpdateEdge recomputes only the weights of pairs that contain v, the set a
// channel change of v can affect.
//
// Errors:
//   - ErrVertexNotFound if v does not belong to g.
//   - Any model error; no weight is written in that case.
//
// Complexity: O(L) model evaluations.
func (g *Graph) UpdateEdge(v *Vertex) error {
	if err := g.owns(v, "UpdateEdge"); err != nil {
		return err
	}
	start := time.Now()

	type staged struct {
		lp LinkPair
		w  float64
	}
	batch := make([]staged, 0, len(g.vertices))
	for link := range g.vertices {
		if link == v.link {
			continue
		}
		lp := NewLinkPair(v.link, link)
		w, err := g.model.Interference(g.network, lp.A, lp.B)
		if err != nil {
			return fmt.Errorf("conflict: UpdateEdge(%s): %w", lp, err)
		}
		batch = append(batch, staged{lp: lp, w: w})
	}

	for _, s := range batch {
		g.sum += s.w - g.weights[s.lp]
		g.weights[s.lp] = s.w
	}
	g.metrics.RecordRecompute(metrics.KindIncremental, time.Since(start), g.sum)

	return nil
}

// Update reconciles g with network after a topology change.
//
// Implementation:
//   - Stage 1: If the edge sets (values included) are identical, do nothing.
//   - Stage 2: Collect links that vanished; each must have a vertex.
//   - Stage 3: Stage the next vertex set, reusing vertices of kept links.
//   - Stage 4: Compute every weight against network.
//   - Stage 5: Commit vertices, binding, weights and sum together and detach
//     vanished vertices.
//
// Errors:
//   - ErrNilNetwork for a nil network.
//   - ErrVertexNotFound if a vanished link has no vertex.
//   - Any model error.
//
// On error g is left unchanged and stays bound to its previous network.
//
// Complexity: O(E) reconciliation + O(L²) model evaluations.
func (g *Graph) Update(network *core.Graph) error {
	if network == nil {
		return ErrNilNetwork
	}
	start := time.Now()
	oldEdges, newEdges := g.network.Edges(false), network.Edges(false)
	if core.SameEdges(oldEdges, newEdges) {
		return nil
	}

	var gone []core.Pair
	for link := range oldEdges {
		if _, ok := newEdges[link]; ok {
			continue
		}
		if _, ok := g.vertices[link]; !ok {
			return fmt.Errorf("conflict: Update: link %s: %w", link, ErrVertexNotFound)
		}
		gone = append(gone, link)
	}

	nextVertices := make(map[core.Pair]*Vertex, len(newEdges))
	added := 0
	for link := range newEdges {
		if v, ok := g.vertices[link]; ok {
			nextVertices[link] = v
			continue
		}
		nextVertices[link] = &Vertex{link: link, graph: g}
		added++
	}
	links := make([]core.Pair, 0, len(nextVertices))
	for link := range nextVertices {
		links = append(links, link)
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Less(links[j]) })

	next, sum, err := g.computeWeights(network, links)
	if err != nil {
		return fmt.Errorf("conflict: Update: %w", err)
	}

	for _, link := range gone {
		g.vertices[link].graph = nil
	}
	g.vertices, g.network = nextVertices, network
	g.commitWeights(next, sum, start)
	g.logger.Info("conflict graph topology changed",
		zap.Int("added", added),
		zap.Int("removed", len(gone)),
		zap.Int("links", len(g.vertices)),
	)

	return nil
}

// SetChannels writes a whole channel assignment and recomputes every weight
// once. Unlisted links keep their channel.
//
// Errors:
//   - ErrVertexNotFound for a link without a vertex; nothing is written.
//   - Any model error; all written channels are restored.
//
// Complexity: O(|assignment|) writes + O(L²) model evaluations.
func (g *Graph) SetChannels(assignment map[core.Pair]int) error {
	previous := make(map[core.Pair]string, len(assignment))
	for link := range assignment {
		canon := core.NewPair(link.A, link.B)
		if _, ok := g.vertices[canon]; !ok {
			return fmt.Errorf("conflict: SetChannels: link %s: %w", canon, ErrVertexNotFound)
		}
		old, err := g.network.EdgeValue(canon.A, canon.B)
		if err != nil {
			return fmt.Errorf("conflict: SetChannels: %w", err)
		}
		previous[canon] = old
	}

	restore := func() {
		for link, old := range previous {
			_ = g.network.SetEdgeValue(link.A, link.B, old, false)
		}
	}
	for link, c := range assignment {
		if err := g.network.SetEdgeValue(link.A, link.B, channelValue(c), false); err != nil {
			restore()
			return fmt.Errorf("conflict: SetChannels: %w", err)
		}
	}
	if err := g.UpdateEdges(); err != nil {
		restore()
		return err
	}

	return nil
}

// sortedLinks returns the links of all vertices ordered by Pair.Less.
func (g *Graph) sortedLinks() []core.Pair {
	out := make([]core.Pair, 0, len(g.vertices))
	for link := range g.vertices {
		out = append(out, link)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// owns checks that v is a live vertex of g.
func (g *Graph) owns(v *Vertex, op string) error {
	if v == nil || v.graph != g || g.vertices[v.link] != v {
		return fmt.Errorf("conflict: %s: %w", op, ErrVertexNotFound)
	}

	return nil
}
