// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Hop-count flood from one origin and connected components.

package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/meshchan/core"
)

// queueItem pairs a node ID with its hop count.
type queueItem struct {
	id   string
	hops int
}

// walker holds the mutable state of one flood.
type walker struct {
	graph *core.Graph
	opts  options
	queue []queueItem
	res   *Result
}

// BFS floods g from origin over links with a non-empty value.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, a context error on cancellation,
// or the OnVisit error that stopped the walk. On error the partial Result is
// returned alongside.
func BFS(g *core.Graph, origin string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(origin) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, origin)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Origin: origin,
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Via:    make(map[string]string, n),
		},
	}
	w.enqueue(origin, 0, "")

	return w.res, w.loop()
}

// Components partitions the nodes of g into connected components. Each
// component is sorted, and components are ordered by their first node.
//
// Complexity: O(V + E).
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[string]bool, g.VertexCount())
	var out [][]string
	for _, id := range g.Vertices() {
		if seen[id] {
			continue
		}
		res, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		comp := append([]string(nil), res.Order...)
		sort.Strings(comp)
		for _, v := range comp {
			seen[v] = true
		}
		out = append(out, comp)
	}

	return out, nil
}

func (w *walker) enqueue(id string, hops int, via string) {
	w.res.Hops[id] = hops
	if via != "" {
		w.res.Via[id] = via
	}
	w.queue = append(w.queue, queueItem{id: id, hops: hops})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.ctx.Done():
			return w.opts.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.onVisit(item.id, item.hops); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues every unreached neighbor behind a kept link,
// unless the hop limit is hit.
func (w *walker) enqueueNeighbors(item queueItem) error {
	next := item.hops + 1
	if w.opts.maxHops > 0 && next > w.opts.maxHops {
		return nil
	}

	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if w.res.Reached(nbr) || !w.opts.link(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.id)
	}

	return nil
}
