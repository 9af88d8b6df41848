// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Walk options, sentinel errors and the flood Result.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil network graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the origin node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by Route for a node the walk never reached.
	ErrUnreached = errors.New("bfs: node not reached")
)

// Option tunes a walk. Invalid values are recorded and reported by BFS.
type Option func(*options)

type options struct {
	ctx     context.Context
	maxHops int
	link    func(from, to string) bool
	onVisit func(id string, hops int) error
	err     error
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		link:    func(string, string) bool { return true },
		onVisit: func(string, int) error { return nil },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxHops limits the walk to nodes at most h hops from the origin.
// Zero means unlimited; a negative h is an ErrOptionViolation.
func WithMaxHops(h int) Option {
	return func(o *options) {
		if h < 0 {
			o.err = fmt.Errorf("%w: max hops %d < 0", ErrOptionViolation, h)
			return
		}
		o.maxHops = h
	}
}

// WithLinkFilter skips the link from→to when keep returns false, e.g. to
// flood only over links of one channel.
func WithLinkFilter(keep func(from, to string) bool) Option {
	return func(o *options) {
		if keep != nil {
			o.link = keep
		}
	}
}

// WithOnVisit calls fn as each node is dequeued. A non-nil error stops the
// walk and is returned wrapped.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// Result describes one flood from an origin node.
type Result struct {
	Origin string
	Order  []string          // dequeue order
	Hops   map[string]int    // hop count from Origin
	Via    map[string]string // previous hop on a shortest route
}

// Reached reports whether id was reached from the origin.
func (r *Result) Reached(id string) bool {
	_, ok := r.Hops[id]
	return ok
}

// Eccentricity is the largest hop count among reached nodes, i.e. the number
// of forwarding rounds a flood from Origin needs.
func (r *Result) Eccentricity() int {
	far := 0
	for _, h := range r.Hops {
		far = max(far, h)
	}

	return far
}

// Route returns the hop-by-hop route Origin → … → dest.
func (r *Result) Route(dest string) ([]string, error) {
	h, ok := r.Hops[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnreached, dest)
	}
	route := make([]string, h+1)
	for cur, i := dest, h; i >= 0; i-- {
		route[i] = cur
		cur = r.Via[cur]
	}

	return route, nil
}
