// SPDX-License-Identifier: MIT
// Package: meshchan/builder
//
// channel_fn.go - channel policies for generated links.

package builder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/katalvlaran/meshchan/core"
)

const methodReassign = "Reassign"

// ChannelFn picks the channel for the next link. The RNG is the one
// configured by WithSeed/WithRand and may be nil.
type ChannelFn func(rng *rand.Rand) (int, error)

// ConstantChannel places every link on channel c.
func ConstantChannel(c int) ChannelFn {
	return func(*rand.Rand) (int, error) { return c, nil }
}

// RandomChannel draws uniformly from channels. Panics on an empty set; a nil
// RNG at draw time yields ErrNeedRandSource.
func RandomChannel(channels ...int) ChannelFn {
	if len(channels) == 0 {
		panic("builder: RandomChannel()")
	}
	set := append([]int(nil), channels...)

	return func(rng *rand.Rand) (int, error) {
		if len(set) == 1 {
			return set[0], nil
		}
		if rng == nil {
			return 0, ErrNeedRandSource
		}
		return set[rng.Intn(len(set))], nil
	}
}

// Reassign redraws the channel of every link of g in SortedEdges order, so a
// fixed seed gives a fixed assignment. Distances are left untouched since the
// topology does not change.
//
// Complexity: O(E log E).
func Reassign(g *core.Graph, opts ...BuilderOption) error {
	cfg := newBuilderConfig(opts...)
	for _, link := range g.SortedEdges() {
		if err := setLink(g, cfg, methodReassign, link.A, link.B); err != nil {
			return err
		}
	}

	return nil
}

// setLink draws a channel and writes it on {u, v} without recomputing distances.
func setLink(g *core.Graph, cfg builderConfig, method, u, v string) error {
	c, err := cfg.channelFn(cfg.rng)
	if err != nil {
		return fmt.Errorf("%s: channel for %s-%s: %w", method, u, v, err)
	}
	if err = g.SetEdgeValue(u, v, strconv.Itoa(c), false); err != nil {
		return fmt.Errorf("%s: SetEdgeValue(%s, %s): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs in index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
