// SPDX-License-Identifier: MIT
//
// File: two_hop.go
// Role: Binary two-hop interference model.

package interference

import "github.com/katalvlaran/meshchan/core"

// twoHopRange is the hop distance below which co-channel links interfere.
const twoHopRange = 2

// TwoHop is the binary two-hop heuristic: two links interfere (1) iff they
// share a channel and are less than two hops apart; otherwise 0.
type TwoHop struct {
	settings
}

// NewTwoHop creates a binary two-hop model.
func NewTwoHop(opts ...Option) *TwoHop {
	return &TwoHop{settings: newSettings(opts)}
}

// Name implements Model.
func (m *TwoHop) Name() string { return NameTwoHop }

// Interference implements Model.
func (m *TwoHop) Interference(g *core.Graph, e1, e2 core.Pair) (float64, error) {
	m.metrics.RecordEvaluation(NameTwoHop)
	if sameLink(e1, e2) {
		return 0, nil
	}

	c1, c2, err := channels(g, e1, e2)
	if err != nil {
		return 0, err
	}
	// channels are treated as orthogonal
	if c1 != c2 {
		return 0, nil
	}

	hops, err := HopDistance(g, e1, e2)
	if err != nil {
		return 0, err
	}
	if hops < twoHopRange {
		return 1, nil
	}

	return 0, nil
}
