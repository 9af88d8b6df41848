// SPDX-License-Identifier: MIT
//
// File: vertex.go
// Role: Vertex accessors and SetChannel, the single-link mutation entry point.

package conflict

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/meshchan/core"
	"github.com/katalvlaran/meshchan/interference"
)

// Link returns the network link this vertex stands for.
func (v *Vertex) Link() core.Pair { return v.link }

// Channel parses the current channel of the link from the network graph.
//
// Errors:
//   - ErrVertexNotFound once the link has left the network.
//   - *interference.ChannelError for a non-integer value.
func (v *Vertex) Channel() (int, error) {
	if v.graph == nil {
		return 0, fmt.Errorf("conflict: Channel(%s): %w", v.link, ErrVertexNotFound)
	}

	return interference.Channel(v.graph.network, v.link)
}

// SetChannel puts the link on channel c and recomputes the weights touching
// this vertex. Distances are not recomputed: the topology is unchanged.
// If the recompute fails the previous channel is restored.
//
// Complexity: O(L) model evaluations.
func (v *Vertex) SetChannel(c int) error {
	g := v.graph
	if g == nil {
		return fmt.Errorf("conflict: SetChannel(%s): %w", v.link, ErrVertexNotFound)
	}

	old, err := g.network.EdgeValue(v.link.A, v.link.B)
	if err != nil {
		return fmt.Errorf("conflict: SetChannel(%s): %w", v.link, err)
	}
	if err = g.network.SetEdgeValue(v.link.A, v.link.B, channelValue(c), false); err != nil {
		return fmt.Errorf("conflict: SetChannel(%s): %w", v.link, err)
	}
	if err = g.UpdateEdge(v); err != nil {
		_ = g.network.SetEdgeValue(v.link.A, v.link.B, old, false)
		return err
	}

	return nil
}

// Neighbor returns the endpoint of the link opposite node.
func (v *Vertex) Neighbor(node string) (string, bool) {
	return v.link.Other(node)
}

// String returns the link name "A_B".
func (v *Vertex) String() string { return v.link.String() }

func channelValue(c int) string { return strconv.Itoa(c) }
