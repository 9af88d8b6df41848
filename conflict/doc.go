// SPDX-License-Identifier: MIT

// Package conflict maintains the weighted conflict graph of a mesh network.
//
// Every link of the bound network graph becomes a conflict Vertex. Every
// unordered pair of vertices carries a weight equal to the interference the
// configured model reports for the two links under the current channel
// assignment. InterferenceSum, the total of all weights, is the objective a
// channel-assignment search minimizes.
//
// Update paths:
//
//   - UpdateEdges recomputes all L·(L−1)/2 weights. It runs at construction
//     and after a topology change.
//   - UpdateEdge recomputes the L−1 weights touching one vertex. A channel
//     flip through Vertex.SetChannel uses it, so each flip costs O(L) model
//     evaluations.
//   - Update reconciles the vertex set with a new network graph.
//
// The model is always asked about a pair in canonical link order, so
// directional models give the same weight on both update paths. A model
// whose value depends on argument order also depends on vertex names; the
// bundled models are symmetric.
//
// Concurrency: a Graph is owned by one driver. It holds no locks; concurrent
// use must be serialized by the caller.
package conflict
