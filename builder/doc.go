// SPDX-License-Identifier: MIT

// Package builder assembles mesh network fixtures: deterministic topologies
// whose links carry channel values, ready to be bound to a conflict graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a graph, applies constructors in order, then
//     recomputes hop distances once.
//     – Constructor:       a topology step applied to the graph.
//   - Topologies:
//     – Path, Cycle, Star, Grid, Complete, RandomSparse.
//   - Channel policies (ChannelFn):
//     – ConstantChannel:   every link on one channel.
//     – RandomChannel:     uniform draw from a channel set (seeded RNG).
//     – Reassign:          re-draws channels of an existing graph in place.
//   - Vertex‐ID schemes (IDFn):
//     – DefaultIDFn, SymbolNumberIDFn, ExcelColumnIDFn.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order yield the
//     same graph and the same channels.
//   - Option constructors panic on meaningless input; constructors return
//     sentinel errors and never panic.
package builder
