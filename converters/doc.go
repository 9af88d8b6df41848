// SPDX-License-Identifier: MIT

// Package converters persists core.Graph in two plain-text forms used for
// debugging and checkpointing assignment runs:
//
//   - adjacency-matrix table: a header row of vertex names, a separator row,
//     then one row per vertex whose cells hold the edge value (blank = no edge);
//   - dot-style edge list: one `"A" -- "B" [label = "V"]` line per edge inside a
//     `Graph G { ... }` block, readable by graphviz.
//
// Both readers rebuild an equivalent graph and finish with UpdateDistances, so
// write→read reproduces the same edge set and the same hop distances.
// Writers refuse, with ErrUnrepresentable, tokens that would not survive the
// trip: "|" in the matrix form, a double quote in the dot form, line breaks
// and surrounding whitespace in both.
package converters
