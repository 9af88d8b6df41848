// SPDX-License-Identifier: MIT

// Package bfs floods a mesh core.Graph from one origin node and records, per
// reached node, its hop count and the previous hop on a shortest route.
//
// A flood models how a beacon spreads: in round h it reaches every node h
// hops from the origin. Result.Eccentricity is the number of rounds needed,
// Result.Route the hop-by-hop route to one node. Components groups the nodes
// of a mesh into islands that cannot reach each other.
//
// Neighbors are taken from core.Graph.Neighbors, which is sorted, so visit
// order is reproducible. The walk is independent of the Floyd–Warshall
// matrix and serves as a cross-check for it.
//
// Options: WithContext, WithMaxHops, WithLinkFilter, WithOnVisit.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
// ErrUnreached (Route), context errors and wrapped OnVisit errors.
package bfs
