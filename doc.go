// SPDX-License-Identifier: MIT

// Package meshchan models channel assignment in wireless mesh networks: a
// network graph with hop distances, pluggable interference models and a
// conflict graph whose total interference is kept current as links change
// channel.
//
// What is inside?
//
//	core/         - undirected network Graph, link values as channels, Floyd–Warshall hop matrix
//	builder/      - deterministic mesh topologies (Path, Cycle, Star, Grid, Complete, RandomSparse)
//	bfs/          - single-source hop traversal and connected components
//	interference/ - two_hop, two_hop_frac and channel_occupancy models
//	conflict/     - ConflictGraph: one vertex per link, weighted by pairwise interference
//	measurement/  - PostgreSQL access to channel-occupancy measurements (pgx)
//	converters/   - adjacency-matrix and DOT import/export
//	config/       - YAML + environment configuration with validation
//	logging/      - zap logger construction
//	metrics/      - Prometheus collectors for evaluations, recomputes and cache loads
//	engine/       - wires config, logging, metrics, a model and a conflict graph
//
// Quick ASCII example:
//
//	    a──1──b──1──c
//
// Two links on channel 1 sharing node b: the two_hop model reports an
// interference of 1 between them, so the conflict graph sum is 1. Moving b–c
// to channel 6 drops the sum to 0.
//
//	go get github.com/katalvlaran/meshchan
package meshchan
