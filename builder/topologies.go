// SPDX-License-Identifier: MIT
// Package: meshchan/builder
//
// topologies.go - deterministic mesh topologies.
//
// Every constructor adds vertices via cfg.idFn in index order and emits links
// in a stable, documented order, drawing one channel per link from
// cfg.channelFn. Grid is the exception for IDs: it uses "r,c" coordinates.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/meshchan/core"
)

// Method names used as error prefixes.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodGrid         = "Grid"
	MethodComplete     = "Complete"
	MethodRandomSparse = "RandomSparse"
)

// Minimum sizes per topology.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinGridDim       = 1
	MinCompleteNodes = 1
	MinSparseNodes   = 1
)

func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: parameter must be ≥ %d, got %d: %w", method, min, got, ErrTooFewVertices)
	}

	return nil
}

// Path builds a chain 0–1–…–(n-1), the typical multi-hop backbone.
// Links are emitted i→i+1 for i asc. Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, MethodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = setLink(g, cfg, MethodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds a ring of n nodes: a Path plus the closing link (n-1)→0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, MethodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = setLink(g, cfg, MethodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a gateway topology: vertex idFn(0) linked to idFn(1..n-1).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, MethodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = setLink(g, cfg, MethodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid with IDs "r,c" in row-major
// order. For each cell the right link is emitted before the bottom link.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, cols, MinGridDim); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := g.AddVertex(gridVertexID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", MethodGrid, gridVertexID(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					if err := setLink(g, cfg, MethodGrid, u, gridVertexID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := setLink(g, cfg, MethodGrid, u, gridVertexID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Complete links every pair of n nodes, i<j in lexicographic index order.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		ids, err := addVertices(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = setLink(g, cfg, MethodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse samples an Erdős–Rényi-like graph: each unordered pair {i,j},
// i<j, is linked independently with probability p. Trials run i asc, j asc,
// so a fixed seed yields a fixed graph. The RNG is required only for 0<p<1.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, n, MinSparseNodes); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", MethodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}
		if p == 0 {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() > p {
					continue
				}
				if err = setLink(g, cfg, MethodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// gridVertexID formats a grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
