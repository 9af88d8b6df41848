// SPDX-License-Identifier: MIT
//
// File: methods_distances.go
// Role: All-pairs hop counts via Floyd–Warshall.
//
// Contract:
//   - The dense matrix is rebuilt from the edge set: diag = 0, edge = 1, else Infinity.
//   - Loop order is fixed (k → i → j) over vertices sorted by ID.
//   - Only finite off-diagonal results are written back to the sparse map.

package core

// UpdateDistances recomputes the hop count between every pair of vertices.
//
// Implementation:
//   - Stage 1: Index the sorted vertex list and allocate an n×n row-major buffer.
//   - Stage 2: Seed the buffer from the edge set (0 on the diagonal, 1 per edge,
//     Infinity elsewhere).
//   - Stage 3: Relax d[i][j] = min(d[i][j], d[i][k] + d[k][j]) for all k, i, j,
//     skipping unreachable intermediates.
//   - Stage 4: Replace the distance map with the finite results.
//
// Seeding from the edge set makes the result independent of stale entries left
// by removed edges or vertices, so a correct shortest distance is never
// increased and an incorrect one is always repaired.
//
// Complexity: Time O(V³), Space O(V²).
func (g *Graph) UpdateDistances() {
	ids := g.Vertices()
	n := len(ids)
	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	data := make([]int, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				data[i*n+j] = Infinity
			}
		}
	}
	for p := range g.values {
		if p.A == p.B {
			continue
		}
		i, j = index[p.A], index[p.B]
		data[i*n+j] = 1
		data[j*n+i] = 1
	}

	var (
		baseK, baseI int
		ik, kj, cand int
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Infinity {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Infinity {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	distances := make(map[Pair]int, len(g.distances))
	for i = 0; i < n; i++ {
		baseI = i * n
		for j = i + 1; j < n; j++ {
			if d := data[baseI+j]; d != Infinity {
				distances[Pair{A: ids[i], B: ids[j]}] = d
			}
		}
	}
	g.distances = distances
}
