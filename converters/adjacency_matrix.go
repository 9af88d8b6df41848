// SPDX-License-Identifier: MIT
//
// File: adjacency_matrix.go
// Role: Adjacency-matrix table writer and reader.
//
// Layout (vertices sorted, columns right-aligned to max(4, longest name)):
//
//	     |    a |    b |    c
//	-----+------+------+------
//	a    |      |    1 |
//	b    |    1 |      |    6
//	c    |      |    6 |

package converters

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/meshchan/core"
)

const (
	opWriteMatrix = "WriteAdjacencyMatrix"
	opReadMatrix  = "ReadAdjacencyMatrix"

	minCellWidth = 4
	cellSep      = "|"
)

// WriteAdjacencyMatrix writes g as an adjacency-matrix table.
// Nothing is written if a vertex ID or edge value contains "|", a line break,
// or leading or trailing whitespace (ErrUnrepresentable).
// Complexity: O(V²).
func WriteAdjacencyMatrix(w io.Writer, g *core.Graph) error {
	if err := checkTokens(opWriteMatrix, g, cellSep); err != nil {
		return err
	}
	ids := g.Vertices()
	width := minCellWidth
	for _, id := range ids {
		if len(id) > width {
			width = len(id)
		}
	}

	var b, row strings.Builder
	// header
	row.WriteString(strings.Repeat(" ", width) + " |")
	for _, id := range ids {
		row.WriteString(" " + padLeft(id, width) + " |")
	}
	endRow(&b, &row, "|")
	// separator
	row.WriteString(strings.Repeat("-", width) + "-+")
	for range ids {
		row.WriteString("-" + strings.Repeat("-", width) + "-+")
	}
	endRow(&b, &row, "+")
	// rows
	for _, v1 := range ids {
		row.WriteString(padRight(v1, width) + " |")
		for _, v2 := range ids {
			value, err := g.EdgeValue(v1, v2)
			if err != nil {
				return fmt.Errorf("%s: %w", opWriteMatrix, err)
			}
			row.WriteString(" " + padLeft(value, width) + " |")
		}
		endRow(&b, &row, "|")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%s: %w", opWriteMatrix, err)
	}

	return nil
}

// ReadAdjacencyMatrix parses a table produced by WriteAdjacencyMatrix.
//
// Implementation:
//   - Stage 1: Line 1 lists the vertex names (first cell is padding).
//   - Stage 2: Line 2 is the separator and is skipped.
//   - Stage 3: Each further line is "<name> | cell | cell ..."; a blank cell is no edge.
//   - Stage 4: UpdateDistances once at the end.
//
// Errors:
//   - ErrMalformed: missing header, unknown row vertex or wrong cell count.
func ReadAdjacencyMatrix(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	var (
		ids  []string
		g    *core.Graph
		line int
	)
	for scanner.Scan() {
		line++
		text := scanner.Text()
		switch {
		case line == 1:
			cells := strings.Split(text, cellSep)
			for _, c := range cells[1:] {
				ids = append(ids, strings.TrimSpace(c))
			}
			g = core.NewGraph()
			for _, id := range ids {
				if err := g.AddVertex(id); err != nil {
					return nil, malformedf(opReadMatrix, line, "vertex %q: %v", id, err)
				}
			}
		case line == 2:
			continue
		default:
			if strings.TrimSpace(text) == "" {
				continue
			}
			cells := strings.Split(text, cellSep)
			if len(cells) != len(ids)+1 {
				return nil, malformedf(opReadMatrix, line, "got %d cells, want %d", len(cells)-1, len(ids))
			}
			v1 := strings.TrimSpace(cells[0])
			if !g.HasVertex(v1) {
				return nil, malformedf(opReadMatrix, line, "row vertex %q not in header", v1)
			}
			for i, v2 := range ids {
				value := strings.TrimSpace(cells[i+1])
				if value == "" {
					continue
				}
				if err := g.SetEdgeValue(v1, v2, value, false); err != nil {
					return nil, fmt.Errorf("%s: line %d: %w", opReadMatrix, line, err)
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opReadMatrix, err)
	}
	if g == nil {
		return nil, malformedf(opReadMatrix, line, "empty input")
	}
	g.UpdateDistances()

	return g, nil
}

// AdjacencyMatrixString renders g as an adjacency-matrix table, or returns ""
// when WriteAdjacencyMatrix would reject g.
func AdjacencyMatrixString(g *core.Graph) string {
	var b strings.Builder
	_ = WriteAdjacencyMatrix(&b, g)

	return b.String()
}

// endRow drops the trailing column marker, terminates the row and resets it.
func endRow(b, row *strings.Builder, marker string) {
	b.WriteString(strings.TrimSuffix(row.String(), marker))
	b.WriteString("\n")
	row.Reset()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return strings.Repeat(" ", width-len(s)) + s
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}
