// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: Dot-style edge list writer and reader.
//
// Layout:
//
//	Graph G {
//		graph [label = "run 3", labelloc=t]
//		"t9-035" -- "t9-146" [label = "36"]
//	}

package converters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/katalvlaran/meshchan/core"
)

const (
	opWriteDot = "WriteDot"
	opReadDot  = "ReadDot"
)

// edgeLine matches `"A" -- "B" [label = "V"]` with optional leading whitespace.
var edgeLine = regexp.MustCompile(`^\s*"([^"]+)" -- "([^"]+)" \[label = "([^"]+)"\]`)

// WriteDot writes one line per edge in canonical (A, B) order. An empty label
// omits the graph attribute line. Nothing is written if a vertex ID or edge
// value contains a double quote, a line break, or leading or trailing
// whitespace (ErrUnrepresentable).
// Complexity: O(E log E).
func WriteDot(w io.Writer, g *core.Graph, label string) error {
	if err := checkTokens(opWriteDot, g, `"`); err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("Graph G {\n")
	if label != "" {
		fmt.Fprintf(&b, "\tgraph [label = %q, labelloc=t]\n", label)
	}
	edges := g.Edges(false)
	for _, p := range g.SortedEdges() {
		fmt.Fprintf(&b, "\t\"%s\" -- \"%s\" [label = \"%s\"]\n", p.A, p.B, edges[p])
	}
	b.WriteString("}\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("%s: %w", opWriteDot, err)
	}

	return nil
}

// ReadDot parses edge lines and ignores everything else. Vertices are created
// on first sight; isolated vertices are not representable in this form.
//
// Errors:
//   - ErrMalformed: a line that looks like an edge ("--") but does not match.
func ReadDot(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		m := edgeLine.FindStringSubmatch(text)
		if m == nil {
			if strings.Contains(text, " -- ") {
				return nil, malformedf(opReadDot, line, "unparsable edge %q", strings.TrimSpace(text))
			}
			continue
		}
		v1, v2, value := m[1], m[2], m[3]
		if err := g.AddVertex(v1); err != nil {
			return nil, malformedf(opReadDot, line, "vertex %q: %v", v1, err)
		}
		if err := g.AddVertex(v2); err != nil {
			return nil, malformedf(opReadDot, line, "vertex %q: %v", v2, err)
		}
		if err := g.SetEdgeValue(v1, v2, value, false); err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", opReadDot, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", opReadDot, err)
	}
	g.UpdateDistances()

	return g, nil
}

// DotString renders g in dot form, or returns "" when WriteDot would reject g.
func DotString(g *core.Graph, label string) string {
	var b strings.Builder
	_ = WriteDot(&b, g, label)

	return b.String()
}

// WriteFile writes g to path, as dot if dot is set, else as an adjacency matrix.
func WriteFile(path string, g *core.Graph, dot bool) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile(%s): %w", path, err)
	}
	if dot {
		err = WriteDot(f, g, "")
	} else {
		err = WriteAdjacencyMatrix(f, g)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}

	return err
}

// ReadFile reads a graph from path in the given form.
func ReadFile(path string, dot bool) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	defer f.Close()

	if dot {
		return ReadDot(f)
	}

	return ReadAdjacencyMatrix(f)
}
