// SPDX-License-Identifier: MIT

package converters_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshchan/converters"
	"github.com/katalvlaran/meshchan/core"
)

// meshFixture returns a small mesh with an isolated vertex and a long name.
func meshFixture(t *testing.T) *core.Graph {
	t.Helper()

	g := core.NewGraph("a", "b", "c", "t9-146", "iso")
	require.NoError(t, g.SetEdgeValue("a", "b", "1", false))
	require.NoError(t, g.SetEdgeValue("b", "c", "6", false))
	require.NoError(t, g.SetEdgeValue("c", "t9-146", "36", false))
	g.UpdateDistances()

	return g
}

// requireSameGraph compares vertex sets, edge values and all distances.
func requireSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()

	require.Equal(t, want.Vertices(), got.Vertices())
	require.Equal(t, want.Edges(false), got.Edges(false))
	for _, a := range want.Vertices() {
		for _, b := range want.Vertices() {
			dw, err := want.Distance(a, b)
			require.NoError(t, err)
			dg, err := got.Distance(a, b)
			require.NoError(t, err)
			require.Equalf(t, dw, dg, "distance(%s,%s)", a, b)
		}
	}
}

func TestAdjacencyMatrix_Layout(t *testing.T) {
	g := core.NewGraph("a", "b", "c")
	require.NoError(t, g.SetEdgeValue("a", "b", "1", false))
	require.NoError(t, g.SetEdgeValue("b", "c", "6", true))

	out := converters.AdjacencyMatrixString(g)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "     |    a |    b |    c ", lines[0])
	assert.Equal(t, "-----+------+------+------", lines[1])
	assert.Equal(t, "b    |    1 |      |    6 ", lines[3])
}

func TestAdjacencyMatrix_RoundTrip(t *testing.T) {
	g := meshFixture(t)

	back, err := converters.ReadAdjacencyMatrix(strings.NewReader(converters.AdjacencyMatrixString(g)))
	require.NoError(t, err)
	requireSameGraph(t, g, back)
	assert.True(t, back.HasVertex("iso"), "isolated vertices survive the matrix form")
}

func TestAdjacencyMatrix_Malformed(t *testing.T) {
	_, err := converters.ReadAdjacencyMatrix(strings.NewReader(""))
	require.ErrorIs(t, err, converters.ErrMalformed)

	in := "     |    a |    b \n-----+------+------\na    |      |    1 \nz    |    1 |      \n"
	_, err = converters.ReadAdjacencyMatrix(strings.NewReader(in))
	require.ErrorIs(t, err, converters.ErrMalformed)

	in = "     |    a |    b \n-----+------+------\na    |      \n"
	_, err = converters.ReadAdjacencyMatrix(strings.NewReader(in))
	require.ErrorIs(t, err, converters.ErrMalformed)
}

func TestDot_Layout(t *testing.T) {
	g := core.NewGraph("t9-146", "t9-035")
	require.NoError(t, g.SetEdgeValue("t9-146", "t9-035", "1", true))

	assert.Equal(t,
		"Graph G {\n\tgraph [label = \"run\", labelloc=t]\n\t\"t9-035\" -- \"t9-146\" [label = \"1\"]\n}\n",
		converters.DotString(g, "run"))
}

func TestDot_RoundTrip(t *testing.T) {
	g := meshFixture(t)
	require.NoError(t, g.RemoveVertex("iso"))
	g.UpdateDistances()

	back, err := converters.ReadDot(strings.NewReader(converters.DotString(g, "checkpoint")))
	require.NoError(t, err)
	requireSameGraph(t, g, back)
}

func TestDot_Malformed(t *testing.T) {
	_, err := converters.ReadDot(strings.NewReader("Graph G {\n\t\"a\" -- b\n}\n"))
	require.ErrorIs(t, err, converters.ErrMalformed)
}

func TestFiles_RoundTrip(t *testing.T) {
	g := meshFixture(t)
	dir := t.TempDir()

	matrixPath := filepath.Join(dir, "graph.txt")
	require.NoError(t, converters.WriteFile(matrixPath, g, false))
	back, err := converters.ReadFile(matrixPath, false)
	require.NoError(t, err)
	requireSameGraph(t, g, back)

	require.NoError(t, g.RemoveVertex("iso"))
	g.UpdateDistances()
	dotPath := filepath.Join(dir, "graph.dot")
	require.NoError(t, converters.WriteFile(dotPath, g, true))
	back, err = converters.ReadFile(dotPath, true)
	require.NoError(t, err)
	requireSameGraph(t, g, back)

	_, err = converters.ReadFile(filepath.Join(dir, "missing"), true)
	require.Error(t, err)
}

func TestWriters_RejectUnrepresentableTokens(t *testing.T) {
	pipeID := core.NewGraph("a|b", "c")
	require.NoError(t, pipeID.SetEdgeValue("a|b", "c", "1", true))

	var b strings.Builder
	err := converters.WriteAdjacencyMatrix(&b, pipeID)
	require.ErrorIs(t, err, converters.ErrUnrepresentable)
	assert.Empty(t, b.String(), "nothing written")
	assert.Empty(t, converters.AdjacencyMatrixString(pipeID))

	// "|" is harmless inside a quoted dot name.
	back, err := converters.ReadDot(strings.NewReader(converters.DotString(pipeID, "")))
	require.NoError(t, err)
	requireSameGraph(t, pipeID, back)

	quoted := core.NewGraph(`ap"1`, "ap2")
	require.NoError(t, quoted.SetEdgeValue(`ap"1`, "ap2", "6", true))
	require.ErrorIs(t, converters.WriteDot(&b, quoted, "x"), converters.ErrUnrepresentable)
	assert.Empty(t, converters.DotString(quoted, "x"))

	padded := core.NewGraph("a", "b")
	require.NoError(t, padded.SetEdgeValue("a", "b", " 11", true))
	require.ErrorIs(t, converters.WriteAdjacencyMatrix(&b, padded), converters.ErrUnrepresentable)
	require.ErrorIs(t, converters.WriteDot(&b, padded, ""), converters.ErrUnrepresentable)

	dir := t.TempDir()
	require.ErrorIs(t, converters.WriteFile(filepath.Join(dir, "g.txt"), pipeID, false), converters.ErrUnrepresentable)
}
