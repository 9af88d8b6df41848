// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshchan/builder"
	"github.com/katalvlaran/meshchan/core"
)

// TestBuilders_Functional runs table-driven checks of vertex and link counts
// plus one topology-specific check per constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Distance("0", "3")
				require.NoError(t, err)
				assert.Equal(t, 3, d)
			},
		},
		{
			name: "Cycle(6)", ctor: builder.Cycle(6), wantV: 6, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("5", "0"))
				d, err := g.Distance("0", "3")
				require.NoError(t, err)
				assert.Equal(t, 3, d)
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, g *core.Graph) {
				n, err := g.Neighbors("0")
				require.NoError(t, err)
				assert.Equal(t, []string{"1", "2", "3", "4"}, n)
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *core.Graph) {
				d, err := g.Distance("0,0", "1,2")
				require.NoError(t, err)
				assert.Equal(t, 3, d)
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				for _, a := range g.Vertices() {
					for _, b := range g.Vertices() {
						d, err := g.Distance(a, b)
						require.NoError(t, err)
						assert.LessOrEqual(t, d, 1)
					}
				}
			},
		},
		{
			name: "RandomSparse(5,1)", ctor: builder.RandomSparse(5, 1), wantV: 5, wantE: 10,
		},
		{
			name: "RandomSparse(5,0)", ctor: builder.RandomSparse(5, 0), wantV: 5, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, v := range g.Edges(false) {
				assert.Equal(t, "1", v, "default channel")
			}
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomSparse(p=2)", builder.RandomSparse(3, 2), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}

	_, err := builder.BuildGraph(nil, builder.Path(3), builder.Path(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestBuilders_SeededDeterminism(t *testing.T) {
	t.Parallel()

	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithChannels(1, 6, 11), builder.WithSymbNumb("n")},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(7), build(7)
	assert.True(t, a.Equal(b))
	assert.Contains(t, a.Vertices(), "n11")
	for _, v := range a.Edges(false) {
		assert.Contains(t, []string{"1", "6", "11"}, v)
	}
}

func TestBuilders_ChannelsWithoutRand(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithChannels(1, 6)}, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithChannels(36)}, builder.Path(3))
	require.NoError(t, err)
	v, err := g.EdgeValue("0", "1")
	require.NoError(t, err)
	assert.Equal(t, "36", v)
}

func TestReassign(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)
	before := g.Copy()

	require.NoError(t, builder.Reassign(g, builder.WithSeed(1), builder.WithChannels(1, 6, 11)))
	assert.Equal(t, before.SortedEdges(), g.SortedEdges(), "topology unchanged")

	d, err := g.Distance("0,0", "2,2")
	require.NoError(t, err)
	assert.Equal(t, 4, d)

	again := before.Copy()
	require.NoError(t, builder.Reassign(again, builder.WithSeed(1), builder.WithChannels(1, 6, 11)))
	assert.True(t, g.Equal(again), "same seed, same assignment")
}

func TestEnsureConnected(t *testing.T) {
	t.Parallel()

	// Four isolated nodes are chained in ID order.
	g, err := builder.BuildGraph(nil,
		builder.RandomSparse(4, 0),
		builder.EnsureConnected(),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []core.Pair{core.NewPair("0", "1"), core.NewPair("1", "2"), core.NewPair("2", "3")}, g.SortedEdges())

	d, err := g.Distance("0", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	connected, err := builder.BuildGraph(nil, builder.Cycle(5), builder.EnsureConnected())
	require.NoError(t, err)
	assert.Equal(t, 5, connected.EdgeCount(), "single component untouched")

	sparse, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)},
		builder.RandomSparse(12, 0.1),
		builder.EnsureConnected(),
	)
	require.NoError(t, err)
	for _, v := range sparse.Vertices() {
		d, err := sparse.Distance("0", v)
		require.NoError(t, err)
		assert.Less(t, d, core.Infinity, "0 reaches %s", v)
	}
}

func TestIDFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "n3", builder.SymbolNumberIDFn("n")(3))

	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
	assert.Panics(t, func() { builder.SymbolNumberIDFn("n")(-1) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithChannelFn(nil) })
	assert.Panics(t, func() { builder.WithChannels() })

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(builder.ExcelColumnIDFn)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}
