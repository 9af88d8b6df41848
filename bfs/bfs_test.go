// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meshchan/bfs"
	"github.com/katalvlaran/meshchan/core"
)

// mesh builds a–b–c–d on channel 1 with a shortcut a–c on channel 6, plus the
// isolated pair x–y.
func mesh(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph("a", "b", "c", "d", "x", "y")
	for _, l := range [][3]string{{"a", "b", "1"}, {"b", "c", "1"}, {"c", "d", "1"}, {"a", "c", "6"}, {"x", "y", "1"}} {
		require.NoError(t, g.SetEdgeValue(l[0], l[1], l[2], false))
	}

	return g
}

func TestBFS(t *testing.T) {
	res, err := bfs.BFS(mesh(t), "a")
	require.NoError(t, err)

	assert.Equal(t, "a", res.Origin)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.Order)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 1, "d": 2}, res.Hops)
	assert.Equal(t, 2, res.Eccentricity())
	assert.True(t, res.Reached("d"))
	assert.False(t, res.Reached("x"))

	route, err := res.Route("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, route)

	route, err = res.Route("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, route)

	_, err = res.Route("x")
	require.ErrorIs(t, err, bfs.ErrUnreached)
}

func TestBFS_Options(t *testing.T) {
	g := mesh(t)

	res, err := bfs.BFS(g, "a", bfs.WithMaxHops(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, res.Order)

	// flood only over channel-1 links
	sameChannel := func(from, to string) bool {
		v, _ := g.EdgeValue(from, to)
		return v == "1"
	}
	res, err = bfs.BFS(g, "a", bfs.WithLinkFilter(sameChannel))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}, res.Hops)

	stop := errors.New("stop")
	res, err = bfs.BFS(g, "a", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "b" {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"a", "b"}, res.Order)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "a", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "a")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(mesh(t), "zz")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(mesh(t), "a", bfs.WithMaxHops(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestComponents(t *testing.T) {
	comps, err := bfs.Components(mesh(t))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b", "c", "d"}, {"x", "y"}}, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}
