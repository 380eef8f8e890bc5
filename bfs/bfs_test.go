package bfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdiv/bfs"
	"github.com/katalvlaran/pathdiv/core"
)

// chain builds A–B–C–D plus the separate pair X–Y.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"X", "Y"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1, 1))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(chain(t), "missing")
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(chain(t), "A", bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_DepthsAndPath(t *testing.T) {
	res, err := bfs.BFS(chain(t), "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 1, "B": 0, "C": 1, "D": 2}, res.Depth)
	assert.False(t, res.Reached("X"))

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, path)

	_, err = res.PathTo("Y")
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(chain(t), "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = bfs.BFS(chain(t), "A", bfs.WithFilterNeighbor(func(_, next string) bool { return next != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(t), "A", bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := chain(t)
	require.NoError(t, g.AddVertex("M"))

	comps, err := bfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"A", "B", "C", "D"}, {"M"}, {"X", "Y"}}, comps)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func ExampleBFS() {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d,%d", i, j), fmt.Sprintf("%d,%d", i, j+1), 1, 1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d,%d", i, j), fmt.Sprintf("%d,%d", i+1, j), 1, 1)
			}
		}
	}

	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2]
}
