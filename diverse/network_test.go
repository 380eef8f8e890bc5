package diverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdiv/builder"
	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/dijkstra"
	"github.com/katalvlaran/pathdiv/diverse"
)

// district builds a seeded 8×8 street grid with diagonal shortcuts.
func district(tb testing.TB) *core.Graph {
	tb.Helper()
	g, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithSeed(2024),
		builder.WithSegmentFn(builder.UniformSegment(60, 140, 1.4)),
	}, builder.Grid(8, 8), builder.Diagonals(8, 8, 0.3))
	require.NoError(tb, err)

	return g
}

func TestFindPaths_GeneratedDistrict(t *testing.T) {
	g := district(t)
	start, end := builder.GridID(0, 0), builder.GridID(7, 7)

	_, best, err := dijkstra.ShortestPath(g, start, end)
	require.NoError(t, err)

	res, err := diverse.FindPaths(g, start, end, 5)
	require.NoError(t, err)
	require.NotEmpty(t, res.Unique)
	assert.LessOrEqual(t, len(res.Unique), 5)

	for i, p := range res.Unique {
		assert.Equal(t, start, p.Nodes[0])
		assert.Equal(t, end, p.Nodes[len(p.Nodes)-1])
		for j := 0; j+1 < len(p.Nodes); j++ {
			assert.True(t, g.HasEdge(p.Nodes[j], p.Nodes[j+1]), "route %d hop %d", i, j)
		}
		assert.GreaterOrEqual(t, p.Cost, best-1e-9, "no route beats the least-cost baseline")
		if i > 0 {
			assert.GreaterOrEqual(t, p.Cost, res.Unique[i-1].Cost)
		}
	}
}

func BenchmarkFindPaths_District(b *testing.B) {
	base := district(b)
	start, end := builder.GridID(0, 0), builder.GridID(7, 7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := diverse.FindPaths(base.CloneFresh(), start, end, 5); err != nil {
			b.Fatal(err)
		}
	}
}
