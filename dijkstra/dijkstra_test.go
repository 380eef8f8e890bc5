// Package dijkstra_test covers validation, the three metrics, the cost cap
// and deterministic tie-breaking.
package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdiv/core"
	"github.com/katalvlaran/pathdiv/dijkstra"
)

// network:
//
//	A–B  w=1 t=1
//	B–C  w=2 t=2
//	A–C  w=5 t=5
//	C–D  w=1 t=10
//	B–D  w=4 t=1
func network(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1, 1))
	require.NoError(t, g.AddEdge("B", "C", 2, 2))
	require.NoError(t, g.AddEdge("A", "C", 5, 5))
	require.NoError(t, g.AddEdge("C", "D", 1, 10))
	require.NoError(t, g.AddEdge("B", "D", 4, 1))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(network(t), "")
	require.ErrorIs(t, err, dijkstra.ErrEmptySource)

	_, _, err = dijkstra.Dijkstra(network(t), "X")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	_, _, err = dijkstra.ShortestPath(network(t), "A", "X")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)

	require.Panics(t, func() { dijkstra.WithMaxCost(-1) })
}

// ------------------------------------------------------------------------
// 2. Metrics
// ------------------------------------------------------------------------

func TestDijkstra_SearchCost(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(network(t), "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 6, "D": 7}, dist)
	assert.Equal(t, map[string]string{"B": "A", "C": "B", "D": "B"}, prev)
}

func TestShortestPath_Metrics(t *testing.T) {
	tests := []struct {
		metric dijkstra.Metric
		path   []string
		cost   float64
	}{
		{dijkstra.MetricSearchCost, []string{"A", "B", "D"}, 7},
		{dijkstra.MetricDistance, []string{"A", "B", "C", "D"}, 4},
		{dijkstra.MetricTravelTime, []string{"A", "B", "D"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.metric.String(), func(t *testing.T) {
			path, cost, err := dijkstra.ShortestPath(network(t), "A", "D", dijkstra.WithMetric(tt.metric))
			require.NoError(t, err)
			assert.Equal(t, tt.path, path)
			assert.Equal(t, tt.cost, cost)
		})
	}
}

// ------------------------------------------------------------------------
// 3. Edge cases
// ------------------------------------------------------------------------

func TestShortestPath_SameVertex(t *testing.T) {
	path, cost, err := dijkstra.ShortestPath(network(t), "C", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, path)
	assert.Zero(t, cost)
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := network(t)
	require.NoError(t, g.AddVertex("Z"))

	_, _, err := dijkstra.ShortestPath(g, "A", "Z")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	dist, _, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.True(t, math.IsInf(dist["Z"], 1))
}

func TestDijkstra_MaxCost(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(network(t), "A", dijkstra.WithMaxCost(5))
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist["B"])
	assert.True(t, math.IsInf(dist["C"], 1))
	assert.True(t, math.IsInf(dist["D"], 1))
	assert.NotContains(t, prev, "D")

	_, _, err = dijkstra.ShortestPath(network(t), "A", "D", dijkstra.WithMaxCost(5))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestShortestPath_TiesByVertexID(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "D", 1, 1))
	require.NoError(t, g.AddEdge("D", "C", 1, 1))
	require.NoError(t, g.AddEdge("A", "B", 1, 1))
	require.NoError(t, g.AddEdge("B", "C", 1, 1))

	for i := 0; i < 5; i++ {
		path, cost, err := dijkstra.ShortestPath(g, "A", "C")
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, path)
		assert.Equal(t, 4.0, cost)
	}
}

func TestDijkstra_IgnoresVisitCounters(t *testing.T) {
	g := network(t)
	g.Visits().IncrementPath([]string{"A", "B", "D"})
	g.Visits().IncrementPath([]string{"A", "B", "D"})

	path, _, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)
}
