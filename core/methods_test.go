// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathdiv/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestAddVertexAndHasVertex() {
	require := require.New(s.T())
	require.False(s.g.HasVertex("A"), "empty graph should not have A")

	require.NoError(s.g.AddVertex("A"))
	require.True(s.g.HasVertex("A"))

	// Idempotence
	require.NoError(s.g.AddVertex("A"))
	require.Equal(1, s.g.VertexCount())

	require.ErrorIs(s.g.AddVertex(""), core.ErrEmptyVertexID)
	require.False(s.g.HasVertex(""))
}

func (s *GraphSuite) TestAddVertexAtStoresPosition() {
	require := require.New(s.T())
	require.NoError(s.g.AddVertex("Library"))
	v, err := s.g.Vertex("Library")
	require.NoError(err)
	require.False(v.HasPosition)

	require.NoError(s.g.AddVertexAt("Library", 2.5, 4))
	v, err = s.g.Vertex("Library")
	require.NoError(err)
	require.True(v.HasPosition)
	require.Equal(2.5, v.X)
	require.Equal(4.0, v.Y)

	_, err = s.g.Vertex("Gym")
	require.ErrorIs(err, core.ErrVertexNotFound)
}

func (s *GraphSuite) TestAddEdgeIsSymmetric() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 5, 1.5))

	require.True(s.g.HasVertex("A") && s.g.HasVertex("B"), "AddEdge should auto-add vertices")
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"))

	w, err := s.g.Weight("B", "A")
	require.NoError(err)
	require.Equal(5.0, w)
	tt, err := s.g.TravelTime("A", "B")
	require.NoError(err)
	require.Equal(1.5, tt)
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeRejectsInvalidInput() {
	require := require.New(s.T())
	require.ErrorIs(s.g.AddEdge("", "B", 1, 1), core.ErrEmptyVertexID)
	require.ErrorIs(s.g.AddEdge("A", "A", 1, 1), core.ErrLoopNotAllowed)
	require.ErrorIs(s.g.AddEdge("A", "B", -1, 1), core.ErrNegativeWeight)
	require.ErrorIs(s.g.AddEdge("A", "B", 1, -0.5), core.ErrNegativeWeight)
	require.Equal(0, s.g.EdgeCount())
}

func (s *GraphSuite) TestReAddEdgeOverwritesButKeepsOrder() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1, 1))
	require.NoError(s.g.AddEdge("A", "C", 2, 2))
	require.NoError(s.g.AddEdge("A", "B", 7, 3))

	arcs, err := s.g.Neighbors("A")
	require.NoError(err)
	require.Equal([]core.Arc{
		{To: "B", Weight: 7, TravelTime: 3},
		{To: "C", Weight: 2, TravelTime: 2},
	}, arcs)
	require.Equal(2, s.g.EdgeCount())
}

func (s *GraphSuite) TestMissingLookups() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1, 1))

	_, err := s.g.Weight("A", "Z")
	require.ErrorIs(err, core.ErrEdgeNotFound)
	_, err = s.g.TravelTime("Z", "A")
	require.ErrorIs(err, core.ErrEdgeNotFound)
	_, err = s.g.Neighbors("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.False(s.g.HasEdge("Z", "A"))
}

func (s *GraphSuite) TestVerticesSorted() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("Gym", "Cafe", 1, 1))
	require.NoError(s.g.AddVertex("Atrium"))
	require.Equal([]string{"Atrium", "Cafe", "Gym"}, s.g.Vertices())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1, 1))
	require.NoError(s.g.AddEdge("B", "C", 2, 1))
	s.g.Visits().IncrementEdge("A", "B")

	clone := s.g.Clone()
	require.Equal(1, clone.Visits().Get("A", "B"))

	// Mutating the clone leaves the source untouched.
	require.NoError(clone.AddEdge("C", "D", 1, 1))
	clone.Visits().IncrementEdge("B", "C")
	require.False(s.g.HasVertex("D"))
	require.Equal(0, s.g.Visits().Get("B", "C"))

	arcs, err := clone.Neighbors("B")
	require.NoError(err)
	require.Equal("A", arcs[0].To)
	require.Equal("C", arcs[1].To)

	fresh := s.g.CloneFresh()
	require.Equal(0, fresh.Visits().Len())
	require.Equal(1, s.g.Visits().Get("B", "A"))
}

func (s *GraphSuite) TestStats() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge("A", "B", 1, 1))
	require.NoError(s.g.AddEdge("B", "C", 1, 1))
	s.g.Visits().IncrementPath([]string{"A", "B", "C"})

	st := s.g.Stats()
	require.Equal(core.GraphStats{VertexCount: 3, EdgeCount: 2, VisitedArcs: 4, TotalVisitCounter: 4}, st)

	s.g.ResetVisits()
	require.Equal(0, s.g.Stats().VisitedArcs)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestGraph_PathSums(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 3, 0.5))
	require.NoError(t, g.AddEdge("B", "C", 4, 1.25))

	w, err := g.PathWeight([]string{"A", "B", "C"})
	require.NoError(t, err)
	require.Equal(t, 7.0, w)

	tt, err := g.PathTravelTime([]string{"C", "B", "A"})
	require.NoError(t, err)
	require.Equal(t, 1.75, tt)

	w, err = g.PathWeight([]string{"A"})
	require.NoError(t, err)
	require.Zero(t, w)

	_, err = g.PathWeight([]string{"A", "C"})
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}
