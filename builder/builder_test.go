package builder_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathdiv/builder"
	"github.com/katalvlaran/pathdiv/core"
)

func TestGrid_Shape(t *testing.T) {
	g, err := builder.BuildNetwork(nil, builder.Grid(3, 4))
	require.NoError(t, err)

	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 3*3+2*4, g.EdgeCount())

	v, err := g.Vertex(builder.GridID(2, 3))
	require.NoError(t, err)
	assert.True(t, v.HasPosition)
	assert.Equal(t, 3.0, v.X)
	assert.Equal(t, 2.0, v.Y)

	w, err := g.Weight("0,0", "0,1")
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultSegmentLength, w)
	tt, err := g.TravelTime("0,0", "1,0")
	require.NoError(t, err)
	assert.InDelta(t, builder.DefaultSegmentLength/builder.DefaultWalkingSpeed, tt, 1e-9)
	assert.False(t, g.HasEdge("0,0", "1,1"))
}

func TestGrid_Errors(t *testing.T) {
	_, err := builder.BuildNetwork(nil, builder.Grid(0, 3))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildNetwork(nil, nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestDiagonals(t *testing.T) {
	g, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)},
		builder.Grid(3, 3), builder.Diagonals(3, 3, 1))
	require.NoError(t, err)
	assert.Equal(t, 12+4, g.EdgeCount())

	w, err := g.Weight("1,1", "2,2")
	require.NoError(t, err)
	assert.InDelta(t, builder.DefaultSegmentLength*math.Sqrt2, w, 1e-9)

	g, err = builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)},
		builder.Grid(3, 3), builder.Diagonals(3, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 12, g.EdgeCount())

	_, err = builder.BuildNetwork(nil, builder.Grid(3, 3), builder.Diagonals(3, 3, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)}, builder.Diagonals(3, 3, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)
}

func TestRing(t *testing.T) {
	g, err := builder.BuildNetwork([]builder.BuilderOption{
		builder.WithIDScheme(func(i int) string { return "p" + strconv.Itoa(i) }),
		builder.WithSpacing(10),
	}, builder.Ring(5))
	require.NoError(t, err)

	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("p4", "p0"), "the loop closes")

	v, err := g.Vertex("p0")
	require.NoError(t, err)
	assert.InDelta(t, 50/(2*math.Pi), v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)

	_, err = builder.BuildNetwork(nil, builder.Ring(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestUniformSegment_Deterministic(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildNetwork([]builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithSegmentFn(builder.UniformSegment(50, 150, 1.25)),
		}, builder.Grid(4, 4))
		require.NoError(t, err)

		return g
	}
	a, b := build(), build()
	for _, id := range a.Vertices() {
		arcsA, err := a.Neighbors(id)
		require.NoError(t, err)
		arcsB, err := b.Neighbors(id)
		require.NoError(t, err)
		require.Equal(t, arcsA, arcsB)
		for _, arc := range arcsA {
			assert.GreaterOrEqual(t, arc.Weight, 50.0)
			assert.LessOrEqual(t, arc.Weight, 150.0)
			assert.Equal(t, math.Trunc(arc.Weight), arc.Weight, "lengths are whole metres")
			assert.InDelta(t, arc.Weight/1.25, arc.TravelTime, 1e-9)
		}
	}

	d, tt := builder.UniformSegment(10, 20, 2)(nil)
	assert.Equal(t, 15.0, d)
	assert.Equal(t, 7.5, tt)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithSegmentFn(nil) })
	assert.Panics(t, func() { builder.ConstSegment(1, 0) })
	assert.Panics(t, func() { builder.UniformSegment(5, 1, 1) })
}
