package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtkit/adtkit/graph"
)

func TestPath_TooFew(t *testing.T) {
	_, err := graph.Path(1)
	assert.ErrorIs(t, err, graph.ErrTooFewVertices)
}

func TestPath_Shape(t *testing.T) {
	g, err := graph.Path(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, g.Vertices())

	// Endpoints have one neighbor, inner vertices two.
	ids, err := g.NeighborIDs("v0")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1"}, ids)
	ids, err = g.NeighborIDs("v2")
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v3"}, ids)
}

func TestPath_WeightedUnitWeights(t *testing.T) {
	g, err := graph.Path(3, graph.WithWeighted())
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Equal(t, int64(1), e.Weight)
	}
}

func TestCycle_Shape(t *testing.T) {
	_, err := graph.Cycle(2)
	assert.ErrorIs(t, err, graph.ErrTooFewVertices)

	g, err := graph.Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
	assert.True(t, g.HasEdge("v4", "v0"))
}

func TestComplete_Shape(t *testing.T) {
	g, err := graph.Complete(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount()) // n(n-1)/2

	for _, v := range g.Vertices() {
		ids, err := g.NeighborIDs(v)
		require.NoError(t, err)
		assert.Len(t, ids, 3)
	}
}

func TestComplete_DirectedBothWays(t *testing.T) {
	g, err := graph.Complete(3, graph.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount()) // n(n-1)
	assert.True(t, g.HasEdge("v1", "v0"))
	assert.True(t, g.HasEdge("v0", "v1"))
}

func TestStar_Shape(t *testing.T) {
	g, err := graph.Star(6)
	require.NoError(t, err)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())

	center, err := g.NeighborIDs("v0")
	require.NoError(t, err)
	assert.Len(t, center, 5)
	leaf, err := g.NeighborIDs("v3")
	require.NoError(t, err)
	assert.Equal(t, []string{"v0"}, leaf)
}
