package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adtkit/adtkit/dfs"
	"github.com/adtkit/adtkit/graph"
)

// buildChain creates a directed chain N0→N1→…→N(n-1).
func buildChain(n int) *graph.Graph {
	g := graph.New(graph.WithDirected(true))
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge("N"+strconv.Itoa(i), "N"+strconv.Itoa(i+1), 0)
	}
	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, "A")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := graph.New()
	_, err := dfs.DFS(g, "X")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("A"))

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.True(t, res.Visited["A"])
	assert.Equal(t, 0, res.Depth["A"])
	_, hasParent := res.Parent["A"]
	assert.False(t, hasParent)
}

func TestDFS_PreOrderDeterministic(t *testing.T) {
	//      A
	//     / \
	//    B   E
	//   / \
	//  C   D
	g := graph.New(graph.WithDirected(true))
	for _, e := range [][2]string{{"A", "B"}, {"A", "E"}, {"B", "C"}, {"B", "D"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	res, err := dfs.DFS(g, "A")
	require.NoError(t, err)
	// Smallest neighbor first: the whole B-subtree before E.
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, res.Order)
	assert.Equal(t, "B", res.Parent["C"])
	assert.Equal(t, 2, res.Depth["D"])
	assert.Equal(t, 1, res.Depth["E"])
}

func TestDFS_DeepChainNoOverflow(t *testing.T) {
	const n = 200000
	g := buildChain(n)

	res, err := dfs.DFS(g, "N0")
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth["N"+strconv.Itoa(n-1)])
}

func TestDFS_FullTraversal(t *testing.T) {
	g := graph.New(graph.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 0)
	_, _ = g.AddEdge("X", "Y", 0)

	res, err := dfs.DFS(g, "X", dfs.WithFullTraversal())
	require.NoError(t, err)
	// Start component first, then remaining roots in ascending order.
	assert.Equal(t, []string{"X", "Y", "A", "B"}, res.Order)
}

func TestDFS_OnVisitAborts(t *testing.T) {
	g := buildChain(5)
	boom := errors.New("boom")

	res, err := dfs.DFS(g, "N0", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "N2" {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"N0", "N1", "N2"}, res.Order)
}

func TestDFS_ContextCancelled(t *testing.T) {
	g := buildChain(100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, "N0", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_UndirectedVisitsBothWays(t *testing.T) {
	g := graph.New()
	_, _ = g.AddEdge("A", "B", 0)

	res, err := dfs.DFS(g, "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, res.Order)
}
