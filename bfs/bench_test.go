package bfs_test

import (
	"fmt"
	"testing"

	"github.com/adtkit/adtkit/bfs"
	"github.com/adtkit/adtkit/graph"
)

// BenchmarkBFS_Chain measures BFS over a linear chain of N edges.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := graph.New()
	for i := 0; i < N; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_BinaryTree measures BFS over a complete binary tree.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10-1 vertices
	g := graph.New(graph.WithDirected(true))
	for i := 2; i < 1<<depth; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("t%d", i/2), fmt.Sprintf("t%d", i), 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "t1")
	}
}
