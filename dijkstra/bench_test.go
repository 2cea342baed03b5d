package dijkstra_test

import (
	"testing"

	"github.com/adtkit/adtkit/dijkstra"
	"github.com/adtkit/adtkit/graph"
)

// BenchmarkDijkstra_Path measures the worst case for the queue: a long
// chain where every vertex is settled in turn.
func BenchmarkDijkstra_Path(b *testing.B) {
	g, err := graph.Path(10000, graph.WithWeighted())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, "v0")
	}
}

// BenchmarkDijkstra_Complete measures a dense graph, K_200.
func BenchmarkDijkstra_Complete(b *testing.B) {
	g, err := graph.Complete(200, graph.WithWeighted())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(g, "v0")
	}
}
