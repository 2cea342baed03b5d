// Package dijkstra computes single-source shortest paths on weighted
// graphs with non-negative edge weights.
//
// What:
//
//   - Dijkstra(g, source, opts...) returns the minimum distance from
//     source to every vertex, plus a parent map for path recovery.
//   - Result.PathTo(id) reconstructs the shortest path to one target.
//
// Why:
//
//   - BFS finds fewest-hop paths; once edges carry costs you need
//     cheapest paths, and Dijkstra is the canonical answer when no
//     weight is negative.
//
// How:
//
//   - Vertices are settled in order of increasing distance using a
//     min-priority queue (pqueue). Relaxation pushes duplicates and
//     stale entries are skipped on extraction, the usual lazy
//     decrease-key strategy.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the distance map and queue entries.
//
// Determinism:
//
//   - Equal-distance vertices settle in insertion order thanks to the
//     queue's FIFO tie-break, so results are reproducible.
//
// Errors:
//
//   - ErrGraphNil, ErrNotWeighted, ErrSourceNotFound on invalid input.
//   - ErrNegativeWeight if any edge weight is negative (checked up
//     front, fail fast).
//
// Usage:
//
//	g := graph.New(graph.WithWeighted())
//	g.AddEdge("A", "B", 4)
//	g.AddEdge("B", "C", 1)
//	res, err := dijkstra.Dijkstra(g, "A")
//	// res.Dist["C"] == 5, res.PathTo("C") == ["A","B","C"]
package dijkstra
