// Package graph provides the in-memory adjacency-list graph the traversal
// and path packages (bfs, dfs, dijkstra, mst) operate on.
//
// What
//
//   - Graph: a set of string-identified vertices and ID-stamped edges,
//     configured at construction with functional options:
//     WithDirected, WithWeighted, WithLoops, WithMultiEdges.
//   - Vertex ops: AddVertex, HasVertex, RemoveVertex (detaches incident
//     edges), Vertices, VertexCount.
//   - Edge ops: AddEdge (auto-registers endpoints), RemoveEdge, HasEdge,
//     Edges, EdgeCount, Neighbors, NeighborIDs.
//   - Clone produces an independent deep copy.
//
// Policy, enforced at AddEdge time:
//
//   - Non-zero weight on an unweighted graph   → ErrBadWeight
//   - Self-loop without WithLoops              → ErrLoopNotAllowed
//   - Parallel edge without WithMultiEdges     → ErrMultiEdgeNotAllowed
//
// Determinism
//
//	Vertices, Edges, Neighbors and NeighborIDs return sorted results, so
//	every traversal built on them has a reproducible visit order.
//
// Concurrency
//
//	All methods are safe for concurrent use; a single RWMutex guards the
//	vertex, edge and adjacency storage.
//
// Usage
//
//	g := graph.New(graph.WithDirected(true), graph.WithWeighted())
//	_, _ = g.AddEdge("A", "B", 4)
//	_, _ = g.AddEdge("B", "C", 2)
//	g.NeighborIDs("A") // ["B"], nil
//
// Complexity: vertex and edge insertion are O(1) plus map overhead;
// listings are O(n log n) for the sort; Clone is O(V + E).
package graph
