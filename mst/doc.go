// Package mst computes minimum spanning trees of undirected, weighted
// graphs with Kruskal's and Prim's algorithms.
//
// What:
//
//   - Kruskal(g) sorts all edges by weight and joins components with a
//     disjoint-set union (unionfind), keeping every edge that bridges
//     two components.
//   - Prim(g, root) grows one tree outward from root, always taking
//     the lightest edge that leaves the visited set (pqueue).
//
// Why:
//
//   - Both produce a spanning tree of minimum total weight; which one
//     wins depends on shape. Kruskal shines on sparse edge lists,
//     Prim on dense adjacency.
//
// Complexity:
//
//   - Kruskal: O(E log E) for the sort plus near-constant DSU work.
//   - Prim:    O(E log V) heap operations.
//   - Space:   O(V + E) for both.
//
// Determinism:
//
//   - Kruskal sorts with a stable merge, so equal-weight edges keep
//     insertion order. Prim's queue breaks weight ties FIFO. Both
//     yield the same tree on every run.
//
// Errors:
//
//   - ErrInvalidGraph for nil, directed, or unweighted input.
//   - ErrEmptyRoot / ErrRootNotFound for a bad Prim root.
//   - ErrDisconnected when no spanning tree covers every vertex.
//
// Usage:
//
//	g := graph.New(graph.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	g.AddEdge("A", "C", 5)
//	edges, total, err := mst.Kruskal(g)
//	// total == 3, edges span A, B, C
package mst
