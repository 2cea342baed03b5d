// Package bfs provides breadth-first search over a graph.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - BFS explores vertices in non-decreasing edge distance from a start
//     vertex, using the adtkit queue package as its frontier.
//   - Result carries Order (visit sequence), Depth (vertex → distance in
//     edges) and Parent (vertex → predecessor); Result.PathTo
//     reconstructs the start→dest path.
//   - Hooks at three stages: OnEnqueue, OnDequeue, OnVisit (the latter
//     may abort the search with an error).
//   - WithMaxDepth bounds exploration; WithFilterNeighbor prunes edges;
//     WithContext cancels long traversals.
//
// Determinism
//
//	graph.NeighborIDs returns sorted neighbors and BFS enqueues them in
//	that order, so the visit sequence is fully reproducible.
//
// Errors
//
//   - ErrGraphNil             — nil graph pointer.
//   - ErrStartVertexNotFound  — absent start vertex.
//   - ErrWeightedGraph        — BFS distances are edge counts; weighted
//     graphs belong to dijkstra.
//   - ErrOptionViolation      — invalid option value (negative MaxDepth).
//   - Wrapped OnVisit errors, and ctx.Err() on cancellation.
//
// Usage
//
//	res, err := bfs.BFS(g, "start",
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(id string, depth int) error { return nil }),
//	)
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
