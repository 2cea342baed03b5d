// Package dfs implements depth-first search over a graph.Graph, plus the
// two classic DFS corollaries: cycle detection and topological ordering.
//
// What
//
//   - DFS(g, start): pre-order traversal driven by an explicit stack
//     (the adtkit stack package) rather than recursion, so deep graphs
//     cannot overflow the goroutine stack. Returns Order, Depth, Parent
//     and Visited. WithFullTraversal covers disconnected components;
//     WithOnVisit hooks each discovery; WithContext cancels.
//   - HasCycle(g): three-color marking on directed graphs; undirected
//     ones skip only the arrival edge, so parallel edges form cycles.
//   - Topological(g): Kahn's algorithm over in-degrees; the ready set is
//     an adtkit priority queue keyed by vertex ID, so among all valid
//     orders the lexicographically smallest is always produced.
//
// Determinism
//
//	Neighbors are expanded in sorted order everywhere, so Order and the
//	topological result are reproducible run to run.
//
// Errors
//
//   - ErrGraphNil             — nil graph pointer.
//   - ErrStartVertexNotFound  — absent start vertex (single-source mode).
//   - ErrNotDirected          — Topological on an undirected graph.
//   - ErrCycleDetected        — Topological on a cyclic graph.
//   - Wrapped OnVisit errors, and ctx.Err() on cancellation.
//
// Complexity: all three entry points are O(V + E) time, O(V) memory.
package dfs
