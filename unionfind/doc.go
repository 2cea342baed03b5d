// Package unionfind implements the disjoint-set union (DSU) structure
// with path compression and union by rank.
//
// What
//
//   - DSU[T]: MakeSet, Find, Union, Connected, Count, Len over any
//     comparable element type.
//   - Find flattens the chain it walks (path compression); Union attaches
//     the shorter tree under the taller one (union by rank). Together the
//     amortized cost per operation is α(n) — effectively constant.
//
// Why
//
//   - Connectivity queries without building a graph: Kruskal's MST,
//     cycle detection, equivalence classes, network-of-friends puzzles.
//     adtkit's mst.Kruskal runs on this implementation.
//
// Errors
//
//   - ErrUnknownElement — Find/Union/Connected on an element never passed
//     to MakeSet.
//
// Usage
//
//	d := unionfind.New[string]()
//	d.MakeSet("a")
//	d.MakeSet("b")
//	_ = d.Union("a", "b")
//	ok, _ := d.Connected("a", "b") // true
//
// Complexity: amortized O(α(n)) per Find/Union/Connected; MakeSet O(1).
// Memory: O(n).
package unionfind
