// Package adtkit is a collection of classic data structures and algorithms,
// one self-contained package per structure or algorithm family — the staples
// of an algorithms course, written as idiomatic, generic Go.
//
// 🚀 What is adtkit?
//
//	A pure-Go library bringing together:
//		• ADT exercises: ε-equal 2-D points, validated Gregorian dates
//		• Containers: stack, queue & deque, singly-linked list, hash table
//		• Heaps: generic binary min-heap + priority queue built on it
//		• Trees: binary search tree with four traversal orders
//		• Union-find: disjoint sets with path compression & union by rank
//		• Sorting: bubble, insertion, selection, shell, merge, quick, heap
//		• Searching: linear & binary search
//		• Graphs: adjacency-list core, BFS, DFS (+ cycles, topological
//		  sort), Dijkstra shortest paths, Prim & Kruskal spanning trees
//
// ✨ Why choose adtkit?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Honest contracts – sentinel errors, documented invariants & complexity
//   - Pure Go – no cgo, no hidden deps
//   - Composable – the graph algorithms reuse the heap, queue and
//     union-find packages rather than re-rolling their own
//
// Every package carries its own doc.go with What/Why/Complexity/Usage
// sections, runnable examples, and a test suite asserting the textbook
// properties (LIFO pop order, heap shape, BST ordering, MST weight, …).
//
//	go get github.com/adtkit/adtkit
package adtkit
