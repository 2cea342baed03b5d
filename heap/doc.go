// Package heap provides a generic binary min-heap ordered by a
// caller-supplied comparison function.
//
// What
//
//   - Heap[T]: Push, Pop, Peek, Len, IsEmpty, Clear over an implicit
//     binary tree stored in a slice (children of i at 2i+1 and 2i+2).
//   - New(less) orders by any strict less-than; NewOrdered needs no
//     comparator for cmp.Ordered element types.
//   - Heapify(items, less) adopts an existing slice and repairs it
//     bottom-up in O(n) — the classic build-heap pass.
//
// Invariant
//
//	For every index i > 0: !less(items[i], items[(i-1)/2]) — a parent is
//	never greater than its children. The invariant holds before and after
//	every exported operation.
//
// Why
//
//   - The heap is the engine behind priority queues, heapsort, Dijkstra
//     and Prim. adtkit's pqueue, sorting.Heap, dijkstra and mst packages
//     all run on this implementation rather than container/heap.
//
// Errors
//
//   - ErrEmptyHeap — Pop or Peek on an empty heap.
//   - ErrNilLess   — New or Heapify given a nil comparison function.
//
// Usage
//
//	h, _ := heap.New(func(a, b int) bool { return a < b })
//	h.Push(3)
//	h.Push(1)
//	v, _ := h.Pop() // 1
//
// Complexity: Push and Pop are O(log n); Peek/Len O(1); Heapify O(n).
// Memory: O(n).
package heap
