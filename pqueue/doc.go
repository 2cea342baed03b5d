// Package pqueue provides a generic priority queue built on the adtkit
// heap package.
//
// What
//
//   - PQueue[T, P]: Push(value, priority), Pop, Peek, Len, IsEmpty over
//     any value type T and any ordered priority type P.
//   - Min-queue by default (lowest priority pops first); NewMax flips the
//     order.
//   - Stable: equal priorities pop in insertion order, enforced with a
//     monotonic sequence number in the heap ordering — the standard cure
//     for heap tie-break nondeterminism.
//
// Why
//
//   - The thin-wrapper-over-a-heap exercise: the queue adds exactly two
//     ideas (a priority attached to an opaque payload, and a stability
//     guarantee) and delegates every structural concern to heap.Heap.
//
// Errors
//
//   - ErrEmptyQueue — Pop or Peek on an empty queue.
//
// Usage
//
//	pq := pqueue.New[string, int]()
//	pq.Push("low", 10)
//	pq.Push("high", 1)
//	v, _, _ := pq.Pop() // "high", 1
//
// Complexity: Push/Pop O(log n), Peek O(1). Memory: O(n).
package pqueue
