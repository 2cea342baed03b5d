// Package queue provides a generic FIFO queue and a double-ended queue
// (deque), both backed by a growable ring buffer.
//
// What
//
//   - Queue[T]: Enqueue, Dequeue, Front, Len, IsEmpty, Clear. Strict FIFO:
//     Dequeue returns values in insertion order.
//   - Deque[T]: PushFront, PushBack, PopFront, PopBack, Front, Back — a
//     queue that accepts and yields at both ends.
//   - Both share one ring-buffer core: a circular slice with head index
//     and size, doubling on overflow, so no element is ever shifted.
//   - Optional bound via WithMaxSize; a full bounded queue rejects
//     insertion with ErrQueueFull.
//   - All() iterates front→back without mutating the container.
//
// Why
//
//   - FIFO ordering is the backbone of BFS, schedulers, and buffering.
//     The ring-buffer layout is the classic answer to the "shifting
//     array queue" pitfall: O(1) at both ends.
//
// Errors
//
//   - ErrEmptyQueue — removal or inspection of an empty queue/deque.
//   - ErrQueueFull  — insertion into a bounded queue/deque at capacity.
//
// Usage
//
//	q := queue.New[string]()
//	q.Enqueue("a")
//	q.Enqueue("b")
//	v, _ := q.Dequeue() // "a"
//
// Complexity: all single-element operations are amortized O(1); All is
// O(n). Memory: O(n).
package queue
