package queue

import "iter"

// Queue is a generic FIFO container over a ring buffer. The zero value is
// NOT ready to use; construct with New.
type Queue[T any] struct {
	r ring[T]
}

// New returns an empty Queue configured by opts.
func New[T any](opts ...Option) *Queue[T] {
	return &Queue[T]{r: newRing[T](opts)}
}

// Enqueue appends v at the back of the queue.
// Returns ErrQueueFull if the queue is bounded and already full.
func (q *Queue[T]) Enqueue(v T) error { return q.r.pushBack(v) }

// Dequeue removes and returns the front element.
// Returns ErrEmptyQueue when the queue is empty.
func (q *Queue[T]) Dequeue() (T, error) { return q.r.popFront() }

// Front returns the front element without removing it.
// Returns ErrEmptyQueue when the queue is empty.
func (q *Queue[T]) Front() (T, error) { return q.r.front() }

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return q.r.size }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.r.size == 0 }

// Clear discards every element, keeping the allocated capacity.
func (q *Queue[T]) Clear() { q.r.clear() }

// All iterates the elements from front to back without mutating the queue.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < q.r.size; i++ {
			if !yield(q.r.items[(q.r.head+i)%len(q.r.items)]) {
				return
			}
		}
	}
}
