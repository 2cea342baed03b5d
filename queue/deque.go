package queue

import "iter"

// Deque is a generic double-ended queue over the same ring buffer core as
// Queue. The zero value is NOT ready to use; construct with NewDeque.
type Deque[T any] struct {
	r ring[T]
}

// NewDeque returns an empty Deque configured by opts.
func NewDeque[T any](opts ...Option) *Deque[T] {
	return &Deque[T]{r: newRing[T](opts)}
}

// PushBack appends v at the back.
// Returns ErrQueueFull if the deque is bounded and already full.
func (d *Deque[T]) PushBack(v T) error { return d.r.pushBack(v) }

// PushFront prepends v at the front.
// Returns ErrQueueFull if the deque is bounded and already full.
func (d *Deque[T]) PushFront(v T) error { return d.r.pushFront(v) }

// PopFront removes and returns the front element.
// Returns ErrEmptyQueue when the deque is empty.
func (d *Deque[T]) PopFront() (T, error) { return d.r.popFront() }

// PopBack removes and returns the back element.
// Returns ErrEmptyQueue when the deque is empty.
func (d *Deque[T]) PopBack() (T, error) { return d.r.popBack() }

// Front returns the front element without removing it.
func (d *Deque[T]) Front() (T, error) { return d.r.front() }

// Back returns the back element without removing it.
func (d *Deque[T]) Back() (T, error) { return d.r.back() }

// Len returns the number of stored elements.
func (d *Deque[T]) Len() int { return d.r.size }

// IsEmpty reports whether the deque holds no elements.
func (d *Deque[T]) IsEmpty() bool { return d.r.size == 0 }

// Clear discards every element, keeping the allocated capacity.
func (d *Deque[T]) Clear() { d.r.clear() }

// All iterates the elements from front to back without mutating the deque.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.r.size; i++ {
			if !yield(d.r.items[(d.r.head+i)%len(d.r.items)]) {
				return
			}
		}
	}
}
