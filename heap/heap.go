package heap

import (
	"cmp"
	"errors"
)

// Sentinel errors for heap operations.
var (
	// ErrEmptyHeap indicates Pop or Peek was called on an empty heap.
	ErrEmptyHeap = errors.New("heap: empty heap")

	// ErrNilLess indicates a nil comparison function was supplied.
	ErrNilLess = errors.New("heap: nil less function")
)

// Heap is a binary min-heap under the supplied less function. The zero
// value is NOT ready to use; construct with New, NewOrdered or Heapify.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty heap ordered by less, where less(a, b) reports
// whether a must be popped before b. Returns ErrNilLess if less is nil.
func New[T any](less func(a, b T) bool) (*Heap[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}
	return &Heap[T]{less: less}, nil
}

// NewOrdered returns an empty min-heap over a naturally ordered type.
func NewOrdered[T cmp.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a < b }}
}

// Heapify adopts items (no copy) and repairs the heap invariant bottom-up
// in O(n). Returns ErrNilLess if less is nil. The caller must not use the
// slice afterwards.
func Heapify[T any](items []T, less func(a, b T) bool) (*Heap[T], error) {
	if less == nil {
		return nil, ErrNilLess
	}
	h := &Heap[T]{items: items, less: less}
	for i := len(items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
	return h, nil
}

// Push inserts v, restoring the invariant along the root path.
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the minimum element.
// Returns ErrEmptyHeap when the heap is empty.
func (h *Heap[T]) Pop() (T, error) {
	var zero T
	if len(h.items) == 0 {
		return zero, ErrEmptyHeap
	}
	last := len(h.items) - 1
	min := h.items[0]
	h.items[0] = h.items[last]
	h.items[last] = zero // release the reference
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}
	return min, nil
}

// Peek returns the minimum element without removing it.
// Returns ErrEmptyHeap when the heap is empty.
func (h *Heap[T]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyHeap
	}
	return h.items[0], nil
}

// Len returns the number of stored elements.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// Clear discards every element, keeping the allocated capacity.
func (h *Heap[T]) Clear() {
	var zero T
	for i := range h.items {
		h.items[i] = zero
	}
	h.items = h.items[:0]
}

// siftUp bubbles items[i] toward the root until its parent is not greater.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.items[i], h.items[parent]) {
			return
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

// siftDown sinks items[i] below its smaller child until both children are
// not smaller.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		if left >= n {
			return
		}
		smallest := left
		if right := left + 1; right < n && h.less(h.items[right], h.items[left]) {
			smallest = right
		}
		if !h.less(h.items[smallest], h.items[i]) {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
