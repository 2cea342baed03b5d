package queue

import "errors"

// Sentinel errors shared by Queue and Deque.
var (
	// ErrEmptyQueue indicates removal or inspection of an empty container.
	ErrEmptyQueue = errors.New("queue: empty queue")

	// ErrQueueFull indicates insertion into a bounded container at capacity.
	ErrQueueFull = errors.New("queue: queue is full")
)

// minRingCapacity is the smallest backing slice allocated on first insert.
const minRingCapacity = 8

// Option configures a Queue or Deque before first use.
type Option func(*config)

type config struct {
	capacity int
	maxSize  int
}

// WithCapacity preallocates room for n elements. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithMaxSize bounds the container at n elements; insertion beyond the
// bound returns ErrQueueFull. Values below 1 leave it unbounded.
func WithMaxSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// ring is the circular-slice core shared by Queue and Deque.
// Elements live at indices (head+i) mod len(items) for i in [0, size).
type ring[T any] struct {
	items   []T
	head    int
	size    int
	maxSize int // 0 = unbounded
}

func newRing[T any](opts []Option) ring[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	var items []T
	if c.capacity > 0 {
		items = make([]T, c.capacity)
	}
	return ring[T]{items: items, maxSize: c.maxSize}
}

// full reports whether a bounded ring has reached its bound.
func (r *ring[T]) full() bool {
	return r.maxSize > 0 && r.size == r.maxSize
}

// grow doubles the backing slice when size has caught up with capacity,
// unrolling the wrapped layout into a fresh contiguous prefix.
func (r *ring[T]) grow() {
	if r.size < len(r.items) {
		return
	}
	next := len(r.items) * 2
	if next == 0 {
		next = minRingCapacity
	}
	items := make([]T, next)
	for i := 0; i < r.size; i++ {
		items[i] = r.items[(r.head+i)%len(r.items)]
	}
	r.items = items
	r.head = 0
}

func (r *ring[T]) pushBack(v T) error {
	if r.full() {
		return ErrQueueFull
	}
	r.grow()
	r.items[(r.head+r.size)%len(r.items)] = v
	r.size++
	return nil
}

func (r *ring[T]) pushFront(v T) error {
	if r.full() {
		return ErrQueueFull
	}
	r.grow()
	r.head = (r.head - 1 + len(r.items)) % len(r.items)
	r.items[r.head] = v
	r.size++
	return nil
}

func (r *ring[T]) popFront() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmptyQueue
	}
	v := r.items[r.head]
	r.items[r.head] = zero // release the reference
	r.head = (r.head + 1) % len(r.items)
	r.size--
	return v, nil
}

func (r *ring[T]) popBack() (T, error) {
	var zero T
	if r.size == 0 {
		return zero, ErrEmptyQueue
	}
	i := (r.head + r.size - 1) % len(r.items)
	v := r.items[i]
	r.items[i] = zero
	r.size--
	return v, nil
}

func (r *ring[T]) front() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return r.items[r.head], nil
}

func (r *ring[T]) back() (T, error) {
	if r.size == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}
	return r.items[(r.head+r.size-1)%len(r.items)], nil
}

func (r *ring[T]) clear() {
	var zero T
	for i := 0; i < r.size; i++ {
		r.items[(r.head+i)%len(r.items)] = zero
	}
	r.head = 0
	r.size = 0
}
