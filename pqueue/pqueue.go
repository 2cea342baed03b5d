package pqueue

import (
	"cmp"
	"errors"

	"github.com/adtkit/adtkit/heap"
)

// ErrEmptyQueue indicates Pop or Peek was called on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: empty queue")

// entry pairs a payload with its priority and an insertion sequence number
// used to break priority ties first-in-first-out.
type entry[T any, P cmp.Ordered] struct {
	value    T
	priority P
	seq      uint64
}

// PQueue is a stable priority queue over payloads of type T prioritized by
// values of ordered type P. The zero value is NOT ready to use; construct
// with New or NewMax.
type PQueue[T any, P cmp.Ordered] struct {
	h   *heap.Heap[entry[T, P]]
	seq uint64
}

// New returns an empty min-priority queue: the entry with the lowest
// priority pops first, ties resolved in insertion order.
func New[T any, P cmp.Ordered]() *PQueue[T, P] {
	return build[T, P](func(a, b entry[T, P]) bool {
		if a.priority != b.priority {
			return a.priority < b.priority
		}
		return a.seq < b.seq
	})
}

// NewMax returns an empty max-priority queue: the entry with the highest
// priority pops first, ties resolved in insertion order.
func NewMax[T any, P cmp.Ordered]() *PQueue[T, P] {
	return build[T, P](func(a, b entry[T, P]) bool {
		if a.priority != b.priority {
			return a.priority > b.priority
		}
		return a.seq < b.seq
	})
}

func build[T any, P cmp.Ordered](less func(a, b entry[T, P]) bool) *PQueue[T, P] {
	h, _ := heap.New(less) // less is never nil here
	return &PQueue[T, P]{h: h}
}

// Push inserts v with the given priority.
func (q *PQueue[T, P]) Push(v T, priority P) {
	q.h.Push(entry[T, P]{value: v, priority: priority, seq: q.seq})
	q.seq++
}

// Pop removes and returns the best-priority value along with its priority.
// Returns ErrEmptyQueue when the queue is empty.
func (q *PQueue[T, P]) Pop() (T, P, error) {
	e, err := q.h.Pop()
	if err != nil {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}
	return e.value, e.priority, nil
}

// Peek returns the best-priority value and its priority without removal.
// Returns ErrEmptyQueue when the queue is empty.
func (q *PQueue[T, P]) Peek() (T, P, error) {
	e, err := q.h.Peek()
	if err != nil {
		var zeroT T
		var zeroP P
		return zeroT, zeroP, ErrEmptyQueue
	}
	return e.value, e.priority, nil
}

// Len returns the number of queued entries.
func (q *PQueue[T, P]) Len() int { return q.h.Len() }

// IsEmpty reports whether the queue holds no entries.
func (q *PQueue[T, P]) IsEmpty() bool { return q.h.IsEmpty() }
