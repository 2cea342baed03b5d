package list

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors for list operations.
var (
	// ErrEmptyList indicates PopFront was called on an empty list.
	ErrEmptyList = errors.New("list: empty list")

	// ErrIndexOutOfRange indicates an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("list: index out of range")
)

// node is a single cell of the chain.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a generic singly-linked list. The zero value is NOT ready to
// use; construct with New.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// PushFront prepends v as the new head.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends v after the current tail.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the head element.
// Returns ErrEmptyList when the list is empty.
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--
	return n.value, nil
}

// Get returns the element at position i (0-based).
// Returns ErrIndexOutOfRange if i is outside [0, Len).
func (l *List[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.size)
	}
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n.value, nil
}

// Remove deletes and returns the element at position i (0-based).
// Returns ErrIndexOutOfRange if i is outside [0, Len).
func (l *List[T]) Remove(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.size)
	}
	if i == 0 {
		return l.PopFront()
	}
	prev := l.head
	for ; i > 1; i-- {
		prev = prev.next
	}
	n := prev.next
	prev.next = n.next
	if n == l.tail {
		l.tail = prev
	}
	l.size--
	return n.value, nil
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Clear unlinks every node.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Reverse relinks the chain so the last element becomes the head.
// O(n) time, O(1) extra memory.
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.head
	l.tail = l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// Values iterates the elements front→back.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// All iterates (index, value) pairs front→back.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for n := l.head; n != nil; n = n.next {
			if !yield(i, n.value) {
				return
			}
			i++
		}
	}
}
