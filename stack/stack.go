package stack

import (
	"errors"
	"iter"
)

// Sentinel errors for stack operations.
var (
	// ErrEmptyStack indicates Pop or Peek was called on an empty stack.
	ErrEmptyStack = errors.New("stack: empty stack")

	// ErrStackFull indicates Push was called on a bounded stack at capacity.
	ErrStackFull = errors.New("stack: stack is full")
)

// Option configures a Stack before first use.
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

// WithMaxSize bounds the stack at n elements; Push beyond the bound
// returns ErrStackFull. Values below 1 leave the stack unbounded.
func WithMaxSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

// Stack is a generic LIFO container. The zero value is NOT ready to use;
// construct with New.
type Stack[T any] struct {
	items   []T
	maxSize int // 0 = unbounded
}

// New returns an empty Stack configured by opts.
func New[T any](opts ...Option) *Stack[T] {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return &Stack[T]{
		items:   make([]T, 0, c.capacity),
		maxSize: c.maxSize,
	}
}

// Push places v on top of the stack.
// Returns ErrStackFull if the stack is bounded and already full.
func (s *Stack[T]) Push(v T) error {
	if s.maxSize > 0 && len(s.items) == s.maxSize {
		return ErrStackFull
	}
	s.items = append(s.items, v)
	return nil
}

// Pop removes and returns the top element.
// Returns ErrEmptyStack when the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmptyStack
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero // release the reference
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Peek returns the top element without removing it.
// Returns ErrEmptyStack when the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmptyStack
	}
	return s.items[len(s.items)-1], nil
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear discards every element, keeping the allocated capacity.
func (s *Stack[T]) Clear() {
	var zero T
	for i := range s.items {
		s.items[i] = zero
	}
	s.items = s.items[:0]
}

// All iterates the elements from top to bottom without mutating the stack.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}
