// Package stack provides a generic LIFO stack backed by a slice.
//
// What
//
//   - Stack[T]: Push, Pop, Peek, Len, IsEmpty, Clear.
//   - Strict LIFO contract: Pop returns values in reverse insertion order.
//   - Optional bound via WithMaxSize; a full bounded stack rejects Push
//     with ErrStackFull.
//   - All() iterates the stack top→bottom without mutating it.
//
// Why
//
//   - The first container of every algorithms course, and the backing
//     store for iterative DFS, expression evaluation, and undo logs.
//
// Errors
//
//   - ErrEmptyStack — Pop or Peek on an empty stack.
//   - ErrStackFull  — Push onto a bounded stack at capacity.
//
// Usage
//
//	s := stack.New[int]()
//	s.Push(1)
//	s.Push(2)
//	v, _ := s.Pop() // 2
//
// Complexity: Push is amortized O(1) (slice growth), Pop/Peek/Len are
// O(1), All is O(n). Memory: O(n).
package stack
