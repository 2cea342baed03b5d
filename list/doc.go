// Package list provides a generic singly-linked list with head and tail
// pointers and iterator-based traversal.
//
// What
//
//   - List[T]: PushFront, PushBack, PopFront, Get(i), Remove(i), Len,
//     IsEmpty, Clear, Reverse.
//   - Values() yields elements front→back as an iter.Seq; All() yields
//     (index, value) pairs — the generator-traversal idiom, so callers
//     never touch a node pointer.
//   - Reverse relinks the nodes in place in O(n) with O(1) extra memory.
//
// Why
//
//   - The canonical pointer-manipulation exercise: every operation is a
//     small dance of next-pointers, and the tail pointer turns PushBack
//     from O(n) into O(1).
//
// Errors
//
//   - ErrEmptyList       — PopFront on an empty list.
//   - ErrIndexOutOfRange — Get or Remove with an index outside [0, Len).
//
// Complexity: PushFront/PushBack/PopFront are O(1); Get/Remove are O(i);
// Reverse and iteration are O(n). Memory: O(n) nodes.
package list
