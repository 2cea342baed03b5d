// Package bst implements an unbalanced binary search tree keyed by any
// naturally ordered type, with the four classic traversal orders.
//
// What
//
//   - Tree[K, V]: Insert (upsert), Get, Has, Delete, Min, Max, Len,
//     Height over nodes obeying the search invariant.
//   - Traversals as range-over-func iterators yielding (key, value):
//     InOrder (ascending by key), PreOrder (node before children),
//     PostOrder (children before node), LevelOrder (breadth-first,
//     driven by the adtkit queue package).
//   - Delete handles all three textbook cases: leaf, one child, and two
//     children via the in-order successor.
//
// Invariant
//
//	For every node n: every key in n's left subtree < n's key < every key
//	in n's right subtree. Holds before and after every exported operation,
//	so InOrder always yields strictly ascending keys.
//
// Why
//
//   - The gateway tree structure: ordered iteration, O(h) search, and the
//     deletion-by-successor argument that every later balanced tree
//     refines.
//
// Errors
//
//   - ErrKeyNotFound — Get or Delete of an absent key.
//   - ErrEmptyTree   — Min or Max on an empty tree.
//
// Complexity: Get/Insert/Delete/Min/Max are O(h) where h is the height
// (O(log n) on random input, O(n) degenerate); traversals are O(n);
// Height is O(n). Memory: O(n) nodes.
package bst
