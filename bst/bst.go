package bst

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for tree operations.
var (
	// ErrKeyNotFound indicates Get or Delete of a key that is not present.
	ErrKeyNotFound = errors.New("bst: key not found")

	// ErrEmptyTree indicates Min or Max was called on an empty tree.
	ErrEmptyTree = errors.New("bst: empty tree")
)

// node is a single tree node.
type node[K cmp.Ordered, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
}

// Tree is an unbalanced binary search tree. The zero value is NOT ready to
// use; construct with New.
type Tree[K cmp.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns an empty tree.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{}
}

// Insert stores value under key, replacing any previous value.
func (t *Tree[K, V]) Insert(key K, value V) {
	var inserted bool
	t.root, inserted = insert(t.root, key, value)
	if inserted {
		t.size++
	}
}

func insert[K cmp.Ordered, V any](n *node[K, V], key K, value V) (*node[K, V], bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value}, true
	}
	switch {
	case key < n.key:
		var inserted bool
		n.left, inserted = insert(n.left, key, value)
		return n, inserted
	case key > n.key:
		var inserted bool
		n.right, inserted = insert(n.right, key, value)
		return n, inserted
	default:
		n.value = value
		return n, false
	}
}

// Get returns the value stored under key.
// Returns ErrKeyNotFound if the key is absent.
func (t *Tree[K, V]) Get(key K) (V, error) {
	n := t.root
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.value, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Has reports whether key is present.
func (t *Tree[K, V]) Has(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// Delete removes the entry stored under key.
// Returns ErrKeyNotFound if the key is absent.
func (t *Tree[K, V]) Delete(key K) error {
	root, deleted := remove(t.root, key)
	if !deleted {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	t.root = root
	t.size--
	return nil
}

func remove[K cmp.Ordered, V any](n *node[K, V], key K) (*node[K, V], bool) {
	if n == nil {
		return nil, false
	}
	var deleted bool
	switch {
	case key < n.key:
		n.left, deleted = remove(n.left, key)
		return n, deleted
	case key > n.key:
		n.right, deleted = remove(n.right, key)
		return n, deleted
	}
	// Found the node. Leaf or single child: splice it out.
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}
	// Two children: replace with the in-order successor (leftmost node of
	// the right subtree), then delete the successor from that subtree.
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	n.key = succ.key
	n.value = succ.value
	n.right, _ = remove(n.right, succ.key)
	return n, true
}

// Min returns the smallest key and its value.
// Returns ErrEmptyTree when the tree is empty.
func (t *Tree[K, V]) Min() (K, V, error) {
	if t.root == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, ErrEmptyTree
	}
	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, n.value, nil
}

// Max returns the largest key and its value.
// Returns ErrEmptyTree when the tree is empty.
func (t *Tree[K, V]) Max() (K, V, error) {
	if t.root == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, ErrEmptyTree
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, n.value, nil
}

// Len returns the number of stored entries.
func (t *Tree[K, V]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no entries.
func (t *Tree[K, V]) IsEmpty() bool { return t.size == 0 }

// Height returns the number of nodes on the longest root-to-leaf path:
// 0 for an empty tree, 1 for a single node.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}
