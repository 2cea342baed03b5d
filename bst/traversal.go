package bst

import (
	"cmp"
	"iter"

	"github.com/adtkit/adtkit/queue"
)

// InOrder yields (key, value) pairs in ascending key order:
// left subtree, node, right subtree.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return inOrder(n.left, yield) &&
		yield(n.key, n.value) &&
		inOrder(n.right, yield)
}

// PreOrder yields each node before its children: node, left, right.
func (t *Tree[K, V]) PreOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		preOrder(t.root, yield)
	}
}

func preOrder[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.key, n.value) &&
		preOrder(n.left, yield) &&
		preOrder(n.right, yield)
}

// PostOrder yields each node after its children: left, right, node.
func (t *Tree[K, V]) PostOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		postOrder(t.root, yield)
	}
}

func postOrder[K cmp.Ordered, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return postOrder(n.left, yield) &&
		postOrder(n.right, yield) &&
		yield(n.key, n.value)
}

// LevelOrder yields nodes breadth-first, shallowest level first, left to
// right within a level, using a FIFO queue of pending subtrees.
func (t *Tree[K, V]) LevelOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root == nil {
			return
		}
		q := queue.New[*node[K, V]]()
		_ = q.Enqueue(t.root) // unbounded queue never rejects
		for !q.IsEmpty() {
			n, _ := q.Dequeue()
			if !yield(n.key, n.value) {
				return
			}
			if n.left != nil {
				_ = q.Enqueue(n.left)
			}
			if n.right != nil {
				_ = q.Enqueue(n.right)
			}
		}
	}
}
