package mst

import (
	"fmt"

	"github.com/adtkit/adtkit/graph"
	"github.com/adtkit/adtkit/pqueue"
)

// Prim computes the minimum spanning tree of g by growing outward from
// root. A min-priority queue keyed by edge weight always yields the
// lightest edge crossing the visited frontier; weight ties resolve in
// push order, keeping the result deterministic.
//
// Returns the tree edges, their total weight, and ErrInvalidGraph,
// ErrEmptyRoot, ErrRootNotFound, or ErrDisconnected on bad input.
func Prim(g *graph.Graph, root string) ([]graph.Edge, int64, error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}
	if root == "" {
		return nil, 0, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, 0, ErrRootNotFound
	}

	n := g.VertexCount()
	if n == 1 {
		return []graph.Edge{}, 0, nil
	}

	visited := make(map[string]bool, n)
	tree := make([]graph.Edge, 0, n-1)
	var total int64

	frontier := pqueue.New[graph.Edge, int64]()
	push := func(from string) error {
		edges, err := g.Neighbors(from)
		if err != nil {
			return fmt.Errorf("mst: neighbors of %q: %w", from, err)
		}
		for _, e := range edges {
			if !visited[e.To] {
				frontier.Push(e, e.Weight)
			}
		}
		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return nil, 0, err
	}

	for !frontier.IsEmpty() && len(tree) < n-1 {
		e, _, _ := frontier.Pop() // non-empty by loop condition
		if visited[e.To] {
			continue // both endpoints already inside, would close a cycle
		}
		visited[e.To] = true
		tree = append(tree, e)
		total += e.Weight
		if err := push(e.To); err != nil {
			return nil, 0, err
		}
	}

	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}
