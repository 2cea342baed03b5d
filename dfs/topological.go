package dfs

import (
	"github.com/adtkit/adtkit/graph"
	"github.com/adtkit/adtkit/pqueue"
)

// Topological returns a topological ordering of a directed acyclic graph:
// for every edge u→v, u precedes v in the result.
//
// Kahn's algorithm: repeatedly emit a vertex with in-degree zero and
// decrement its successors. The ready set is a priority queue keyed by
// vertex ID, so the result is the lexicographically smallest valid order.
//
// Returns ErrGraphNil, ErrNotDirected for an undirected graph, or
// ErrCycleDetected when vertices remain with positive in-degree.
func Topological(g *graph.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	vertices := g.Vertices()
	inDegree := make(map[string]int, len(vertices))
	for _, v := range vertices {
		inDegree[v] = 0
	}
	for _, e := range g.Edges() {
		inDegree[e.To]++
	}

	ready := pqueue.New[string, string]()
	for _, v := range vertices {
		if inDegree[v] == 0 {
			ready.Push(v, v)
		}
	}

	order := make([]string, 0, len(vertices))
	for !ready.IsEmpty() {
		v, _, _ := ready.Pop() // non-empty by loop condition
		order = append(order, v)

		// Per-edge decrement: parallel edges carry multiple in-degrees.
		edges, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			inDegree[e.To]--
			if inDegree[e.To] == 0 {
				ready.Push(e.To, e.To)
			}
		}
	}

	if len(order) < len(vertices) {
		return nil, ErrCycleDetected
	}
	return order, nil
}
