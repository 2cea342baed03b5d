package mst

import (
	"github.com/adtkit/adtkit/graph"
	"github.com/adtkit/adtkit/sorting"
	"github.com/adtkit/adtkit/unionfind"
)

// Kruskal computes the minimum spanning tree of g.
//
// Edges are sorted by ascending weight with a stable merge sort, so
// equal weights resolve in insertion order, then joined through a
// disjoint-set union until V-1 edges are accepted.
//
// Returns the tree edges, their total weight, and ErrInvalidGraph or
// ErrDisconnected on bad input. An empty graph yields an empty tree.
func Kruskal(g *graph.Graph) ([]graph.Edge, int64, error) {
	if g == nil || g.Directed() || !g.Weighted() {
		return nil, 0, ErrInvalidGraph
	}

	vertices := g.Vertices()
	if len(vertices) <= 1 {
		return []graph.Edge{}, 0, nil
	}

	// Self-loops can never join two components.
	all := g.Edges()
	edges := make([]graph.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}
	sorting.MergeFunc(edges, func(a, b graph.Edge) bool {
		return a.Weight < b.Weight
	})

	dsu := unionfind.New[string]()
	for _, v := range vertices {
		dsu.MakeSet(v)
	}

	tree := make([]graph.Edge, 0, len(vertices)-1)
	var total int64
	for _, e := range edges {
		linked, err := dsu.Connected(e.From, e.To)
		if err != nil {
			return nil, 0, err
		}
		if linked {
			continue
		}
		if err := dsu.Union(e.From, e.To); err != nil {
			return nil, 0, err
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == len(vertices)-1 {
			break
		}
	}

	if len(tree) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}
