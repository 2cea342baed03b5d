package dijkstra

import (
	"fmt"

	"github.com/adtkit/adtkit/graph"
	"github.com/adtkit/adtkit/pqueue"
)

// Dijkstra computes shortest distances from source to every vertex of
// the weighted graph g.
//
// Validation order: nil graph, option violations, weighted flag,
// source presence, then a full edge scan for negative weights.
func Dijkstra(g *graph.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Weighted() {
		return nil, ErrNotWeighted
	}
	if !g.HasVertex(source) {
		return nil, ErrSourceNotFound
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s->%s weight=%d",
				ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	res := &Result{
		Dist:   make(map[string]int64, len(vertices)),
		Parent: make(map[string]string, len(vertices)),
		source: source,
	}
	for _, v := range vertices {
		res.Dist[v] = Unreachable
	}
	res.Dist[source] = 0

	settled := make(map[string]bool, len(vertices))
	pq := pqueue.New[string, int64]()
	pq.Push(source, 0)

	for !pq.IsEmpty() {
		u, d, _ := pq.Pop() // non-empty by loop condition
		if settled[u] {
			continue // stale entry from lazy decrease-key
		}
		settled[u] = true

		edges, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
		}
		for _, e := range edges {
			if settled[e.To] {
				continue
			}
			// Beyond-cap relaxations never happen, so vertices past
			// MaxDistance keep Unreachable instead of a tentative
			// distance. The same bound keeps d+e.Weight inside int64.
			if e.Weight > o.MaxDistance-d {
				continue
			}
			nd := d + e.Weight
			if nd < res.Dist[e.To] {
				res.Dist[e.To] = nd
				res.Parent[e.To] = u
				pq.Push(e.To, nd)
			}
		}
	}
	return res, nil
}
