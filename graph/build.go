package graph

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTooFewVertices is returned by the topology constructors below when
// n is smaller than the shape requires.
var ErrTooFewVertices = errors.New("graph: too few vertices")

// vertexID names generated vertices v0, v1, ... deterministically.
func vertexID(i int) string { return "v" + strconv.Itoa(i) }

// defaultWeight is used by constructors on weighted graphs.
func defaultWeight(g *Graph) int64 {
	if g.Weighted() {
		return 1
	}
	return 0
}

// Path builds the path graph P_n: v0-v1-...-v(n-1). Requires n >= 2.
// Weighted graphs get unit weights.
func Path(n int, opts ...Option) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: path needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	g := New(opts...)
	w := defaultWeight(g)
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(vertexID(i-1), vertexID(i), w); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Cycle builds the cycle graph C_n: a path closed back to v0.
// Requires n >= 3.
func Cycle(n int, opts ...Option) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs n >= 3, got %d", ErrTooFewVertices, n)
	}
	g, err := Path(n, opts...)
	if err != nil {
		return nil, err
	}
	if _, err := g.AddEdge(vertexID(n-1), vertexID(0), defaultWeight(g)); err != nil {
		return nil, err
	}
	return g, nil
}

// Complete builds K_n with one edge between every vertex pair.
// Requires n >= 2. On directed graphs each pair gets both directions.
func Complete(n int, opts ...Option) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: complete graph needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	g := New(opts...)
	w := defaultWeight(g)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(vertexID(i), vertexID(j), w); err != nil {
				return nil, err
			}
			if g.Directed() {
				if _, err := g.AddEdge(vertexID(j), vertexID(i), w); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// Star builds the star S_n: v0 in the center joined to n-1 leaves.
// Requires n >= 2.
func Star(n int, opts ...Option) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: star needs n >= 2, got %d", ErrTooFewVertices, n)
	}
	g := New(opts...)
	w := defaultWeight(g)
	for i := 1; i < n; i++ {
		if _, err := g.AddEdge(vertexID(0), vertexID(i), w); err != nil {
			return nil, err
		}
	}
	return g, nil
}
