// Package graph declares the Graph and Edge types, construction options,
// and sentinel errors. Method implementations live in methods.go.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates an operation was given an empty vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph.
	ErrBadWeight = errors.New("graph: non-zero weight on unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted with loops disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted with
	// multi-edges disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")
)

// Edge is a connection between two vertices. For undirected graphs the
// same edge is reachable from both endpoints under one ID.
type Edge struct {
	// ID uniquely identifies the edge within its Graph ("e1", "e2", …).
	ID string

	// From is the source vertex ID (either endpoint when undirected).
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the edge cost; always 0 on unweighted graphs.
	Weight int64
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected sets edge directedness: true makes every edge one-way
// From→To, false (the default) makes edges bidirectional.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted permits non-zero edge weights.
func WithWeighted() Option {
	return func(g *Graph) { g.weighted = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same pair of vertices.
func WithMultiEdges() Option {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is an in-memory adjacency-list graph. The zero value is NOT ready
// to use; construct with New.
//
// mu guards vertices, edges, adjacency and nextEdgeID together; the
// configuration flags are written only inside New and read freely after.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	weighted   bool
	allowLoops bool
	allowMulti bool

	nextEdgeID uint64

	vertices map[string]struct{}
	edges    map[string]*Edge

	// adjacency[from][to] = set of edge IDs linking from→to.
	// Undirected edges appear under both orientations with the same ID.
	adjacency map[string]map[string]map[string]struct{}
}

// New creates an empty Graph. The default is undirected, unweighted, no
// loops, no multi-edges; options override per concern.
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero edge weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// LoopsAllowed reports whether self-loops are permitted.
func (g *Graph) LoopsAllowed() bool { return g.allowLoops }

// MultiEdgesAllowed reports whether parallel edges are permitted.
func (g *Graph) MultiEdgesAllowed() bool { return g.allowMulti }
