package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS and its derived algorithms.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrNotDirected is returned by Topological on an undirected graph.
	ErrNotDirected = errors.New("dfs: topological sort requires a directed graph")

	// ErrCycleDetected is returned by Topological when no ordering exists.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks customizing a DFS run.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit runs at vertex discovery (pre-order); a returned error
	// aborts the traversal.
	OnVisit func(id string, depth int) error

	// FullTraversal restarts DFS from every unvisited vertex (ascending
	// by ID) after the start vertex's component is exhausted, covering
	// disconnected graphs.
	FullTraversal bool
}

// DefaultOptions returns Options with background context, a no-op visit
// hook, and single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a discovery callback; returning an error aborts
// the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFullTraversal extends the search across disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal.
type Result struct {
	// Order lists vertices in discovery (pre-order) sequence.
	Order []string

	// Depth maps each reached vertex to its depth in the DFS tree.
	Depth map[string]int

	// Parent maps each reached vertex to its discoverer; roots have no entry.
	Parent map[string]string

	// Visited marks every vertex reached by the traversal.
	Visited map[string]bool
}
