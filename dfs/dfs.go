package dfs

import (
	"fmt"

	"github.com/adtkit/adtkit/graph"
	"github.com/adtkit/adtkit/stack"
)

// frame is one pending subtree on the traversal stack.
type frame struct {
	id     string
	depth  int
	parent string
}

// DFS runs depth-first search on g from startID. With WithFullTraversal
// the search restarts from every still-unvisited vertex in ascending
// order, so the whole graph is covered.
// Returns ErrGraphNil or ErrStartVertexNotFound on invalid input, the
// context's error on cancellation, or a wrapped OnVisit error.
func DFS(g *graph.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !o.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &Result{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	w := &walker{graph: g, opts: o, res: res}

	if o.FullTraversal {
		roots := g.Vertices()
		// Start from startID's component first when it exists.
		if g.HasVertex(startID) {
			if err := w.explore(startID); err != nil {
				return res, err
			}
		}
		for _, v := range roots {
			if !res.Visited[v] {
				if err := w.explore(v); err != nil {
					return res, err
				}
			}
		}
	} else if err := w.explore(startID); err != nil {
		return res, err
	}
	return res, nil
}

// walker carries the mutable state of one DFS run.
type walker struct {
	graph *graph.Graph
	opts  Options
	res   *Result
}

// explore traverses the component containing root with an explicit stack.
// Neighbors are pushed in reverse sorted order so the smallest ID is
// discovered first, matching the recursive formulation.
func (w *walker) explore(root string) error {
	s := stack.New[frame]()
	_ = s.Push(frame{id: root, depth: 0}) // unbounded stack never rejects

	for !s.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f, _ := s.Pop()
		if w.res.Visited[f.id] {
			continue
		}
		w.res.Visited[f.id] = true
		w.res.Order = append(w.res.Order, f.id)
		w.res.Depth[f.id] = f.depth
		if f.parent != "" {
			w.res.Parent[f.id] = f.parent
		}
		if err := w.opts.OnVisit(f.id, f.depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %q: %w", f.id, err)
		}

		neighbors, err := w.graph.NeighborIDs(f.id)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", f.id, err)
		}
		for i := len(neighbors) - 1; i >= 0; i-- {
			if !w.res.Visited[neighbors[i]] {
				_ = s.Push(frame{id: neighbors[i], depth: f.depth + 1, parent: f.id})
			}
		}
	}
	return nil
}
