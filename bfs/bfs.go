package bfs

import (
	"context"
	"fmt"

	"github.com/adtkit/adtkit/graph"
	"github.com/adtkit/adtkit/queue"
)

// frontierItem pairs a vertex with its BFS depth.
type frontierItem struct {
	id    string
	depth int
}

// walker carries the mutable state of one BFS run.
type walker struct {
	graph    *graph.Graph
	opts     Options
	ctx      context.Context
	frontier *queue.Queue[frontierItem]
	visited  map[string]bool
	res      *Result
}

// BFS runs breadth-first search on g from startID, applying any number of
// functional Options. Returns ErrGraphNil, ErrStartVertexNotFound,
// ErrWeightedGraph or ErrOptionViolation on invalid input, the context's
// error on cancellation, or a wrapped hook error.
func BFS(g *graph.Graph, startID string, opts ...Option) (*Result, error) {
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
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	n := g.VertexCount()
	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: queue.New[frontierItem](queue.WithCapacity(n)),
		visited:  make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(startID, 0, "")
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent, fires
// OnEnqueue, and appends it to the frontier.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	_ = w.frontier.Enqueue(frontierItem{id: id, depth: d}) // unbounded frontier never rejects
}

// loop drains the frontier until empty, error, or cancellation.
func (w *walker) loop() error {
	for !w.frontier.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, _ := w.frontier.Dequeue()
		w.opts.OnDequeue(item.id, item.depth)

		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}
	return nil
}

// visit appends the vertex to Order and fires OnVisit.
func (w *walker) visit(item frontierItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}
	return nil
}

// expand enqueues every unseen neighbor that passes the filter and the
// depth limit.
func (w *walker) expand(item frontierItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}
	return nil
}
