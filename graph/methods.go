package graph

import (
	"fmt"
	"sort"
	"strconv"
)

// AddVertex registers id as a vertex. Adding an existing vertex is a
// no-op. Returns ErrEmptyVertexID for an empty ID.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = struct{}{}
	return nil
}

// HasVertex reports whether id is a registered vertex.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]
	return ok
}

// RemoveVertex deletes id and every edge incident to it.
// Returns ErrVertexNotFound if id is not registered.
func (g *Graph) RemoveVertex(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[id]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	for edgeID, e := range g.edges {
		if e.From == id || e.To == id {
			g.unlinkEdge(edgeID, e)
		}
	}
	delete(g.vertices, id)
	delete(g.adjacency, id)
	return nil
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// AddEdge links from→to with the given weight, auto-registering both
// endpoints, and returns the new edge's ID. On undirected graphs the edge
// is traversable in both directions.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed or
// ErrMultiEdgeNotAllowed when the edge violates the graph's policy.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight != 0 && !g.weighted {
		return "", fmt.Errorf("%w: %d on %s→%s", ErrBadWeight, weight, from, to)
	}
	if from == to && !g.allowLoops {
		return "", fmt.Errorf("%w: %s", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, from, to)
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	g.nextEdgeID++
	id := "e" + strconv.FormatUint(g.nextEdgeID, 10)
	g.edges[id] = &Edge{ID: id, From: from, To: to, Weight: weight}

	g.link(from, to, id)
	if !g.directed && from != to {
		g.link(to, from, id)
	}
	return id, nil
}

// RemoveEdge deletes the edge with the given ID.
// Returns ErrEdgeNotFound if no such edge exists.
func (g *Graph) RemoveEdge(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, id)
	}
	g.unlinkEdge(id, e)
	return nil
}

// HasEdge reports whether at least one edge links from→to (in either
// orientation for undirected graphs).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// Edges returns copies of all edges, ordered by ascending numeric ID.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeNum(out[i].ID) < edgeNum(out[j].ID) })
	return out
}

// Neighbors returns copies of the edges leaving id — outgoing edges on a
// directed graph, all incident edges otherwise — ordered by neighbor ID,
// then edge ID. Each returned Edge has From == id.
// Returns ErrVertexNotFound if id is not registered.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	var out []Edge
	for to, ids := range g.adjacency[id] {
		for edgeID := range ids {
			e := *g.edges[edgeID]
			// Normalize the orientation so callers always walk id→to.
			e.From, e.To = id, to
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return edgeNum(out[i].ID) < edgeNum(out[j].ID)
	})
	return out, nil
}

// NeighborIDs returns the distinct vertices reachable from id over a
// single edge, in ascending order.
// Returns ErrVertexNotFound if id is not registered.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, 0, len(g.adjacency[id]))
	for to, ids := range g.adjacency[id] {
		if len(ids) > 0 {
			out = append(out, to)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Clone returns an independent deep copy sharing no storage with g.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		directed:   g.directed,
		weighted:   g.weighted,
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		nextEdgeID: g.nextEdgeID,
		vertices:   make(map[string]struct{}, len(g.vertices)),
		edges:      make(map[string]*Edge, len(g.edges)),
		adjacency:  make(map[string]map[string]map[string]struct{}, len(g.adjacency)),
	}
	for id := range g.vertices {
		c.vertices[id] = struct{}{}
	}
	for id, e := range g.edges {
		cp := *e
		c.edges[id] = &cp
	}
	for from, tos := range g.adjacency {
		c.adjacency[from] = make(map[string]map[string]struct{}, len(tos))
		for to, ids := range tos {
			set := make(map[string]struct{}, len(ids))
			for edgeID := range ids {
				set[edgeID] = struct{}{}
			}
			c.adjacency[from][to] = set
		}
	}
	return c
}

// link records edgeID under adjacency[from][to]. Caller holds mu.
func (g *Graph) link(from, to, edgeID string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
	g.adjacency[from][to][edgeID] = struct{}{}
}

// unlinkEdge removes edge id from both the edge map and the adjacency
// index in both orientations. Caller holds mu.
func (g *Graph) unlinkEdge(id string, e *Edge) {
	delete(g.edges, id)
	if set := g.adjacency[e.From][e.To]; set != nil {
		delete(set, id)
		if len(set) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	if set := g.adjacency[e.To][e.From]; set != nil {
		delete(set, id)
		if len(set) == 0 {
			delete(g.adjacency[e.To], e.From)
		}
	}
}

// edgeNum extracts the numeric suffix of an edge ID for ordering.
func edgeNum(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}
