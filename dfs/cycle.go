package dfs

import "github.com/adtkit/adtkit/graph"

// Vertex coloring for directed cycle detection.
const (
	white = iota // unvisited
	gray         // on the current DFS path
	black        // fully explored
)

// HasCycle reports whether g contains a cycle.
//
// Directed graphs use three-color DFS: an edge into a gray vertex is a
// back edge, hence a cycle. Undirected graphs use DFS that skips only
// the edge it arrived over: any other edge reaching a visited vertex
// closes a cycle, so parallel edges between two vertices count.
// Self-loops count as cycles in both modes.
// Returns ErrGraphNil for a nil graph.
func HasCycle(g *graph.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.Directed() {
		return hasDirectedCycle(g)
	}
	return hasUndirectedCycle(g)
}

func hasDirectedCycle(g *graph.Graph) (bool, error) {
	color := make(map[string]int, g.VertexCount())

	var visit func(id string) (bool, error)
	visit = func(id string) (bool, error) {
		color[id] = gray
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return false, err
		}
		for _, nbr := range neighbors {
			switch color[nbr] {
			case gray:
				return true, nil
			case white:
				if found, err := visit(nbr); err != nil || found {
					return found, err
				}
			}
		}
		color[id] = black
		return false, nil
	}

	for _, v := range g.Vertices() {
		// A self-loop is a cycle regardless of coloring.
		if g.HasEdge(v, v) {
			return true, nil
		}
		if color[v] == white {
			if found, err := visit(v); err != nil || found {
				return found, err
			}
		}
	}
	return false, nil
}

func hasUndirectedCycle(g *graph.Graph) (bool, error) {
	visited := make(map[string]bool, g.VertexCount())

	// Walk edges, not neighbor IDs: skipping only the single edge we
	// arrived over lets a parallel edge back to the parent close a
	// cycle, which a vertex-level parent skip would miss.
	var visit func(id, arrivedBy string) (bool, error)
	visit = func(id, arrivedBy string) (bool, error) {
		visited[id] = true
		edges, err := g.Neighbors(id)
		if err != nil {
			return false, err
		}
		for _, e := range edges {
			if e.ID == arrivedBy {
				continue
			}
			if visited[e.To] {
				return true, nil
			}
			if found, err := visit(e.To, e.ID); err != nil || found {
				return found, err
			}
		}
		return false, nil
	}

	for _, v := range g.Vertices() {
		if g.HasEdge(v, v) {
			return true, nil
		}
		if !visited[v] {
			if found, err := visit(v, ""); err != nil || found {
				return found, err
			}
		}
	}
	return false, nil
}
