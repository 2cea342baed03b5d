package mst

import "errors"

// Sentinel errors shared by Kruskal and Prim.
var (
	// ErrInvalidGraph is returned when the graph is nil, directed, or
	// unweighted; a minimum spanning tree is defined on neither.
	ErrInvalidGraph = errors.New("mst: requires an undirected, weighted graph")

	// ErrEmptyRoot is returned by Prim when the root ID is empty.
	ErrEmptyRoot = errors.New("mst: empty root vertex")

	// ErrRootNotFound is returned by Prim when root is absent.
	ErrRootNotFound = errors.New("mst: root vertex not found")

	// ErrDisconnected is returned when no tree spans every vertex.
	ErrDisconnected = errors.New("mst: graph is disconnected")
)
