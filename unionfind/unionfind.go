package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates an operation referenced an element that was
// never registered with MakeSet.
var ErrUnknownElement = errors.New("unionfind: unknown element")

// DSU is a disjoint-set forest over comparable elements. The zero value is
// NOT ready to use; construct with New.
type DSU[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	count  int // number of disjoint sets
}

// New returns an empty disjoint-set forest.
func New[T comparable]() *DSU[T] {
	return &DSU[T]{
		parent: make(map[T]T),
		rank:   make(map[T]int),
	}
}

// MakeSet registers x as a singleton set. Registering an existing element
// is a no-op.
func (d *DSU[T]) MakeSet(x T) {
	if _, ok := d.parent[x]; ok {
		return
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.count++
}

// Find returns the representative of x's set, compressing the walked path.
// Returns ErrUnknownElement if x was never registered.
func (d *DSU[T]) Find(x T) (T, error) {
	if _, ok := d.parent[x]; !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrUnknownElement, x)
	}
	return d.find(x), nil
}

// find assumes x is registered.
func (d *DSU[T]) find(x T) T {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Path compression: point every node on the walk straight at the root.
	for d.parent[x] != root {
		x, d.parent[x] = d.parent[x], root
	}
	return root
}

// Union merges the sets containing x and y. Merging an element with its
// own set is a no-op. Returns ErrUnknownElement if either is unregistered.
func (d *DSU[T]) Union(x, y T) error {
	rx, err := d.Find(x)
	if err != nil {
		return err
	}
	ry, err := d.Find(y)
	if err != nil {
		return err
	}
	if rx == ry {
		return nil
	}
	// Union by rank: hang the shallower tree under the deeper root.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.count--
	return nil
}

// Connected reports whether x and y are in the same set.
// Returns ErrUnknownElement if either is unregistered.
func (d *DSU[T]) Connected(x, y T) (bool, error) {
	rx, err := d.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := d.Find(y)
	if err != nil {
		return false, err
	}
	return rx == ry, nil
}

// Count returns the number of disjoint sets.
func (d *DSU[T]) Count() int { return d.count }

// Len returns the number of registered elements.
func (d *DSU[T]) Len() int { return len(d.parent) }
