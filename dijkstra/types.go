package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for vertices no path reaches.
const Unreachable = int64(math.MaxInt64)

// Sentinel errors returned by Dijkstra.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrNotWeighted is returned for graphs without weighted edges;
	// use bfs for unweighted shortest paths.
	ErrNotWeighted = errors.New("dijkstra: graph must be weighted")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("dijkstra: source vertex not found")

	// ErrNegativeWeight is returned when any edge weight is negative.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight")
)

// Option configures Dijkstra via functional arguments.
type Option func(*Options)

// Options holds parameters customizing a Dijkstra run.
type Options struct {
	// MaxDistance caps exploration: vertices whose settled distance
	// would exceed it stay Unreachable. Default: no cap.
	MaxDistance int64

	// err records an invalid option, surfaced by Dijkstra.
	err error
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: Unreachable}
}

// ErrOptionViolation is returned when an option holds an invalid value.
var ErrOptionViolation = errors.New("dijkstra: option violation")

// WithMaxDistance caps how far the search settles vertices.
// Negative values are rejected with ErrOptionViolation.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = errors.Join(o.err, ErrOptionViolation)
			return
		}
		o.MaxDistance = max
	}
}

// Result holds the outcome of one Dijkstra run.
type Result struct {
	// Dist maps each vertex to its shortest distance from the source,
	// or Unreachable when no path exists.
	Dist map[string]int64

	// Parent maps each reached vertex (except the source) to its
	// predecessor on a shortest path.
	Parent map[string]string

	source string
}

// PathTo reconstructs a shortest path from the source to id, inclusive.
// Returns nil when id was never reached.
func (r *Result) PathTo(id string) []string {
	if d, ok := r.Dist[id]; !ok || d == Unreachable {
		return nil
	}
	var rev []string
	for at := id; ; {
		rev = append(rev, at)
		if at == r.source {
			break
		}
		at = r.Parent[at]
	}
	path := make([]string, len(rev))
	for i, v := range rev {
		path[len(rev)-1-i] = v
	}
	return path
}
