// Package point models an abstract 2-D point as an interface with
// interchangeable concrete representations.
//
// What
//
//   - Point2D: the abstract type — X(), Y(), Abs() (distance to the
//     origin) and Angle() (angle to the positive x-axis, radians).
//   - Cartesian: stores (x, y) directly.
//   - Polar: stores (r, θ) and derives x = r·cosθ, y = r·sinθ.
//   - Distance(a, b): Euclidean distance between any two Point2D values.
//   - Equal(a, b): representation-independent equality — two points are
//     equal when their distance is below Epsilon (1e-15).
//
// Why
//
//   - The classic abstract-data-type exercise: callers program against the
//     operations, not the storage. A Polar and a Cartesian describing the
//     same location are Equal even though their fields differ.
//
// Usage
//
//	c := point.NewCartesian(1, 1)
//	p := point.NewPolar(math.Sqrt2, math.Pi/4)
//	point.Equal(c, p) // true
//
// Complexity: every operation is O(1).
package point
