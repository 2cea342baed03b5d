package point

import "math"

// Epsilon is the distance below which two points are considered equal.
const Epsilon = 1e-15

// Point2D is the abstract 2-D point type. Implementations may store the
// point in any coordinate system as long as the accessors agree.
type Point2D interface {
	// X returns the horizontal component.
	X() float64
	// Y returns the vertical component.
	Y() float64
	// Abs returns the distance to the origin (the magnitude).
	Abs() float64
	// Angle returns the angle to the positive x-axis, in radians.
	Angle() float64
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point2D) float64 {
	dx := a.X() - b.X()
	dy := a.Y() - b.Y()
	return math.Hypot(dx, dy)
}

// Equal reports whether a and b denote the same point, i.e. their distance
// is below Epsilon. Representation does not matter: a Polar and a Cartesian
// at the same location compare equal.
func Equal(a, b Point2D) bool {
	return Distance(a, b) < Epsilon
}

// Cartesian is a Point2D stored as rectangular coordinates.
type Cartesian struct {
	x, y float64
}

// NewCartesian returns the point (x, y).
func NewCartesian(x, y float64) Cartesian {
	return Cartesian{x: x, y: y}
}

// X returns the stored horizontal component.
func (c Cartesian) X() float64 { return c.x }

// Y returns the stored vertical component.
func (c Cartesian) Y() float64 { return c.y }

// Abs returns √(x²+y²).
func (c Cartesian) Abs() float64 { return math.Hypot(c.x, c.y) }

// Angle returns atan2(y, x).
func (c Cartesian) Angle() float64 { return math.Atan2(c.y, c.x) }

// Polar is a Point2D stored as a radius and an angle (radians).
type Polar struct {
	r, theta float64
}

// NewPolar returns the point at radius r and angle theta.
func NewPolar(r, theta float64) Polar {
	return Polar{r: r, theta: theta}
}

// X derives r·cos(θ).
func (p Polar) X() float64 { return p.r * math.Cos(p.theta) }

// Y derives r·sin(θ).
func (p Polar) Y() float64 { return p.r * math.Sin(p.theta) }

// Abs returns the stored radius.
func (p Polar) Abs() float64 { return p.r }

// Angle returns the stored angle.
func (p Polar) Angle() float64 { return p.theta }
