package point_test

import (
	"fmt"
	"math"

	"github.com/adtkit/adtkit/point"
)

// ExampleEqual shows that equality is representation-independent:
// the point (1,1) built from rectangular coordinates matches the
// same point built from polar coordinates.
func ExampleEqual() {
	c := point.NewCartesian(1, 1)
	p := point.NewPolar(math.Sqrt2, math.Pi/4)

	fmt.Println(point.Equal(c, p))
	fmt.Printf("%.4f\n", point.Distance(point.NewCartesian(0, 0), c))
	// Output:
	// true
	// 1.4142
}
