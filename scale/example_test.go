package scale_test

import (
	"fmt"

	"github.com/katalvlaran/lvcurve/scale"
)

// ExampleScale interpolates a quarter of the way along [0,10].
func ExampleScale() {
	fmt.Println(scale.Scale(0, 10, 0.25))
	// Output: 2.5
}

// ExampleExtrapolate recovers the upper bound of a range from its lower
// bound and a point 1% of the way up.
func ExampleExtrapolate() {
	fmt.Printf("%.2f\n", scale.Extrapolate(0, 0.01, 0.01))
	// Output: 1.00
}
