package transform_test

import (
	"fmt"

	"github.com/katalvlaran/lvcurve/transform"
)

// ExampleTransform stretches tanh over [0,1] vertically and centres it at x=50.
func ExampleTransform() {
	p := transform.Params{A: 0.5, B: 0.1, H: 50, D: 0.5}
	g := transform.Transform(transform.Tanh, p)
	inv := transform.Transform(transform.Atanh, p.Inverse())

	fmt.Printf("g(50)=%.2f\n", g(50))
	fmt.Printf("inv(g(60))=%.2f\n", inv(g(60)))
	// Output:
	// g(50)=0.50
	// inv(g(60))=60.00
}
