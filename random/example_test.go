package random_test

import (
	"fmt"

	"github.com/katalvlaran/lvcurve/random"
)

// ExampleNew draws a few values from [-10, 10) with a fixed seed. Bounds
// may be passed in either order.
func ExampleNew() {
	u, err := random.New(10, -10, random.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	lo, hi := u.Bounds()
	fmt.Println(lo, hi)

	next := u.Generator()
	inRange := true
	for i := 0; i < 5; i++ {
		if v := next(); v < lo || v >= hi {
			inRange = false
		}
	}
	fmt.Println(inRange)
	// Output:
	// -10 10
	// true
}
