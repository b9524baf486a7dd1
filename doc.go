// Package lvcurve shapes values along hyperbolic-tangent curves and draws
// bounded uniform random numbers. Small, pure building blocks for
// animation easing, difficulty ramps and other "smoothly get from here to
// there" problems.
//
// 🚀 What is lvcurve?
//
//	Pick where a transition should appear to start and end on the x axis,
//	pin any two of its four vertical reference levels, and lvcurve derives
//	the unique a·tanh(b·(x − h)) + d passing through them.
//
// Under the hood, everything is organized under four subpackages:
//
//	curve/     vertical handles, the parameter solver and the immutable Curve
//	transform/ affine pre/post transforms of any scalar function, and inverses
//	scale/     linear interpolation, fraction solving and endpoint extrapolation
//	random/    bounded uniform generators over an explicit seeded source
//
// ✨ Guarantees:
//
//   - Eager construction: every invalid input is an error from curve.New,
//     never a panic or a half-built curve.
//   - Immutable curves: safe to share across goroutines.
//   - Deterministic randomness: no hidden global or time-based seeds.
//
// Quick example:
//
//	c, _ := curve.New(0, 100) // LeftLimit(0), RightLimit(1), inset 1%
//	c.Apply(0)   // ≈ 0.01
//	c.Apply(100) // ≈ 0.99
//
//	go get github.com/katalvlaran/lvcurve
package lvcurve
