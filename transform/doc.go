// Package transform composes a scalar function with affine pre- and
// post-transforms:
//
//	g(x) = A · f(B · (x − H)) + D
//
// A scales vertically, D shifts vertically, B scales horizontally and H
// shifts horizontally. Params{A:1, B:1, H:0, D:0} (see Identity) leaves f
// unchanged.
//
// Inverse pairs:
//
//	If f has an inverse f⁻¹, then Transform(f⁻¹, p.Inverse()) is the inverse
//	of Transform(f, p): the roles of scale and shift swap between the two
//	axes and both scales are reciprocated.
//
// Usage:
//
//	import "github.com/katalvlaran/lvcurve/transform"
//
//	p := transform.Params{A: 0.5, B: 0.1, H: 50, D: 0.5}
//	g := transform.Transform(transform.Tanh, p)
//	gInv := transform.Transform(transform.Atanh, p.Inverse())
//
// All returned functions are pure closures over copied parameters and are
// safe for concurrent use.
package transform
