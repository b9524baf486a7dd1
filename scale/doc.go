// Package scale provides linear interpolation between two bounds and the
// algebraic rearrangements used to solve for an unknown fraction or an
// unknown far endpoint.
//
// What is it for?
//
//	A single line of algebra, v = from + f·(to − from), is used in three
//	directions across lvcurve:
//	  • Scale: known bounds and fraction, unknown value (interpolate).
//	  • Fraction: known bounds and value, unknown fraction.
//	  • Extrapolate: known start, interior value and fraction, unknown end.
//
// Fractions outside [0,1] are legal everywhere and extrapolate beyond the
// bounds. None of the functions return errors: a zero span or a zero fraction
// yields ±Inf or NaN and callers are expected to validate their inputs first.
//
// Usage:
//
//	import "github.com/katalvlaran/lvcurve/scale"
//
//	v := scale.Scale(0, 10, 0.25)         // 2.5
//	f := scale.Fraction(0, 10, 2.5)       // 0.25
//	to := scale.Extrapolate(0, 2.5, 0.25) // 10
//
// Complexity: O(1) time and space for every function.
package scale
