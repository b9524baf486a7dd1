package scale

import "math"

// Scale returns the value lying the given fraction of the way from 'from'
// to 'to': from + fraction·(to − from).
//
// fraction=0 yields from, fraction=1 yields to. Values outside [0,1]
// extrapolate linearly past the bounds.
//
// Complexity: O(1).
func Scale(from, to, fraction float64) float64 {
	return from + fraction*(to-from)
}

// Fraction solves Scale(from, to, f) = value for f.
//
// Returns NaN when from == to, since every fraction (or none) satisfies
// the equation on a zero span.
//
// Complexity: O(1).
func Fraction(from, to, value float64) float64 {
	if from == to {
		return math.NaN()
	}

	return (value - from) / (to - from)
}

// Extrapolate solves Scale(from, to, fraction) = at for the unknown far
// endpoint 'to': from + (at − from)/fraction.
//
// It recovers a bound from one known bound, one interior point and the
// fraction at which that interior point sits. fraction == 0 divides by zero
// and yields ±Inf (or NaN when at == from).
//
// Complexity: O(1).
func Extrapolate(from, at, fraction float64) float64 {
	return from + (at-from)/fraction
}
