package transform

import "math"

// Func is a real-valued function of one real variable.
type Func func(float64) float64

// Params holds the four affine constants of g(x) = A·f(B·(x − H)) + D.
type Params struct {
	A float64 // vertical scale
	B float64 // horizontal scale
	H float64 // horizontal shift
	D float64 // vertical shift
}

// Identity returns the parameters that leave a function unchanged.
func Identity() Params {
	return Params{A: 1, B: 1, H: 0, D: 0}
}

// Tanh is the hyperbolic tangent as a Func. Odd, strictly increasing,
// range (−1, 1).
var Tanh Func = math.Tanh

// Atanh is the inverse hyperbolic tangent as a Func. Defined on (−1, 1);
// returns ±Inf at ±1 and NaN beyond.
var Atanh Func = math.Atanh
