package transform

import "errors"

var (
	// ErrZeroScale indicates A or B is zero, so the transform collapses to a
	// constant (A) or ignores its input (B) and has no inverse.
	ErrZeroScale = errors.New("transform: zero scale")

	// ErrNonFinite indicates a NaN or ±Inf affine parameter.
	ErrNonFinite = errors.New("transform: NaN or Inf parameter")
)
