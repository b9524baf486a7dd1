package random

import "errors"

// ErrNonFinite indicates a NaN or ±Inf bound, or bounds whose span
// overflows float64.
var ErrNonFinite = errors.New("random: non-finite bounds")
