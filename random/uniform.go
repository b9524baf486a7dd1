package random

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform draws values uniformly from [lo, hi).
type Uniform struct {
	dist distuv.Uniform
}

// New returns a generator over the interval spanned by from and to. The
// bounds may be given in either order. Equal bounds are allowed and every
// draw then returns that value.
//
// Errors:
//   - ErrNonFinite when a bound is NaN or ±Inf, or hi − lo overflows.
func New(from, to float64, opts ...Option) (*Uniform, error) {
	if isNonFinite(from) || isNonFinite(to) {
		return nil, fmt.Errorf("New(%g, %g): %w", from, to, ErrNonFinite)
	}
	lo, hi := from, to
	if hi < lo {
		lo, hi = hi, lo
	}
	if isNonFinite(hi - lo) {
		return nil, fmt.Errorf("New(%g, %g): span overflows: %w", from, to, ErrNonFinite)
	}

	cfg := newConfig(opts...)

	return &Uniform{
		dist: distuv.Uniform{Min: lo, Max: hi, Src: cfg.src},
	}, nil
}

// Next returns the next draw in [lo, hi).
func (u *Uniform) Next() float64 {
	v := u.dist.Rand()
	// lo + r·span can round up to hi when r is just below 1.
	if v >= u.dist.Max && u.dist.Max > u.dist.Min {
		v = math.Nextafter(u.dist.Max, u.dist.Min)
	}

	return v
}

// Generator returns Next as a plain function value.
func (u *Uniform) Generator() func() float64 {
	return u.Next
}

// Bounds returns the normalized interval (lo ≤ hi).
func (u *Uniform) Bounds() (lo, hi float64) {
	return u.dist.Min, u.dist.Max
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
