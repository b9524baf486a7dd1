package transform

import (
	"fmt"
	"math"
)

// Transform returns g(x) = p.A·f(p.B·(x − p.H)) + p.D.
//
// Params are copied into the closure; later changes to p do not affect g.
// Transform never fails: any real-valued f composes with any affine
// parameters. Use Params.Validate first when invertibility matters.
//
// Complexity: O(1) to build, one call of f per evaluation.
func Transform(f Func, p Params) Func {
	a, b, h, d := p.A, p.B, p.H, p.D

	return func(x float64) float64 {
		return a*f(b*(x-h)) + d
	}
}

// Inverse returns the parameters of the inverse transform.
//
// For y = A·f(B·(x − H)) + D solved for x:
//
//	x = (1/B)·f⁻¹((1/A)·(y − D)) + H
//
// which is Params{A: 1/B, B: 1/A, H: D, D: H}. Zero scales produce ±Inf
// entries; call Validate first.
func (p Params) Inverse() Params {
	return Params{A: 1 / p.B, B: 1 / p.A, H: p.D, D: p.H}
}

// Validate reports whether p describes an invertible transform.
//
// Errors:
//   - ErrNonFinite when any field is NaN or ±Inf.
//   - ErrZeroScale when A or B is zero.
func (p Params) Validate() error {
	for _, v := range [...]float64{p.A, p.B, p.H, p.D} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Validate(%v): %w", p, ErrNonFinite)
		}
	}
	if p.A == 0 || p.B == 0 {
		return fmt.Errorf("Validate(%v): %w", p, ErrZeroScale)
	}

	return nil
}

// String renders the transform as a formula over f.
func (p Params) String() string {
	return fmt.Sprintf("%g·f(%g·(x − %g)) + %g", p.A, p.B, p.H, p.D)
}

// Compose returns the function applying fs in order, left to right:
// Compose(f, g)(x) == g(f(x)). With no arguments it returns the identity.
func Compose(fs ...Func) Func {
	chain := append([]Func(nil), fs...)

	return func(x float64) float64 {
		for _, f := range chain {
			x = f(x)
		}
		return x
	}
}
