package curve

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvcurve/transform"
)

// Curve is an immutable, fully resolved tanh curve. The zero value is not
// usable; build curves with New.
type Curve struct {
	resolved     Resolved
	apply        transform.Func
	applyInverse transform.Func
}

// New derives the curve that appears to run from `from` to `to`.
//
// Options default to handles LeftLimit(0), RightLimit(1) and inset
// DefaultInset. The forward and inverse closures are built here, once.
//
// Errors:
//   - ErrUnknownRole, ErrDuplicateRole for invalid handle pairs.
//   - ErrDegenerateGeometry for from == to, an inset outside (0, 0.5),
//     coincident limits, misplaced intercepts or non-finite inputs.
//   - ErrInverseOutOfRange, together with ErrDegenerateGeometry, if an
//     intercept lands on or outside tanh's range.
func New(from, to float64, opts ...Option) (*Curve, error) {
	cfg := newConfig(opts...)

	r, err := solve(from, to, cfg)
	if err != nil {
		return nil, fmt.Errorf("curve.New(%g, %g): %w", from, to, err)
	}

	return &Curve{
		resolved:     r,
		apply:        transform.Transform(transform.Tanh, r.Params),
		applyInverse: transform.Transform(transform.Atanh, r.Params.Inverse()),
	}, nil
}

// Must returns c or panics on err. Intended for package-level curve tables
// whose inputs are constants.
func Must(c *Curve, err error) *Curve {
	if err != nil {
		panic(err)
	}
	return c
}

// Apply evaluates the curve at x.
func (c *Curve) Apply(x float64) float64 { return c.apply(x) }

// ApplyInverse returns the x at which the curve takes value y. y must lie
// strictly between the two limits; otherwise the result is ±Inf or NaN.
func (c *Curve) ApplyInverse(y float64) float64 { return c.applyInverse(y) }

// Func returns the curve as a standalone function, for storing or composing
// with transform.Compose.
func (c *Curve) Func() transform.Func { return c.apply }

// InverseFunc returns the inverse curve as a standalone function.
func (c *Curve) InverseFunc() transform.Func { return c.applyInverse }

// Resolved returns a copy of the derived description.
func (c *Curve) Resolved() Resolved { return c.resolved }

// Params returns the affine constants of a·tanh(b·(x − h)) + d.
func (c *Curve) Params() transform.Params { return c.resolved.Params }

// Inset, Start, End and the four level accessors read single fields of
// Resolved.
func (c *Curve) Inset() float64 { return c.resolved.Inset }
func (c *Curve) Start() Point { return c.resolved.Start }
func (c *Curve) End() Point { return c.resolved.End }
func (c *Curve) LeftLimit() float64 { return c.resolved.LeftLimit }
func (c *Curve) LeftIntercept() float64 { return c.resolved.LeftIntercept }
func (c *Curve) RightIntercept() float64 { return c.resolved.RightIntercept }
func (c *Curve) RightLimit() float64 { return c.resolved.RightLimit }

// Increasing reports whether the curve rises from left to right.
func (c *Curve) Increasing() bool {
	return c.resolved.RightLimit > c.resolved.LeftLimit
}

// Sample evaluates the curve at n evenly spaced x values from Start.X to
// End.X inclusive. Useful for pre-tabulating a curve for per-frame lookup.
//
// Errors: ErrBadSampleCount when n < 2.
//
// Complexity: O(n) time and space.
func (c *Curve) Sample(n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("Sample(%d): %w", n, ErrBadSampleCount)
	}

	xs := floats.Span(make([]float64, n), c.resolved.Start.X, c.resolved.End.X)
	pts := make([]Point, n)
	for i, x := range xs {
		pts[i] = Point{X: x, Y: c.apply(x)}
	}

	return pts, nil
}

// String renders the closed form.
func (c *Curve) String() string {
	p := c.resolved.Params
	return fmt.Sprintf("%g·tanh(%g·(x − %g)) + %g", p.A, p.B, p.H, p.D)
}
