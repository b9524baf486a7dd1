package scale_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvcurve/scale"
)

const tol = 1e-12

// TestScale covers interpolation inside the bounds and linear extrapolation
// outside them, for both ascending and descending bounds.
func TestScale(t *testing.T) {
	tests := []struct {
		name           string
		from, to, frac float64
		want           float64
	}{
		{"start", 2, 6, 0, 2},
		{"end", 2, 6, 1, 6},
		{"quarter", 0, 10, 0.25, 2.5},
		{"descending", 10, 0, 0.25, 7.5},
		{"beyond end", 0, 10, 1.5, 15},
		{"before start", 0, 10, -0.5, -5},
		{"zero span", 3, 3, 0.7, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, scale.Scale(tc.from, tc.to, tc.frac), tol)
		})
	}
}

// TestFraction verifies Fraction inverts Scale and reports NaN on a zero span.
func TestFraction(t *testing.T) {
	assert.InDelta(t, 0.25, scale.Fraction(0, 10, 2.5), tol)
	assert.InDelta(t, 0.25, scale.Fraction(10, 0, 7.5), tol)
	assert.InDelta(t, -1.0, scale.Fraction(0, 4, -4), tol)
	assert.True(t, math.IsNaN(scale.Fraction(5, 5, 5)), "zero span has no unique fraction")

	for _, f := range []float64{-2, 0, 0.01, 0.5, 0.99, 1, 3} {
		v := scale.Scale(-3, 8, f)
		assert.InDelta(t, f, scale.Fraction(-3, 8, v), 1e-12, "fraction %v", f)
	}
}

// TestExtrapolate verifies that the recovered endpoint reproduces the
// interior point when scaled back.
func TestExtrapolate(t *testing.T) {
	tests := []struct {
		name           string
		from, at, frac float64
		want           float64
	}{
		{"quarter", 0, 2.5, 0.25, 10},
		{"inset from top", 1, 0.99, 0.01, 0},
		{"inset from bottom", 0, 0.01, 0.01, 1},
		{"far fraction", 0, 0.99, 0.99, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			to := scale.Extrapolate(tc.from, tc.at, tc.frac)
			assert.InDelta(t, tc.want, to, 1e-9)
			assert.InDelta(t, tc.at, scale.Scale(tc.from, to, tc.frac), 1e-9)
		})
	}

	assert.True(t, math.IsInf(scale.Extrapolate(0, 1, 0), 1), "zero fraction diverges")
}
