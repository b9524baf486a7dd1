package curve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvcurve/scale"
	"github.com/katalvlaran/lvcurve/transform"
)

// references tracks which of the four levels are known. Slots are indexed
// by Role; slot 0 is unused.
type references struct {
	value [roleCount]float64
	known [roleCount]bool
}

func (r *references) set(role Role, v float64) {
	r.value[role] = v
	r.known[role] = true
}

func (r *references) has(role Role) bool { return r.known[role] }

func (r *references) get(role Role) float64 { return r.value[role] }

// assignHandles places the two supplied handles in their slots.
//
// Errors: ErrUnknownRole, ErrDuplicateRole, ErrDegenerateGeometry (NaN/Inf value).
func assignHandles(first, second VerticalHandle) (references, error) {
	var r references
	for _, vh := range [...]VerticalHandle{first, second} {
		if !vh.role.valid() {
			return r, fmt.Errorf("handle %s: %w", vh, ErrUnknownRole)
		}
		if isNonFinite(vh.value) {
			return r, fmt.Errorf("handle %s: non-finite value: %w", vh, ErrDegenerateGeometry)
		}
	}
	if first.SameRole(second) {
		return r, fmt.Errorf("handles %s and %s: %w", first, second, ErrDuplicateRole)
	}
	r.set(first.role, first.value)
	r.set(second.role, second.value)

	return r, nil
}

// deriveMissing fills the two unknown levels from the two known ones.
//
// The limits are recovered first (each pair has its own closed form), then
// any missing intercept is placed p or 1−p of the way between the limits.
// With p ∈ (0, 0.5) every division below is by a nonzero constant.
func deriveMissing(r *references, p float64) error {
	var (
		hasLL = r.has(RoleLeftLimit)
		hasLI = r.has(RoleLeftIntercept)
		hasRI = r.has(RoleRightIntercept)
		hasRL = r.has(RoleRightLimit)
	)

	switch {
	case hasLL && hasRL:
		// intercepts only
	case hasLL && hasLI:
		r.set(RoleRightLimit, scale.Extrapolate(r.get(RoleLeftLimit), r.get(RoleLeftIntercept), p))
	case hasLL && hasRI:
		r.set(RoleRightLimit, scale.Extrapolate(r.get(RoleLeftLimit), r.get(RoleRightIntercept), 1-p))
	case hasRL && hasRI:
		r.set(RoleLeftLimit, scale.Extrapolate(r.get(RoleRightLimit), r.get(RoleRightIntercept), p))
	case hasRL && hasLI:
		r.set(RoleLeftLimit, scale.Extrapolate(r.get(RoleRightLimit), r.get(RoleLeftIntercept), 1-p))
	case hasLI && hasRI:
		// LI sits (1−2p)/(1−p) of the way from RI down to LL.
		r.set(RoleLeftLimit, scale.Extrapolate(r.get(RoleRightIntercept), r.get(RoleLeftIntercept), (1-2*p)/(1-p)))
		r.set(RoleRightLimit, scale.Extrapolate(r.get(RoleLeftLimit), r.get(RoleRightIntercept), 1-p))
	}

	if r.has(RoleLeftLimit) && r.has(RoleRightLimit) {
		ll, rl := r.get(RoleLeftLimit), r.get(RoleRightLimit)
		if !r.has(RoleLeftIntercept) {
			r.set(RoleLeftIntercept, scale.Scale(ll, rl, p))
		}
		if !r.has(RoleRightIntercept) {
			r.set(RoleRightIntercept, scale.Scale(ll, rl, 1-p))
		}
	}

	for _, role := range [...]Role{RoleLeftLimit, RoleLeftIntercept, RoleRightIntercept, RoleRightLimit} {
		if !r.has(role) {
			return fmt.Errorf("%s not derivable: %w", role, ErrDegenerateGeometry)
		}
		if isNonFinite(r.get(role)) {
			return fmt.Errorf("%s = %g: %w", role, r.get(role), ErrDegenerateGeometry)
		}
	}

	return nil
}

// unscaledX returns atanh((y − d)/a): the input at which a·tanh(u) + d = y.
func unscaledX(y, a, d float64) (float64, error) {
	arg := (y - d) / a
	if !(math.Abs(arg) < 1) {
		return 0, fmt.Errorf("atanh(%g): %w: %w", arg, ErrDegenerateGeometry, ErrInverseOutOfRange)
	}

	return math.Atanh(arg), nil
}

// solve resolves a validated config into a Resolved curve.
//
// Stages:
//  1. place the two handles;
//  2. derive the two missing levels;
//  3. a = half the limit span, d = the midline;
//  4. invert tanh at both intercepts;
//  5. b maps the unscaled span onto [from, to], h centres it.
func solve(from, to float64, cfg config) (Resolved, error) {
	p := cfg.inset

	if isNonFinite(p) || p <= 0 || p >= 0.5 {
		return Resolved{}, fmt.Errorf("inset %g outside (0, 0.5): %w", p, ErrDegenerateGeometry)
	}
	if isNonFinite(from) || isNonFinite(to) {
		return Resolved{}, fmt.Errorf("endpoints (%g, %g): %w", from, to, ErrDegenerateGeometry)
	}

	refs, err := assignHandles(cfg.first, cfg.second)
	if err != nil {
		return Resolved{}, err
	}
	if err = deriveMissing(&refs, p); err != nil {
		return Resolved{}, err
	}

	ll, li := refs.get(RoleLeftLimit), refs.get(RoleLeftIntercept)
	ri, rl := refs.get(RoleRightIntercept), refs.get(RoleRightLimit)

	a := (rl - ll) / 2
	d := rl - a
	if a == 0 || isNonFinite(a) {
		return Resolved{}, fmt.Errorf("limits %g and %g coincide: %w", ll, rl, ErrDegenerateGeometry)
	}

	lo, hi := math.Min(ll, rl), math.Max(ll, rl)
	for _, y := range [...]float64{li, ri} {
		if y <= lo || y >= hi {
			return Resolved{}, fmt.Errorf("intercept %g outside (%g, %g): %w", y, lo, hi, ErrDegenerateGeometry)
		}
	}

	uL, err := unscaledX(li, a, d)
	if err != nil {
		return Resolved{}, err
	}
	uR, err := unscaledX(ri, a, d)
	if err != nil {
		return Resolved{}, err
	}

	if from == to {
		return Resolved{}, fmt.Errorf("apparent endpoints equal (%g): %w", from, ErrDegenerateGeometry)
	}
	b := (uR - uL) / (to - from)
	h := (uR/b-uL/b)/2 + from

	params := transform.Params{A: a, B: b, H: h, D: d}
	if err = params.Validate(); err != nil {
		return Resolved{}, fmt.Errorf("affine constants %v: %w: %w", params, ErrDegenerateGeometry, err)
	}

	return Resolved{
		LeftLimit:      ll,
		LeftIntercept:  li,
		RightIntercept: ri,
		RightLimit:     rl,
		Start:          Point{X: from, Y: li},
		End:            Point{X: to, Y: ri},
		Inset:          p,
		Params:         params,
	}, nil
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
