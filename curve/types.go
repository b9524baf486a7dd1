package curve

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvcurve/transform"
)

// Role names one of the four vertical reference levels of a curve, listed
// top to bottom for an increasing curve.
type Role int

const (
	// RoleUnknown is the zero value and is rejected by New.
	RoleUnknown Role = iota
	// RoleRightLimit is the horizontal asymptote as x → +∞.
	RoleRightLimit
	// RoleRightIntercept is the curve value at the apparent end `to`.
	RoleRightIntercept
	// RoleLeftIntercept is the curve value at the apparent start `from`.
	RoleLeftIntercept
	// RoleLeftLimit is the horizontal asymptote as x → −∞.
	RoleLeftLimit
)

// roleCount sizes the per-role slot arrays; index 0 (RoleUnknown) is unused.
const roleCount = int(RoleLeftLimit) + 1

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleRightLimit:
		return "RightLimit"
	case RoleRightIntercept:
		return "RightIntercept"
	case RoleLeftIntercept:
		return "LeftIntercept"
	case RoleLeftLimit:
		return "LeftLimit"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

func (r Role) valid() bool {
	return r >= RoleRightLimit && r <= RoleLeftLimit
}

// VerticalHandle pins one reference level of a curve. Build handles with
// RightLimit, RightIntercept, LeftIntercept or LeftLimit; the zero value
// has RoleUnknown.
type VerticalHandle struct {
	role  Role
	value float64
}

// RightLimit pins the asymptote approached as x → +∞.
func RightLimit(v float64) VerticalHandle { return VerticalHandle{role: RoleRightLimit, value: v} }

// RightIntercept pins the curve value at the apparent end.
func RightIntercept(v float64) VerticalHandle {
	return VerticalHandle{role: RoleRightIntercept, value: v}
}

// LeftIntercept pins the curve value at the apparent start.
func LeftIntercept(v float64) VerticalHandle {
	return VerticalHandle{role: RoleLeftIntercept, value: v}
}

// LeftLimit pins the asymptote approached as x → −∞.
func LeftLimit(v float64) VerticalHandle { return VerticalHandle{role: RoleLeftLimit, value: v} }

// Role returns the handle's role.
func (vh VerticalHandle) Role() Role { return vh.role }

// Value returns the pinned level.
func (vh VerticalHandle) Value() float64 { return vh.value }

// SameRole reports whether vh and other designate the same role. Values
// are ignored.
func (vh VerticalHandle) SameRole(other VerticalHandle) bool {
	return vh.role == other.role
}

func (vh VerticalHandle) String() string {
	return fmt.Sprintf("%s(%g)", vh.role, vh.value)
}

// Point is an (x, y) pair on a curve.
type Point struct {
	X float64
	Y float64
}

// Resolved is the fully derived description of a curve: all four reference
// levels, the two apparent intersection points, the inset fraction and the
// affine constants of a·tanh(b·(x − h)) + d.
type Resolved struct {
	LeftLimit      float64
	LeftIntercept  float64
	RightIntercept float64
	RightLimit     float64

	// Start is (from, LeftIntercept); End is (to, RightIntercept).
	Start Point
	End   Point

	Inset  float64
	Params transform.Params
}

// EqualWithin reports whether r and other describe the same geometric
// curve: the four reference levels and both intersection points agree
// within tol, absolute or relative.
func (r Resolved) EqualWithin(other Resolved, tol float64) bool {
	pairs := [...][2]float64{
		{r.LeftLimit, other.LeftLimit},
		{r.LeftIntercept, other.LeftIntercept},
		{r.RightIntercept, other.RightIntercept},
		{r.RightLimit, other.RightLimit},
		{r.Start.X, other.Start.X},
		{r.Start.Y, other.Start.Y},
		{r.End.X, other.End.X},
		{r.End.Y, other.End.Y},
	}
	for _, p := range pairs {
		if !scalar.EqualWithinAbsOrRel(p[0], p[1], tol, tol) {
			return false
		}
	}

	return true
}
