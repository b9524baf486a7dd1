// Package curve derives and evaluates hyperbolic-tangent shaping curves.
//
// What is a curve here?
//
//	A Curve is the unique function
//
//	    g(x) = a · tanh(b · (x − h)) + d
//
//	that appears to travel from one level to another between two apparent
//	x endpoints, `from` and `to`. tanh never actually reaches its limits, so
//	the curve is pinned at two intercepts sitting a small inset fraction in
//	from each horizontal asymptote:
//
//	    RightLimit     ─────────────────────────  (x → +∞)
//	    RightIntercept                    ●       g(to)
//	                                  ╱
//	                              ╱
//	    LeftIntercept    ●                       g(from)
//	    LeftLimit      ─────────────────────────  (x → −∞)
//
// Vertical handles:
//
//	The vertical shape is fixed by any two of the four reference levels
//	(LeftLimit, LeftIntercept, RightIntercept, RightLimit), each given as a
//	VerticalHandle. The other two follow from the inset fraction p:
//
//	    LeftIntercept  = LeftLimit + p     · (RightLimit − LeftLimit)
//	    RightIntercept = LeftLimit + (1−p) · (RightLimit − LeftLimit)
//
//	All six role pairs have exact closed forms; no iteration is involved.
//	A RightLimit below the LeftLimit yields a decreasing curve.
//
// Construction:
//
//	New resolves everything eagerly. Any invalid input (duplicate roles,
//	equal endpoints, an inset outside (0, 0.5), collapsed limits, non-finite
//	values) is returned as an error before a Curve exists; there is no
//	partially built state. Once built a Curve is immutable, Apply never
//	fails on finite input, and the Curve may be shared between goroutines.
//
// Usage:
//
//	import "github.com/katalvlaran/lvcurve/curve"
//
//	c, err := curve.New(0, 100,
//	    curve.WithHandles(curve.LeftLimit(0), curve.RightLimit(1)),
//	    curve.WithInset(0.01),
//	)
//	if err != nil { ... }
//	c.Apply(0)   // ≈ 0.01
//	c.Apply(50)  // ≈ 0.5
//	c.Apply(100) // ≈ 0.99
//
// Errors (match with errors.Is):
//   - ErrUnknownRole: a zero-value or otherwise invalid handle.
//   - ErrDuplicateRole: both handles name the same role.
//   - ErrDegenerateGeometry: the inputs do not describe a curve.
//   - ErrInverseOutOfRange: an intercept maps outside tanh's range; always
//     reported together with ErrDegenerateGeometry.
//   - ErrBadSampleCount: Sample called with n < 2.
//
// Complexity: construction and evaluation are O(1).
package curve
