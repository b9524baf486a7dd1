// Package random draws uniformly distributed values from a bounded interval.
//
// A Uniform is built from two bounds in either order; the constructor swaps
// them so that lo ≤ hi, and every draw lies in the half-open [lo, hi).
// Sampling is delegated to gonum's distuv.Uniform over an explicit
// golang.org/x/exp/rand Source.
//
// Determinism:
//
//	There is no hidden global or time-based entropy. Without options a
//	Uniform draws from a PCG source seeded with DefaultSeed, so two
//	generators built the same way yield the same sequence. Pass WithSeed for
//	a different reproducible stream or WithSource to plug in any Source.
//
// Concurrency:
//
//	A Uniform owns mutable Source state and is NOT safe for concurrent use.
//	Give each goroutine its own generator (distinct seeds) or guard it with a
//	mutex at the call site.
//
// Usage:
//
//	u, err := random.New(10, -10, random.WithSeed(42))
//	if err != nil { ... }
//	next := u.Generator()
//	v := next() // in [-10, 10)
package random
