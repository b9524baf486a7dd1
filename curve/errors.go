package curve

import "errors"

var (
	// ErrUnknownRole indicates a VerticalHandle whose role is not one of the
	// four defined roles, typically the zero value VerticalHandle{}.
	ErrUnknownRole = errors.New("curve: unknown handle role")

	// ErrDuplicateRole indicates both supplied handles designate the same
	// role, leaving the curve underdetermined.
	ErrDuplicateRole = errors.New("curve: duplicate handle role")

	// ErrDegenerateGeometry indicates inputs that cannot describe a curve:
	// equal apparent endpoints, an inset outside (0, 0.5), coincident limits,
	// intercepts outside the open limit interval, or non-finite values.
	ErrDegenerateGeometry = errors.New("curve: degenerate geometry")

	// ErrInverseOutOfRange indicates an argument to atanh with magnitude ≥ 1.
	// It only arises from degenerate geometry and is always wrapped together
	// with ErrDegenerateGeometry.
	ErrInverseOutOfRange = errors.New("curve: inverse argument out of range")

	// ErrBadSampleCount indicates Sample was asked for fewer than two points.
	ErrBadSampleCount = errors.New("curve: sample count must be >= 2")
)
