package curve

// Defaults used when no option overrides them.
const (
	// DefaultInset places each intercept 1% of the limit span in from its limit.
	DefaultInset = 0.01

	// DefaultTolerance is the comparison tolerance used by tests and
	// suggested for Resolved.EqualWithin.
	DefaultTolerance = 1e-9
)

// Option customizes curve construction.
type Option func(*config)

type config struct {
	first  VerticalHandle
	second VerticalHandle
	inset  float64
}

// WithHandles sets the two reference levels the curve is derived from.
// Default: LeftLimit(0), RightLimit(1). Roles must differ; New reports
// ErrDuplicateRole otherwise.
func WithHandles(first, second VerticalHandle) Option {
	return func(c *config) {
		c.first, c.second = first, second
	}
}

// WithInset sets the fraction of the limit-to-limit span separating each
// intercept from its limit. Default DefaultInset. New reports
// ErrDegenerateGeometry unless 0 < p < 0.5.
func WithInset(p float64) Option {
	return func(c *config) {
		c.inset = p
	}
}

// newConfig applies opts in order over the defaults; last wins.
func newConfig(opts ...Option) config {
	cfg := config{
		first:  LeftLimit(0),
		second: RightLimit(1),
		inset:  DefaultInset,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
