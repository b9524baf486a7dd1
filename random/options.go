package random

import "golang.org/x/exp/rand"

// DefaultSeed seeds the PCG source when neither WithSeed nor WithSource is
// given.
const DefaultSeed uint64 = 1

// Option customizes a Uniform before construction.
type Option func(*config)

type config struct {
	src rand.Source
}

// WithSeed draws from a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.src = rand.NewSource(seed)
	}
}

// WithSource draws from src. The Uniform takes ownership: do not share src
// with another goroutine. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("random: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// newConfig applies opts in order over the deterministic default.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.src == nil {
		cfg.src = rand.NewSource(DefaultSeed)
	}

	return cfg
}
