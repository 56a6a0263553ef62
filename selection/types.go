// Package selection: sentinel errors and functional options.
// All user-triggered failures surface as the sentinels below and are
// matched with errors.Is; nothing in this package panics or logs.
package selection

import (
	"errors"
	"math/rand"
)

var (
	// ErrRankOutOfRange indicates k outside [0, len(a)-1]. Selecting from
	// an empty slice therefore always fails with this sentinel.
	ErrRankOutOfRange = errors.New("selection: rank out of range")

	// ErrInvalidBounds indicates a [low, high] window that does not denote
	// a non-empty subrange of the slice.
	ErrInvalidBounds = errors.New("selection: bounds out of range")

	// ErrPivotOutOfRange indicates a pivot index outside [low, high].
	ErrPivotOutOfRange = errors.New("selection: pivot index outside bounds")
)

// Option configures Quickselect's pivot randomness.
// SelectDeterministic takes no options: its pivot choice is the point.
type Option func(*options)

// options holds gathered configuration; fields are unexported by design.
type options struct {
	seed int64
	rng  *rand.Rand
}

// WithSeed selects a deterministic pivot stream derived from seed.
// Policy matches rngFromSeed: seed == 0 means the fixed default seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithRand installs a caller-owned random source, overriding any seed.
// Pass a source the input's author cannot predict when inputs may be
// adversarial; *rand.Rand is not goroutine-safe, so do not share r.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// gatherOptions folds opts into a ready-to-use RNG.
// Precedence: WithRand > WithSeed > default deterministic stream.
func gatherOptions(opts []Option) *rand.Rand {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.rng != nil {
		return o.rng
	}

	return rngFromSeed(o.seed)
}
