// Package selection - RNG utilities for the randomized selector.
//
// Goals:
//   - Determinism: same seed ⇒ identical pivot streams across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no global rand, no panics; misuse surfaces as sentinel errors
//     at the public API boundary, never here.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Quickselect uses one stream per
//     call; callers supplying WithRand must not share the source.
package selection

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}
