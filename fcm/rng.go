// Package fcm - RNG utilities for membership initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial memberships across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A run draws all initial values on
//     the calling goroutine; never share a *rand.Rand across concurrent runs.
package fcm

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
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

// resolveRNG prefers an explicit source, then the seed policy.
func resolveRNG(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return rngFromSeed(o.Seed)
}

// positiveUniform draws from (0,1]. Using 1−Float64() keeps the distribution
// uniform while excluding 0, so a column can never sum to zero.
func positiveUniform(r *rand.Rand) float64 {
	return 1 - r.Float64()
}
