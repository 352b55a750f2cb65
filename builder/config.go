// SPDX-License-Identifier: MIT
// Package: fcm/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng     = nil    (stochastic generators require WithSeed/WithRand)
//   • sigma   = 1.0
//   • shuffle = false  (points grouped by cluster, in center order)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators.
type builderConfig struct {
	rng     *rand.Rand // nil ⇒ no randomness available
	sigma   float64    // Gaussian stdev per coordinate, >= 0
	shuffle bool       // interleave output order
}

const defaultSigma = 1.0

// newBuilderConfig applies opts over the defaults in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:   nil,
		sigma: defaultSigma,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
