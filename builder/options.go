// SPDX-License-Identifier: MIT
// Package: fcm/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes a generator by mutating a builderConfig before
// generation begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic generators.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSigma sets the per-coordinate standard deviation of Blobs (>= 0).
// Sigma 0 places every point exactly on its center.
// Panics on negative or non-finite sigma.
func WithSigma(sigma float64) BuilderOption {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic("builder: WithSigma(sigma<0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.sigma = sigma
	}
}

// WithShuffle interleaves the generated points (and their labels) with a
// seeded Fisher–Yates shuffle instead of emitting them cluster by cluster.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}
