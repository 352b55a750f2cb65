// SPDX-License-Identifier: MIT

// Package builder generates deterministic synthetic point sets for clustering
// tests, examples and the fcm command.
//
// What
//
//   - Blobs: isotropic Gaussian clouds around caller-chosen centers, with the
//     ground-truth cluster index of every point.
//   - Diagonal / DemoDiagonal: evenly spaced points on the main diagonal, one
//     group per offset (the classic FCM demo layout).
//
// Determinism
//
//	Stochastic generators draw only from the *rand.Rand resolved from
//	WithSeed / WithRand. Same inputs + same seed ⇒ identical points.
//	Without an RNG, Blobs returns ErrNeedRandSource instead of guessing.
//
// Errors
//
//	Generators never panic; they return sentinel errors (ErrBadSize,
//	ErrNeedRandSource, ErrDimensionMismatch). Option constructors panic on
//	meaningless values (WithSigma(<0), WithRand(nil)) to surface programmer
//	error early.
//
// Usage
//
//	pts, truth, err := builder.Blobs(
//	    [][]float64{{5, 5}, {50, 50}, {90, 90}}, 20,
//	    builder.WithSeed(7), builder.WithSigma(2),
//	)
package builder
