// SPDX-License-Identifier: MIT
// Package: fcm/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the detection site (builderErrorf).
//   • Generators MUST NOT panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid count (perCluster < 1, no centers, no groups)
// or a zero-width center.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrNeedRandSource indicates that a stochastic generator was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrDimensionMismatch indicates centers of different lengths.
var ErrDimensionMismatch = errors.New("builder: centers differ in dimensionality")

// ErrInvalidValue indicates a NaN/Inf coordinate, step or offset.
var ErrInvalidValue = errors.New("builder: value must be finite")

// builderErrorf prefixes err with the generator name, keeping the sentinel
// reachable through %w.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
