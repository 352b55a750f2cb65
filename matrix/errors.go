// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/RowView) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the matrix width, or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrZeroColumn is returned by NormalizeColumnsL1 when a column has zero L1
	// mass and therefore cannot be scaled to sum 1.
	ErrZeroColumn = errors.New("matrix: column has zero mass")

	// ErrNotStochastic signals that a column of a membership-style matrix does
	// not sum to 1 within tolerance, or holds a value outside [0,1].
	ErrNotStochastic = errors.New("matrix: column not stochastic within eps")
)
