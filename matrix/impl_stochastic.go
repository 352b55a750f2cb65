// SPDX-License-Identifier: MIT

// Package matrix - column-stochastic helpers.
//
// Purpose:
//   - Support membership-style matrices (rows = clusters, cols = points) whose
//     every column is a probability vector: entries in [0,1] summing to 1.
//   - ColumnSums / NormalizeColumnsL1 mutate or inspect in place (no copies).
//   - ArgMaxColumn picks the first maximum in increasing row order, so ties
//     resolve to the lowest row index.
//
// Determinism:
//   - Fixed traversal order: column sums accumulate rows in increasing index.
//
// Complexity:
//   - All helpers are O(r*c) time and O(c) extra space at most.

package matrix

import (
	"fmt"
	"math"
)

const (
	opColumnSums     = "ColumnSums"
	opNormalizeCols  = "NormalizeColumnsL1"
	opArgMaxColumn   = "ArgMaxColumn"
	opValidateStoch  = "ValidateColumnStochastic"
	opColumn         = "Column"
	stochLowerBound  = 0.0
	stochUpperBound  = 1.0
	stochTargetTotal = 1.0
)

// matrixErrorf wraps an error with an operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ColumnSums returns s[j] = Σ_i m[i][j].
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//
// Complexity: O(r*c) time, O(c) space.
func ColumnSums(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opColumnSums, ErrNilMatrix)
	}
	sums := make([]float64, m.c)
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sums[j] += m.data[base+j]
		}
	}

	return sums, nil
}

// NormalizeColumnsL1 scales every column in place so its entries sum to 1.
// Entries are expected to be non-negative (membership weights); the L1 mass of a
// column is therefore its plain sum.
//
// Implementation:
//   - Stage 1: compute column sums (ColumnSums).
//   - Stage 2: reject a zero or non-finite column mass (ErrZeroColumn / ErrNaNInf).
//   - Stage 3: multiply each entry by 1/sum_j.
//
// Complexity: O(r*c) time, O(c) space.
func NormalizeColumnsL1(m *Dense) error {
	sums, err := ColumnSums(m)
	if err != nil {
		return matrixErrorf(opNormalizeCols, err)
	}

	var i, j, base int
	for j = 0; j < m.c; j++ {
		if math.IsNaN(sums[j]) || math.IsInf(sums[j], 0) {
			return fmt.Errorf("%s: column %d: %w", opNormalizeCols, j, ErrNaNInf)
		}
		if sums[j] == 0 {
			return fmt.Errorf("%s: column %d: %w", opNormalizeCols, j, ErrZeroColumn)
		}
		sums[j] = 1.0 / sums[j] // reuse buffer for the scale factors
	}
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] *= sums[j]
		}
	}

	return nil
}

// ValidateColumnStochastic checks that every entry lies in [0,1] (within tol)
// and that every column sums to 1 within tol.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNotStochastic (with column context).
//
// Complexity: O(r*c).
func ValidateColumnStochastic(m *Dense, tol float64) error {
	sums, err := ColumnSums(m)
	if err != nil {
		return matrixErrorf(opValidateStoch, err)
	}

	var i, j, base int
	var v float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			v = m.data[base+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s(%d,%d): %w", opValidateStoch, i, j, ErrNaNInf)
			}
			if v < stochLowerBound-tol || v > stochUpperBound+tol {
				return fmt.Errorf("%s(%d,%d): value %g: %w", opValidateStoch, i, j, v, ErrNotStochastic)
			}
		}
	}
	for j = 0; j < m.c; j++ {
		if math.Abs(sums[j]-stochTargetTotal) > tol {
			return fmt.Errorf("%s: column %d sums to %g: %w", opValidateStoch, j, sums[j], ErrNotStochastic)
		}
	}

	return nil
}

// ArgMaxColumn returns the row index holding the maximum of column j.
// Ties resolve to the lowest row index: a later row replaces the current best
// only when strictly greater.
//
// Errors:
//   - ErrNilMatrix; ErrOutOfRange when j is not a valid column.
//
// Complexity: O(r).
func ArgMaxColumn(m *Dense, j int) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opArgMaxColumn, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return 0, fmt.Errorf("%s(%d): %w", opArgMaxColumn, j, ErrOutOfRange)
	}

	best := 0
	bestVal := m.data[j]
	var i int
	var v float64
	for i = 1; i < m.r; i++ {
		v = m.data[i*m.c+j]
		if v > bestVal {
			best, bestVal = i, v
		}
	}

	return best, nil
}

// Column returns a copy of column j.
// Complexity: O(r).
func Column(m *Dense, j int) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opColumn, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, fmt.Errorf("%s(%d): %w", opColumn, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}
