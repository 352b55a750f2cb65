package fcm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fcm/matrix"
)

// ComputeCenters returns the clusters×D center set
//
//	c_j = Σ_k u_jk^m · x_k / Σ_k u_jk^m
//
// It is pure: neither data nor u is modified.
//
// Errors:
//   - dataset errors (ErrEmptyDataset, ErrRaggedDataset, ErrNaNInf).
//   - ErrBadFuzziness for m ≤ 1.
//   - ErrDimensionMismatch when u has a column count different from len(data).
//   - ErrZeroWeight when Σ_k u_jk^m is zero or not finite for some cluster.
//
// Complexity: O(clusters*points*D).
func ComputeCenters(data [][]float64, u *matrix.Dense, m float64) (*matrix.Dense, error) {
	dim, err := validateDataset(data)
	if err != nil {
		return nil, fmt.Errorf("ComputeCenters: %w", err)
	}
	if err = validateFuzziness(m); err != nil {
		return nil, fmt.Errorf("ComputeCenters: %w", err)
	}
	if err = validateMemberships(u, len(data)); err != nil {
		return nil, fmt.Errorf("ComputeCenters: %w", err)
	}

	centers, err := matrix.NewDense(u.Rows(), dim)
	if err != nil {
		return nil, fmt.Errorf("ComputeCenters: %w", err)
	}
	if err = computeCenters(data, u, m, centers, 1); err != nil {
		return nil, fmt.Errorf("ComputeCenters: %w", err)
	}

	return centers, nil
}

// computeCenters overwrites centers (clusters×D) from data and u.
// Work is split per cluster; each worker owns whole center rows and sums
// points in increasing index order.
func computeCenters(data [][]float64, u *matrix.Dense, m float64, centers *matrix.Dense, workers int) error {
	return forEachChunk(u.Rows(), workers, func(lo, hi int) error {
		var j, k int
		var w, total float64
		var urow, crow []float64
		for j = lo; j < hi; j++ {
			urow, _ = u.RowView(j)
			crow, _ = centers.RowView(j)
			for k = range crow {
				crow[k] = 0
			}
			total = 0
			for k = range data {
				w = powM(urow[k], m)
				if w == 0 {
					continue
				}
				floats.AddScaled(crow, w, data[k])
				total += w
			}
			if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
				return fmt.Errorf("cluster %d weight %g: %w", j, total, ErrZeroWeight)
			}
			floats.Scale(1/total, crow)
		}

		return nil
	})
}
