package fcm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fcm/matrix"
)

// validateDataset checks that data is a non-empty, rectangular, finite set of
// vectors and returns their common dimensionality.
func validateDataset(data [][]float64) (int, error) {
	if len(data) == 0 || len(data[0]) == 0 {
		return 0, ErrEmptyDataset
	}
	dim := len(data[0])
	var i, k int
	var v float64
	for i = range data {
		if len(data[i]) != dim {
			return 0, fmt.Errorf("point %d has %d coordinates, want %d: %w", i, len(data[i]), dim, ErrRaggedDataset)
		}
		for k = 0; k < dim; k++ {
			v = data[i][k]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("point %d coordinate %d: %w", i, k, ErrNaNInf)
			}
		}
	}

	return dim, nil
}

// validateFuzziness accepts only finite m > 1.
func validateFuzziness(m float64) error {
	if !(m > 1) || math.IsInf(m, 0) {
		return fmt.Errorf("m=%g: %w", m, ErrBadFuzziness)
	}

	return nil
}

// validateMemberships checks u against the dataset size.
func validateMemberships(u *matrix.Dense, points int) error {
	if err := matrix.ValidateNotNil(u); err != nil {
		return fmt.Errorf("memberships: %w", err)
	}
	if u.Cols() != points {
		return fmt.Errorf("memberships have %d columns for %d points: %w", u.Cols(), points, ErrDimensionMismatch)
	}

	return nil
}

// validateCenters checks centers against the membership rows and the point width.
func validateCenters(centers *matrix.Dense, clusters, dim int) error {
	if err := matrix.ValidateNotNil(centers); err != nil {
		return fmt.Errorf("centers: %w", err)
	}
	if centers.Rows() != clusters || centers.Cols() != dim {
		return fmt.Errorf("centers are %dx%d, want %dx%d: %w",
			centers.Rows(), centers.Cols(), clusters, dim, ErrDimensionMismatch)
	}

	return nil
}

// powM is u^m with a multiply fast path for the common m == 2.
func powM(u, m float64) float64 {
	if m == 2 {
		return u * u
	}

	return math.Pow(u, m)
}
