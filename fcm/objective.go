package fcm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fcm/matrix"
)

// Objective returns J = Σ_j Σ_k u_jk^m · d(x_k,c_j)².
//
// Errors:
//   - dataset errors, ErrBadFuzziness, ErrDimensionMismatch.
//   - ErrNaNInf when J is not finite. Squaring the distance overflows for
//     coordinates around 1e160 and beyond even though every input is finite.
func Objective(data [][]float64, centers, u *matrix.Dense, m float64) (float64, error) {
	dim, err := validateDataset(data)
	if err != nil {
		return 0, fmt.Errorf("Objective: %w", err)
	}
	if err = validateFuzziness(m); err != nil {
		return 0, fmt.Errorf("Objective: %w", err)
	}
	if err = validateMemberships(u, len(data)); err != nil {
		return 0, fmt.Errorf("Objective: %w", err)
	}
	if err = validateCenters(centers, u.Rows(), dim); err != nil {
		return 0, fmt.Errorf("Objective: %w", err)
	}
	j, err := objective(data, centers, u, m)
	if err != nil {
		return 0, fmt.Errorf("Objective: %w", err)
	}

	return j, nil
}

// objective sums cluster by cluster, points in increasing order. d² can
// overflow to +Inf on finite input, which surfaces as ErrNaNInf.
func objective(data [][]float64, centers, u *matrix.Dense, m float64) (float64, error) {
	var j, k int
	var total, d float64
	var urow, crow []float64
	for j = 0; j < u.Rows(); j++ {
		urow, _ = u.RowView(j)
		crow, _ = centers.RowView(j)
		for k = range data {
			d = Distance(data[k], crow)
			total += powM(urow[k], m) * d * d
		}
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("objective %g: %w", total, ErrNaNInf)
	}

	return total, nil
}

// HasConverged reports whether the last two entries of history differ by less
// than eps. A history shorter than two values (iteration 0) never converges.
func HasConverged(history []float64, eps float64) bool {
	n := len(history)
	if n < 2 {
		return false
	}

	return math.Abs(history[n-1]-history[n-2]) < eps
}
