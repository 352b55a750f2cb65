package fcm

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fcm/matrix"
)

// UpdateMemberships overwrites u in place with the ratio rule
//
//	u_jk = 1 / Σ_j' ( d(x_k,c_j) / d(x_k,c_j') )^(2/(m-1))
//
// evaluated on Euclidean distances. A point coincides with a center only when
// that distance is exactly zero.
//
// Only the degenerate policy and worker count in opts are consulted. Under the
// default DegenerateFail policy a point lying exactly on a center yields
// ErrDegenerate and u is left partially updated.
//
// Errors:
//   - dataset errors, ErrBadFuzziness, ErrOptionViolation.
//   - ErrDimensionMismatch when u or centers do not fit data.
//   - ErrDegenerate, ErrNaNInf for numeric breakdown.
func UpdateMemberships(data [][]float64, centers, u *matrix.Dense, m float64, opts ...Option) error {
	o, err := resolveOptions(opts)
	if err != nil {
		return fmt.Errorf("UpdateMemberships: %w", err)
	}
	dim, err := validateDataset(data)
	if err != nil {
		return fmt.Errorf("UpdateMemberships: %w", err)
	}
	if err = validateFuzziness(m); err != nil {
		return fmt.Errorf("UpdateMemberships: %w", err)
	}
	if err = validateMemberships(u, len(data)); err != nil {
		return fmt.Errorf("UpdateMemberships: %w", err)
	}
	if err = validateCenters(centers, u.Rows(), dim); err != nil {
		return fmt.Errorf("UpdateMemberships: %w", err)
	}
	if err = updateMemberships(data, centers, u, m, o.Degenerate, o.Workers); err != nil {
		return fmt.Errorf("UpdateMemberships: %w", err)
	}

	return nil
}

// Predict returns the membership vector (length = centers.Rows()) of a point
// x that was not part of the fitted dataset, using the same ratio rule.
//
// Only the degenerate policy in opts is consulted.
func Predict(centers *matrix.Dense, m float64, x []float64, opts ...Option) ([]float64, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}
	if err = validateFuzziness(m); err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}
	if err = matrix.ValidateNotNil(centers); err != nil {
		return nil, fmt.Errorf("Predict: centers: %w", err)
	}
	if _, err = validateDataset([][]float64{x}); err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}
	if len(x) != centers.Cols() {
		return nil, fmt.Errorf("Predict: point has %d coordinates, centers have %d: %w",
			len(x), centers.Cols(), ErrDimensionMismatch)
	}

	views := rowViews(centers)
	out := make([]float64, len(views))
	dist := make([]float64, len(views))
	if err = pointMemberships(x, views, m, o.Degenerate, dist, out); err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	return out, nil
}

// updateMemberships is the in-place kernel. Work is split per point: each
// worker writes only the columns in its range and keeps a private distance buffer.
func updateMemberships(data [][]float64, centers, u *matrix.Dense, m float64, policy DegeneratePolicy, workers int) error {
	cviews := rowViews(centers)
	uviews := rowViews(u)
	clusters := len(cviews)

	return forEachChunk(len(data), workers, func(lo, hi int) error {
		dist := make([]float64, clusters)
		col := make([]float64, clusters)
		var j, k int
		for k = lo; k < hi; k++ {
			if err := pointMemberships(data[k], cviews, m, policy, dist, col); err != nil {
				return fmt.Errorf("point %d: %w", k, err)
			}
			for j = 0; j < clusters; j++ {
				uviews[j][k] = col[j]
			}
		}

		return nil
	})
}

// pointMemberships fills out[j] with the membership of x in cluster j.
// dist is scratch space of len(centers).
func pointMemberships(x []float64, centers [][]float64, m float64, policy DegeneratePolicy, dist, out []float64) error {
	clusters := len(centers)
	if clusters == 1 {
		out[0] = 1
		return nil
	}

	var j, jj, zeros int
	first := -1
	for j = 0; j < clusters; j++ {
		dist[j] = Distance(x, centers[j])
		if dist[j] == 0 {
			if first < 0 {
				first = j
			}
			zeros++
		}
	}

	if zeros > 0 {
		if policy != DegenerateCrisp {
			return fmt.Errorf("coincides with center %d: %w", first, ErrDegenerate)
		}
		share := 1 / float64(zeros)
		for j = 0; j < clusters; j++ {
			out[j] = 0
			if dist[j] == 0 {
				out[j] = share
			}
		}
		return nil
	}

	exp := 2 / (m - 1)
	var r, s float64
	for j = 0; j < clusters; j++ {
		s = 0
		for jj = 0; jj < clusters; jj++ {
			r = dist[j] / dist[jj]
			if exp == 2 {
				s += r * r
			} else {
				s += math.Pow(r, exp)
			}
		}
		out[j] = 1 / s
		if math.IsNaN(out[j]) || math.IsInf(out[j], 0) {
			return fmt.Errorf("membership in cluster %d: %w", j, ErrNaNInf)
		}
	}

	return nil
}

// rowViews returns the live row slices of d.
func rowViews(d *matrix.Dense) [][]float64 {
	views := make([][]float64, d.Rows())
	var i int
	for i = range views {
		views[i], _ = d.RowView(i)
	}

	return views
}
