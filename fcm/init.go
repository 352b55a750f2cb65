package fcm

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/fcm/matrix"
)

// InitMemberships draws a clusters×points membership matrix with entries
// uniform in (0,1] and normalizes every column to sum 1.
//
// A nil rng falls back to the default deterministic seed.
//
// Errors:
//   - ErrTooFewClusters when clusters < 1.
//   - ErrEmptyDataset when points < 1.
//
// Complexity: O(clusters*points).
func InitMemberships(clusters, points int, rng *rand.Rand) (*matrix.Dense, error) {
	if clusters < 1 {
		return nil, fmt.Errorf("InitMemberships: clusters=%d: %w", clusters, ErrTooFewClusters)
	}
	if points < 1 {
		return nil, fmt.Errorf("InitMemberships: points=%d: %w", points, ErrEmptyDataset)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	u, err := matrix.NewDense(clusters, points)
	if err != nil {
		return nil, fmt.Errorf("InitMemberships: %w", err)
	}
	// Draw order is row-major (cluster by cluster) so a seed pins the matrix.
	var j, k int
	var row []float64
	for j = 0; j < clusters; j++ {
		row, _ = u.RowView(j)
		for k = 0; k < points; k++ {
			row[k] = positiveUniform(rng)
		}
	}
	if err = matrix.NormalizeColumnsL1(u); err != nil {
		return nil, fmt.Errorf("InitMemberships: %w", err)
	}

	return u, nil
}
