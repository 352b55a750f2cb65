package fcm

import (
	"fmt"

	"github.com/katalvlaran/fcm/matrix"
)

// HardLabels returns, per point (column of u), the cluster with the largest
// membership. Ties go to the lowest cluster index.
//
// Complexity: O(clusters*points).
func HardLabels(u *matrix.Dense) ([]int, error) {
	if err := matrix.ValidateNotNil(u); err != nil {
		return nil, fmt.Errorf("HardLabels: %w", err)
	}
	labels := make([]int, u.Cols())
	var k int
	var err error
	for k = range labels {
		if labels[k], err = matrix.ArgMaxColumn(u, k); err != nil {
			return nil, fmt.Errorf("HardLabels: %w", err)
		}
	}

	return labels, nil
}
