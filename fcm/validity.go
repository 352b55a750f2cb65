package fcm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/fcm/matrix"
)

// PartitionCoefficient is Bezdek's V_PC = (1/n) Σ_j Σ_k u_jk².
// It lies in [1/c, 1]; 1 means a crisp partition.
func PartitionCoefficient(u *matrix.Dense) (float64, error) {
	if err := matrix.ValidateNotNil(u); err != nil {
		return 0, fmt.Errorf("PartitionCoefficient: %w", err)
	}
	var total float64
	for _, row := range rowViews(u) {
		total += floats.Dot(row, row)
	}

	return total / float64(u.Cols()), nil
}

// PartitionEntropy is V_PE = −(1/n) Σ_j Σ_k u_jk · ln u_jk, with 0·ln 0 = 0.
// It lies in [0, ln c]; 0 means a crisp partition.
func PartitionEntropy(u *matrix.Dense) (float64, error) {
	if err := matrix.ValidateNotNil(u); err != nil {
		return 0, fmt.Errorf("PartitionEntropy: %w", err)
	}
	var total float64
	var v float64
	for _, row := range rowViews(u) {
		for _, v = range row {
			if v > 0 {
				total -= v * math.Log(v)
			}
		}
	}

	return total / float64(u.Cols()), nil
}
