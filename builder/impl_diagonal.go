// SPDX-License-Identifier: MIT
// Package: fcm/builder
//
// impl_diagonal.go - deterministic diagonal bands.

package builder

import (
	"math"
)

func buildDiagonal(perGroup int, step float64, offsets []float64, cfg builderConfig) ([][]float64, []int, error) {
	if perGroup < 1 {
		return nil, nil, builderErrorf(MethodDiagonal, "perGroup=%d: %w", perGroup, ErrBadSize)
	}
	if len(offsets) == 0 {
		return nil, nil, builderErrorf(MethodDiagonal, "no offsets: %w", ErrBadSize)
	}
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, nil, builderErrorf(MethodDiagonal, "step=%g: %w", step, ErrInvalidValue)
	}
	var g int
	for g = range offsets {
		if math.IsNaN(offsets[g]) || math.IsInf(offsets[g], 0) {
			return nil, nil, builderErrorf(MethodDiagonal, "offset %d=%g: %w", g, offsets[g], ErrInvalidValue)
		}
	}
	if cfg.shuffle && cfg.rng == nil {
		return nil, nil, builderErrorf(MethodDiagonal, "shuffle: %w", ErrNeedRandSource)
	}

	total := perGroup * len(offsets)
	points := make([][]float64, 0, total)
	labels := make([]int, 0, total)
	var i int
	var v float64
	for g = range offsets {
		for i = 0; i < perGroup; i++ {
			v = float64(i+1)*step + offsets[g]
			points = append(points, []float64{v, v})
			labels = append(labels, g)
		}
	}
	if cfg.shuffle {
		shuffleTogether(cfg, points, labels)
	}

	return points, labels, nil
}
