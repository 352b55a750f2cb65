// SPDX-License-Identifier: MIT
// Package: fcm/builder
//
// impl_blobs.go - isotropic Gaussian blobs.
//
// Draw order (fixed, golden-friendly):
//   cluster 0 point 0 coords 0..D-1, cluster 0 point 1, ..., cluster C-1 point P-1,
//   then the optional shuffle.

package builder

import (
	"math"
)

func buildBlobs(centers [][]float64, perCluster int, cfg builderConfig) ([][]float64, []int, error) {
	if len(centers) == 0 {
		return nil, nil, builderErrorf(MethodBlobs, "no centers: %w", ErrBadSize)
	}
	if perCluster < 1 {
		return nil, nil, builderErrorf(MethodBlobs, "perCluster=%d: %w", perCluster, ErrBadSize)
	}
	dim := len(centers[0])
	if dim == 0 {
		return nil, nil, builderErrorf(MethodBlobs, "zero-width center: %w", ErrBadSize)
	}
	var c, k int
	for c = range centers {
		if len(centers[c]) != dim {
			return nil, nil, builderErrorf(MethodBlobs, "center %d has %d coords, want %d: %w",
				c, len(centers[c]), dim, ErrDimensionMismatch)
		}
		for k = range centers[c] {
			if math.IsNaN(centers[c][k]) || math.IsInf(centers[c][k], 0) {
				return nil, nil, builderErrorf(MethodBlobs, "center %d coord %d: %w", c, k, ErrInvalidValue)
			}
		}
	}
	if cfg.rng == nil {
		return nil, nil, builderErrorf(MethodBlobs, "%w", ErrNeedRandSource)
	}

	total := len(centers) * perCluster
	points := make([][]float64, 0, total)
	labels := make([]int, 0, total)
	var i int
	for c = range centers {
		for i = 0; i < perCluster; i++ {
			p := make([]float64, dim)
			for k = 0; k < dim; k++ {
				p[k] = centers[c][k] + cfg.rng.NormFloat64()*cfg.sigma
			}
			points = append(points, p)
			labels = append(labels, c)
		}
	}
	if cfg.shuffle {
		shuffleTogether(cfg, points, labels)
	}

	return points, labels, nil
}

// shuffleTogether permutes points and labels with the same swaps.
// cfg.rng must be non-nil.
func shuffleTogether(cfg builderConfig, points [][]float64, labels []int) {
	cfg.rng.Shuffle(len(points), func(a, b int) {
		points[a], points[b] = points[b], points[a]
		labels[a], labels[b] = labels[b], labels[a]
	})
}
