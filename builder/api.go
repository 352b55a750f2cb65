// SPDX-License-Identifier: MIT
// Package: fcm/builder
//
// api.go - public entry points; implementations live in impl_*.go.
//
// Contract:
//   - Every generator returns (points, labels, error); labels[i] is the
//     zero-based group of points[i].
//   - Returned slices are freshly allocated and owned by the caller.
//   - Same inputs/options/seed ⇒ identical output.

package builder

// Method names used as error context prefixes.
const (
	MethodBlobs    = "Blobs"
	MethodDiagonal = "Diagonal"
)

// Blobs draws perCluster points around every center from an isotropic
// Gaussian with standard deviation sigma (WithSigma, default 1).
//
// Errors: ErrBadSize, ErrDimensionMismatch, ErrInvalidValue, ErrNeedRandSource.
// Complexity: O(len(centers)*perCluster*D).
func Blobs(centers [][]float64, perCluster int, opts ...BuilderOption) ([][]float64, []int, error) {
	return buildBlobs(centers, perCluster, newBuilderConfig(opts...))
}

// Diagonal returns one group per offset; point i of a group sits at
// ((i+1)*step + offset, (i+1)*step + offset).
//
// Errors: ErrBadSize, ErrInvalidValue, ErrNeedRandSource (WithShuffle without RNG).
// Complexity: O(len(offsets)*perGroup).
func Diagonal(perGroup int, step float64, offsets []float64, opts ...BuilderOption) ([][]float64, []int, error) {
	return buildDiagonal(perGroup, step, offsets, newBuilderConfig(opts...))
}

// DemoDiagonal is the three overlapping diagonal bands (20 points each,
// step 5, offsets 0, 10, 15) used by the classic FCM demo.
func DemoDiagonal() ([][]float64, []int) {
	pts, labels, _ := Diagonal(demoPerGroup, demoStep, []float64{0, 10, 15})
	return pts, labels
}

const (
	demoPerGroup = 20
	demoStep     = 5.0
)
