package fcm

import (
	"fmt"

	"github.com/katalvlaran/fcm/matrix"
)

// Trajectory is a per-cluster append-only log of center positions, one entry
// per iteration. It has no effect on the optimization; it exists so callers
// can draw how centers moved.
//
// A Trajectory is owned by one run and is not safe for concurrent use; hand
// Snapshot() copies to other goroutines.
type Trajectory struct {
	paths [][][]float64 // cluster → iteration → D
	dim   int           // fixed by the first Append; 0 while empty
}

// NewTrajectory returns an empty recorder for the given number of clusters.
func NewTrajectory(clusters int) (*Trajectory, error) {
	if clusters < 1 {
		return nil, fmt.Errorf("NewTrajectory: clusters=%d: %w", clusters, ErrTooFewClusters)
	}

	return &Trajectory{paths: make([][][]float64, clusters)}, nil
}

// Append records one row of centers per cluster. The rows are copied.
func (t *Trajectory) Append(centers *matrix.Dense) error {
	if err := matrix.ValidateNotNil(centers); err != nil {
		return fmt.Errorf("Trajectory.Append: %w", err)
	}
	if centers.Rows() != len(t.paths) || (t.dim != 0 && centers.Cols() != t.dim) {
		return fmt.Errorf("Trajectory.Append: centers %dx%d, want %d rows of width %d: %w",
			centers.Rows(), centers.Cols(), len(t.paths), t.dim, ErrDimensionMismatch)
	}
	t.dim = centers.Cols()
	var j int
	for j = range t.paths {
		row, _ := centers.Row(j)
		t.paths[j] = append(t.paths[j], row)
	}

	return nil
}

// Len returns the number of recorded iterations.
func (t *Trajectory) Len() int {
	if len(t.paths) == 0 {
		return 0
	}

	return len(t.paths[0])
}

// Clusters returns the number of recorded clusters.
func (t *Trajectory) Clusters() int { return len(t.paths) }

// Path returns a copy of cluster j's center positions in iteration order.
func (t *Trajectory) Path(j int) ([][]float64, error) {
	if j < 0 || j >= len(t.paths) {
		return nil, fmt.Errorf("Trajectory.Path(%d): %w", j, matrix.ErrOutOfRange)
	}

	return clonePath(t.paths[j]), nil
}

// Snapshot returns a deep copy of every path (cluster → iteration → D).
func (t *Trajectory) Snapshot() [][][]float64 {
	out := make([][][]float64, len(t.paths))
	var j int
	for j = range t.paths {
		out[j] = clonePath(t.paths[j])
	}

	return out
}

// Reset clears all paths, keeping the cluster count.
func (t *Trajectory) Reset() {
	var j int
	for j = range t.paths {
		t.paths[j] = nil
	}
	t.dim = 0
}

func clonePath(p [][]float64) [][]float64 {
	out := make([][]float64, len(p))
	var i int
	for i = range p {
		out[i] = append([]float64(nil), p[i]...)
	}

	return out
}
