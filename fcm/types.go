package fcm

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/fcm/matrix"
)

// State is the lifecycle position of one optimization run.
//
//	Idle → Initializing → Iterating → Converged | Exhausted | Cancelled
//
// Only the three terminal states ever appear in a Result.
type State int

const (
	// Idle: parameters not yet validated.
	Idle State = iota
	// Initializing: memberships being drawn and normalized.
	Initializing
	// Iterating: inside the center/membership/objective loop.
	Iterating
	// Converged: |J_t − J_{t−1}| < ε observed before the iteration limit stopped the loop.
	Converged
	// Exhausted: the iteration limit was reached without convergence.
	Exhausted
	// Cancelled: the cancellation signal was observed between iterations.
	Cancelled
)

var stateNames = [...]string{
	Idle:         "idle",
	Initializing: "initializing",
	Iterating:    "iterating",
	Converged:    "converged",
	Exhausted:    "exhausted",
	Cancelled:    "cancelled",
}

// String returns the lower-case state name ("converged", ...).
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == Converged || s == Exhausted || s == Cancelled
}

// Snapshot is the read-only view handed to the OnIteration hook after each
// completed iteration. Every field is a deep copy owned by the receiver.
type Snapshot struct {
	// Iteration is the zero-based index of the iteration that just completed.
	Iteration int
	// Objective is J for this iteration.
	Objective float64
	// Delta is |J_t − J_{t−1}|; zero on the first iteration.
	Delta float64
	// Converged is the convergence predicate evaluated for this iteration.
	Converged bool
	// Memberships is the clusters×points membership matrix after the update.
	Memberships *matrix.Dense
	// Centers is the clusters×D center set computed in this iteration.
	Centers *matrix.Dense
	// Trajectories holds, per cluster, every center recorded so far (Iteration+1 entries).
	Trajectories [][][]float64
}

// Labels derives hard labels from the snapshot memberships.
func (s Snapshot) Labels() ([]int, error) {
	return HardLabels(s.Memberships)
}

// Result is the artifact of one run. Its shape is the same for every terminal
// state; State only tells how the loop ended.
type Result struct {
	// RunID tags the run in logs and reports.
	RunID uuid.UUID
	// State is Converged, Exhausted or Cancelled.
	State State
	// Iterations is the number of completed iterations (len(Objective)).
	Iterations int
	// Memberships is the final clusters×points membership matrix.
	Memberships *matrix.Dense
	// Centers is the final clusters×D center set.
	Centers *matrix.Dense
	// Trajectories holds per cluster one center per completed iteration.
	Trajectories [][][]float64
	// Objective is the objective history, one value per completed iteration.
	Objective []float64
	// Labels holds the hard label (cluster index) per point.
	Labels []int
}

// DegeneratePolicy selects how a zero distance between a point and a center is handled.
type DegeneratePolicy int

const (
	// DegenerateFail aborts the run with ErrDegenerate.
	DegenerateFail DegeneratePolicy = iota
	// DegenerateCrisp gives the point membership 1/z in each of the z centers it
	// coincides with and 0 elsewhere.
	DegenerateCrisp
)

// String returns "fail" or "crisp".
func (p DegeneratePolicy) String() string {
	switch p {
	case DegenerateFail:
		return "fail"
	case DegenerateCrisp:
		return "crisp"
	default:
		return "unknown"
	}
}
