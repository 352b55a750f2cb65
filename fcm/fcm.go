package fcm

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/fcm/matrix"
)

// optimizer encapsulates the mutable state of one run.
type optimizer struct {
	data     [][]float64
	clusters int
	maxIter  int
	m        float64
	opts     Options
	log      *slog.Logger
	runID    uuid.UUID
	state    State

	u       *matrix.Dense // clusters×points, updated in place
	centers *matrix.Dense // clusters×D, recomputed every iteration
	traj    *Trajectory
	history []float64
}

// Run clusters data into the given number of fuzzy clusters.
//
// The loop stops when the objective changes by less than the tolerance
// (Converged), after maxIter iterations (Exhausted), or when the cancellation
// predicate or context fires between iterations (Cancelled). Every terminal
// state returns a complete Result; cancellation is not an error.
//
// Errors:
//   - ErrOptionViolation for invalid options.
//   - ErrEmptyDataset, ErrRaggedDataset, ErrNaNInf for an invalid dataset.
//   - ErrTooFewClusters, ErrTooFewIterations, ErrBadFuzziness for invalid parameters.
//   - ErrDegenerate, ErrZeroWeight, ErrNaNInf for numeric breakdown mid-run.
//   - the OnIteration hook's error, wrapped.
func Run(data [][]float64, clusters, maxIter int, m float64, opts ...Option) (*Result, error) {
	start := time.Now()
	o, err := resolveOptions(opts)
	if err != nil {
		o.Metrics.RecordRun(Idle, 0, time.Since(start), err)
		return nil, err
	}
	if err = validateRun(data, clusters, maxIter, m); err != nil {
		o.Metrics.RecordRun(Idle, 0, time.Since(start), err)
		return nil, err
	}

	op := &optimizer{
		data:     data,
		clusters: clusters,
		maxIter:  maxIter,
		m:        m,
		opts:     o,
		runID:    uuid.New(),
		state:    Idle,
		history:  make([]float64, 0, maxIter),
	}
	op.log = o.Logger.With("run_id", op.runID.String())
	op.log.Debug("fcm run starting",
		"points", len(data), "dim", len(data[0]), "clusters", clusters,
		"max_iter", maxIter, "m", m, "eps", o.Epsilon, "workers", o.Workers,
		"degenerate", o.Degenerate.String())

	res, err := op.run()
	elapsed := time.Since(start)
	o.Metrics.RecordRun(op.state, len(op.history), elapsed, err)
	if err != nil {
		op.log.Error("fcm run failed",
			"state", op.state.String(), "iterations", len(op.history), "elapsed", elapsed, "error", err)
		return nil, err
	}
	op.log.Info("fcm run finished",
		"state", res.State.String(), "iterations", res.Iterations, "objective", lastOr(res.Objective, math.NaN()),
		"elapsed", elapsed)

	return res, nil
}

// validateRun rejects bad parameters before anything is allocated.
func validateRun(data [][]float64, clusters, maxIter int, m float64) error {
	if _, err := validateDataset(data); err != nil {
		return fmt.Errorf("Run: %w", err)
	}
	if clusters < 1 {
		return fmt.Errorf("Run: clusters=%d: %w", clusters, ErrTooFewClusters)
	}
	if maxIter < 1 {
		return fmt.Errorf("Run: maxIter=%d: %w", maxIter, ErrTooFewIterations)
	}
	if err := validateFuzziness(m); err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	return nil
}

// run walks the state machine from Initializing to a terminal state.
func (op *optimizer) run() (*Result, error) {
	var err error
	op.state = Initializing
	if op.u, err = InitMemberships(op.clusters, len(op.data), resolveRNG(op.opts)); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if op.centers, err = matrix.NewDense(op.clusters, len(op.data[0])); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if op.traj, err = NewTrajectory(op.clusters); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	op.state = Iterating
	if op.cancelled() {
		// Nothing completed: report centers of the initial memberships, empty trajectory.
		if err = computeCenters(op.data, op.u, op.m, op.centers, op.opts.Workers); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		op.state = Cancelled
		return op.result()
	}

	var t int
	var converged bool
	for t = 0; ; t++ {
		if converged, err = op.iterate(t); err != nil {
			return nil, err
		}
		switch {
		case converged:
			op.state = Converged
		case op.cancelled():
			op.state = Cancelled
		case t+1 >= op.maxIter:
			op.state = Exhausted
		default:
			continue
		}

		return op.result()
	}
}

// iterate performs one center → membership → objective step and publishes
// the snapshot. It reports the convergence predicate for iteration t.
func (op *optimizer) iterate(t int) (bool, error) {
	iterStart := time.Now()
	if err := computeCenters(op.data, op.u, op.m, op.centers, op.opts.Workers); err != nil {
		return false, fmt.Errorf("Run: iteration %d: %w", t, err)
	}
	if err := op.traj.Append(op.centers); err != nil {
		return false, fmt.Errorf("Run: iteration %d: %w", t, err)
	}
	if err := updateMemberships(op.data, op.centers, op.u, op.m, op.opts.Degenerate, op.opts.Workers); err != nil {
		return false, fmt.Errorf("Run: iteration %d: %w", t, err)
	}
	j, err := objective(op.data, op.centers, op.u, op.m)
	if err != nil {
		return false, fmt.Errorf("Run: iteration %d: %w", t, err)
	}
	op.history = append(op.history, j)

	var delta float64
	if t > 0 {
		delta = math.Abs(j - op.history[t-1])
	}
	converged := HasConverged(op.history, op.opts.Epsilon)

	op.opts.Metrics.RecordIteration(t, j, time.Since(iterStart))
	op.log.Debug("fcm iteration",
		"iter", t, "objective", j, "delta", delta, "converged", converged)

	if op.opts.OnIteration != nil {
		snap := Snapshot{
			Iteration:    t,
			Objective:    j,
			Delta:        delta,
			Converged:    converged,
			Memberships:  op.u.CloneDense(),
			Centers:      op.centers.CloneDense(),
			Trajectories: op.traj.Snapshot(),
		}
		if err = op.opts.OnIteration(snap); err != nil {
			return false, fmt.Errorf("fcm: OnIteration error at iteration %d: %w", t, err)
		}
	}

	return converged, nil
}

// cancelled polls the context and the cancellation predicate.
func (op *optimizer) cancelled() bool {
	select {
	case <-op.opts.Ctx.Done():
		return true
	default:
	}

	return op.opts.Cancel != nil && op.opts.Cancel()
}

// result packages the run's owned state; nothing is shared with the optimizer afterwards.
func (op *optimizer) result() (*Result, error) {
	labels, err := HardLabels(op.u)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	return &Result{
		RunID:        op.runID,
		State:        op.state,
		Iterations:   len(op.history),
		Memberships:  op.u,
		Centers:      op.centers,
		Trajectories: op.traj.Snapshot(),
		Objective:    op.history,
		Labels:       labels,
	}, nil
}

func lastOr(xs []float64, def float64) float64 {
	if len(xs) == 0 {
		return def
	}

	return xs[len(xs)-1]
}
