// Package fcm implements Fuzzy C-Means clustering over fixed-length numeric
// vectors, with per-iteration center trajectories and cooperative cancellation.
//
// What
//
//   - Run drives the optimization loop for one dataset:
//     initial random memberships → repeat { centers, trajectory append,
//     membership update, objective, convergence check } until the objective
//     stabilizes, the iteration limit is reached, or the caller cancels.
//   - Every run owns its MembershipMatrix (clusters×points), CenterSet
//     (clusters×D), objective history and Trajectory; nothing is shared
//     between runs and the dataset is only read.
//   - The Result carries the terminal State (Converged, Exhausted, Cancelled),
//     the final memberships and centers, the full center trajectories, the
//     objective history and hard labels (argmax membership, ties → lowest index).
//   - The building blocks are exported for callers that need them separately:
//     InitMemberships, ComputeCenters, Distance, UpdateMemberships, Objective,
//     HasConverged, HardLabels, Predict, PartitionCoefficient, PartitionEntropy.
//
// Math
//
//	centroid_j = Σ_i u_ij^m · x_i / Σ_i u_ij^m
//	u_jk       = 1 / Σ_j' ( d(x_k,c_j) / d(x_k,c_j') )^(2/(m-1))
//	J          = Σ_j Σ_k u_jk^m · d(x_k,c_j)^2
//	converged  ⇔ t ≥ 1 and |J_t − J_{t−1}| < ε   (ε defaults to 1e-5)
//
// Degenerate states
//
//	A point that coincides with a center (zero distance) and a cluster with
//	zero total weight have no defined update. By default Run aborts with
//	ErrDegenerate / ErrZeroWeight instead of propagating NaN. The opt-in
//	DegenerateCrisp policy gives a coinciding point full membership, split
//	evenly across every center it coincides with.
//
// Concurrency
//
//	One run is strictly sequential across iterations. Inside an iteration the
//	center step (per cluster) and the membership step (per point) can be split
//	across goroutines with WithWorkers; results are bit-identical to the
//	sequential path because every worker writes disjoint entries and keeps the
//	summation order fixed.
//
//	The OnIteration hook receives a Snapshot (deep copies) at the end of every
//	iteration; it can never observe or mutate live state. Cancellation
//	(WithCancel predicate or WithContext) is polled between iterations only.
//
// Usage
//
//	res, err := fcm.Run(points, 3, 50, 2.0,
//	    fcm.WithSeed(42),
//	    fcm.WithWorkers(4),
//	    fcm.WithOnIteration(func(s fcm.Snapshot) error {
//	        log.Printf("iter=%d J=%.6f", s.Iteration, s.Objective)
//	        return nil
//	    }),
//	)
//	if err != nil {
//	    // ErrEmptyDataset, ErrTooFewClusters, ErrBadFuzziness, ErrDegenerate, ...
//	}
//	fmt.Println(res.State, res.Labels)
//
// Errors
//
//   - ErrEmptyDataset, ErrRaggedDataset, ErrNaNInf     invalid dataset.
//   - ErrTooFewClusters, ErrTooFewIterations, ErrBadFuzziness invalid parameters.
//   - ErrOptionViolation                                invalid Option value.
//   - ErrDegenerate, ErrZeroWeight                      numeric degeneracy mid-run.
//   - ErrDimensionMismatch                              shape mismatch in helpers.
//   - Wrapped errors returned by the OnIteration hook.
package fcm
