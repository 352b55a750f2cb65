// Package fcm is a fuzzy clustering toolkit: a Fuzzy C-Means optimizer with
// observable iterations, plus the plumbing to feed it data and look at what
// it did.
//
// 🚀 What is in the box?
//
//	• Optimizer: soft memberships, weighted centers, objective history,
//	  convergence / exhaustion / cancellation as terminal states
//	• Hooks: a deep-copied Snapshot after every iteration (live plots, pacing)
//	• Trajectories: every center position ever computed, per cluster
//	• Data: CSV in, labeled CSV out, synthetic blobs and diagonal bands
//	• Output: HTML scatter plots, JSON run reports (gzip / zstd)
//	• Telemetry: slog logging, in-memory or Prometheus metrics
//
// ✨ Why fcm?
//
//   - Deterministic – same seed ⇒ same result, for any worker count
//   - Explicit failure – degenerate distances and zero weights are errors, not NaNs
//   - Small API – Run, Predict, HardLabels and a handful of options
//
// Packages:
//
//	fcm/      - the optimizer, kernels, validity indices, trajectories
//	matrix/   - dense row-major matrices + column-stochastic helpers
//	builder/  - deterministic synthetic datasets (blobs, diagonal bands)
//	dataset/  - CSV loading and labeled export
//	plot/     - go-echarts scatter + trajectory rendering
//	report/   - versioned JSON run reports with optional compression
//	metrics/  - Prometheus collector for the optimizer
//	cmd/fcm/  - command-line driver tying the above together
//
// Quick start:
//
//	data, _ := builder.DemoDiagonal()
//	res, err := fcm.Run(data, 3, 100, 2.0, fcm.WithSeed(42))
//	if err != nil { ... }
//	fmt.Println(res.State, res.Labels)
//
//	go install github.com/katalvlaran/fcm/cmd/fcm@latest
package fcm
