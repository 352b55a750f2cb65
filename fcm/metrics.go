package fcm

import (
	"math"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting optimizer metrics.
// Implement it to integrate with a monitoring system.
type MetricsCollector interface {
	// RecordIteration is called after each completed iteration.
	RecordIteration(iteration int, objective float64, duration time.Duration)

	// RecordRun is called once per Run. state is Idle when the run failed
	// before iterating; err is nil unless the run failed.
	RecordRun(state State, iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(int, float64, time.Duration) {}
func (NoopMetricsCollector) RecordRun(State, int, time.Duration, error)   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Safe for concurrent runs.
type BasicMetricsCollector struct {
	RunCount       atomic.Int64
	RunErrors      atomic.Int64
	ConvergedRuns  atomic.Int64
	ExhaustedRuns  atomic.Int64
	CancelledRuns  atomic.Int64
	RunTotalNanos  atomic.Int64
	IterationCount atomic.Int64
	IterationNanos atomic.Int64

	lastObjective atomic.Uint64 // math.Float64bits of the latest objective
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_ int, objective float64, d time.Duration) {
	b.IterationCount.Add(1)
	b.IterationNanos.Add(int64(d))
	b.lastObjective.Store(math.Float64bits(objective))
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(state State, _ int, d time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(int64(d))
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	switch state {
	case Converged:
		b.ConvergedRuns.Add(1)
	case Exhausted:
		b.ExhaustedRuns.Add(1)
	case Cancelled:
		b.CancelledRuns.Add(1)
	}
}

// MetricsStats is a point-in-time copy of BasicMetricsCollector.
type MetricsStats struct {
	Runs                 int64
	RunErrors            int64
	Converged            int64
	Exhausted            int64
	Cancelled            int64
	Iterations           int64
	AvgIterationDuration time.Duration
	AvgRunDuration       time.Duration
	LastObjective        float64
}

// GetStats returns a snapshot of the counters with derived averages.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	s := MetricsStats{
		Runs:          b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		Converged:     b.ConvergedRuns.Load(),
		Exhausted:     b.ExhaustedRuns.Load(),
		Cancelled:     b.CancelledRuns.Load(),
		Iterations:    b.IterationCount.Load(),
		LastObjective: math.Float64frombits(b.lastObjective.Load()),
	}
	if s.Iterations > 0 {
		s.AvgIterationDuration = time.Duration(b.IterationNanos.Load() / s.Iterations)
	}
	if s.Runs > 0 {
		s.AvgRunDuration = time.Duration(b.RunTotalNanos.Load() / s.Runs)
	}
	return s
}
