// Package metrics exports fcm run and iteration measurements to Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/fcm/fcm"
)

// Prometheus implements fcm.MetricsCollector on top of client_golang.
type Prometheus struct {
	runs          *prometheus.CounterVec
	runSeconds    prometheus.Histogram
	iterations    prometheus.Counter
	iterSeconds   prometheus.Histogram
	lastObjective prometheus.Gauge
	lastIteration prometheus.Gauge
}

var _ fcm.MetricsCollector = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them on reg.
// Pass prometheus.DefaultRegisterer to expose them through promhttp.Handler().
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fcm_runs_total",
			Help: "Finished runs by terminal state (error for failed runs)",
		}, []string{"state"}),
		runSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fcm_run_duration_seconds",
			Help:    "Wall time of one run",
			Buckets: prometheus.DefBuckets,
		}),
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fcm_iterations_total",
			Help: "Completed optimizer iterations",
		}),
		iterSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fcm_iteration_duration_seconds",
			Help:    "Wall time of one center/membership/objective step",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		lastObjective: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fcm_objective",
			Help: "Objective of the latest completed iteration",
		}),
		lastIteration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fcm_iteration",
			Help: "Index of the latest completed iteration",
		}),
	}
	for _, c := range []prometheus.Collector{
		p.runs, p.runSeconds, p.iterations, p.iterSeconds, p.lastObjective, p.lastIteration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// RecordIteration implements fcm.MetricsCollector.
func (p *Prometheus) RecordIteration(iteration int, objective float64, d time.Duration) {
	p.iterations.Inc()
	p.iterSeconds.Observe(d.Seconds())
	p.lastObjective.Set(objective)
	p.lastIteration.Set(float64(iteration))
}

// RecordRun implements fcm.MetricsCollector.
func (p *Prometheus) RecordRun(state fcm.State, _ int, d time.Duration, err error) {
	label := state.String()
	if err != nil {
		label = "error"
	}
	p.runs.WithLabelValues(label).Inc()
	p.runSeconds.Observe(d.Seconds())
}
