package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcm/builder"
	"github.com/katalvlaran/fcm/fcm"
	"github.com/katalvlaran/fcm/metrics"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	p, err := metrics.NewPrometheus(reg)
	require.NoError(t, err)

	pts, _ := builder.DemoDiagonal()
	res, err := fcm.Run(pts, 3, 5, 2, fcm.WithMetrics(p), fcm.WithEpsilon(1e-300))
	require.NoError(t, err)
	require.Equal(t, fcm.Exhausted, res.State)
	_, err = fcm.Run(nil, 3, 5, 2, fcm.WithMetrics(p))
	require.Error(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]float64{}
	runStates := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch mf.GetName() {
			case "fcm_runs_total":
				runStates[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
			case "fcm_iterations_total":
				byName[mf.GetName()] = m.GetCounter().GetValue()
			case "fcm_iteration", "fcm_objective":
				byName[mf.GetName()] = m.GetGauge().GetValue()
			}
		}
	}

	assert.Equal(t, map[string]float64{"exhausted": 1, "error": 1}, runStates)
	assert.Equal(t, 5.0, byName["fcm_iterations_total"])
	assert.Equal(t, 4.0, byName["fcm_iteration"])
	assert.Equal(t, res.Objective[4], byName["fcm_objective"])

	n, err := testutil.GatherAndCount(reg, "fcm_run_duration_seconds", "fcm_iteration_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestPrometheusDoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewPrometheus(reg)
	require.NoError(t, err)
	_, err = metrics.NewPrometheus(reg)
	assert.Error(t, err)
}
