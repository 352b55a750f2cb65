package fcm_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcm/fcm"
)

func TestDefaultOptions(t *testing.T) {
	o := fcm.DefaultOptions()
	assert.Equal(t, context.Background(), o.Ctx)
	assert.Nil(t, o.Cancel)
	assert.Nil(t, o.OnIteration)
	assert.Nil(t, o.Rand)
	assert.Equal(t, fcm.DefaultEpsilon, o.Epsilon)
	assert.Equal(t, 0, o.Workers)
	assert.Equal(t, fcm.DegenerateFail, o.Degenerate)
	require.NotNil(t, o.Logger)
	assert.Equal(t, fcm.NoopMetricsCollector{}, o.Metrics)
}

func TestOptionsNilArgumentsAreIgnored(t *testing.T) {
	o := fcm.DefaultOptions()
	for _, opt := range []fcm.Option{
		fcm.WithContext(nil), //nolint:staticcheck // nil is the case under test
		fcm.WithCancel(nil),
		fcm.WithOnIteration(nil),
		fcm.WithRand(nil),
		fcm.WithLogger(nil),
		fcm.WithMetrics(nil),
	} {
		opt(&o)
	}
	assert.Equal(t, context.Background(), o.Ctx)
	assert.Nil(t, o.Cancel)
	assert.NotNil(t, o.Logger)
	assert.NotNil(t, o.Metrics)
}

func TestOptionsApply(t *testing.T) {
	o := fcm.DefaultOptions()
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, opt := range []fcm.Option{
		fcm.WithEpsilon(1e-3),
		fcm.WithWorkers(4),
		fcm.WithSeed(77),
		fcm.WithDegeneratePolicy(fcm.DegenerateCrisp),
		fcm.WithLogger(l),
	} {
		opt(&o)
	}
	assert.Equal(t, 1e-3, o.Epsilon)
	assert.Equal(t, 4, o.Workers)
	assert.Equal(t, int64(77), o.Seed)
	assert.Equal(t, fcm.DegenerateCrisp, o.Degenerate)
	assert.Same(t, l, o.Logger)
}

func TestWithEpsilonRejects(t *testing.T) {
	for _, eps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := fcm.Run([][]float64{{1}}, 1, 1, 2, fcm.WithEpsilon(eps))
		assert.ErrorIs(t, err, fcm.ErrOptionViolation, "eps=%g", eps)
	}
}

func TestStateAndPolicyNames(t *testing.T) {
	names := map[fcm.State]string{
		fcm.Idle:         "idle",
		fcm.Initializing: "initializing",
		fcm.Iterating:    "iterating",
		fcm.Converged:    "converged",
		fcm.Exhausted:    "exhausted",
		fcm.Cancelled:    "cancelled",
		fcm.State(42):    "unknown",
	}
	for s, want := range names {
		assert.Equal(t, want, s.String())
	}
	assert.True(t, fcm.Converged.Terminal())
	assert.True(t, fcm.Cancelled.Terminal())
	assert.False(t, fcm.Iterating.Terminal())

	assert.Equal(t, "fail", fcm.DegenerateFail.String())
	assert.Equal(t, "crisp", fcm.DegenerateCrisp.String())
	assert.Equal(t, "unknown", fcm.DegeneratePolicy(5).String())
}
