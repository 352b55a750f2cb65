package fcm_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcm/fcm"
	"github.com/katalvlaran/fcm/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return d
}

func TestInitMemberships(t *testing.T) {
	u, err := fcm.InitMemberships(4, 25, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	assert.Equal(t, 4, u.Rows())
	assert.Equal(t, 25, u.Cols())
	require.NoError(t, matrix.ValidateColumnStochastic(u, stochTol))
	u.Do(func(_, _ int, v float64) bool {
		assert.Greater(t, v, 0.0)
		return true
	})

	again, err := fcm.InitMemberships(4, 25, rand.New(rand.NewSource(8)))
	require.NoError(t, err)
	assert.Equal(t, u.ToRows(), again.ToRows())

	// nil rng falls back to the fixed default seed.
	a, err := fcm.InitMemberships(2, 3, nil)
	require.NoError(t, err)
	b, err := fcm.InitMemberships(2, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, a.ToRows(), b.ToRows())

	_, err = fcm.InitMemberships(0, 3, nil)
	assert.ErrorIs(t, err, fcm.ErrTooFewClusters)
	_, err = fcm.InitMemberships(2, 0, nil)
	assert.ErrorIs(t, err, fcm.ErrEmptyDataset)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, fcm.Distance([]float64{0, 0}, []float64{3, 4}))
	assert.Equal(t, 0.0, fcm.Distance([]float64{1, 2, 3}, []float64{1, 2, 3}))
}

func TestComputeCenters(t *testing.T) {
	data := [][]float64{{0, 0}, {2, 0}, {10, 10}}
	u := dense(t, [][]float64{
		{1, 1, 0},
		{0, 0, 1},
	})

	c, err := fcm.ComputeCenters(data, u, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {10, 10}}, c.ToRows())

	// Weighted: u^m with m=2 gives weights 0.25 and 0.0625.
	u = dense(t, [][]float64{{0.5, 0.25, 0}, {0.5, 0.75, 1}})
	c, err = fcm.ComputeCenters(data, u, 2)
	require.NoError(t, err)
	row, _ := c.Row(0)
	assert.InDelta(t, (0.0625*2)/(0.25+0.0625), row[0], 1e-12)
	assert.InDelta(t, 0, row[1], 1e-12)
}

func TestComputeCentersErrors(t *testing.T) {
	data := [][]float64{{0}, {1}}

	_, err := fcm.ComputeCenters(data, dense(t, [][]float64{{1, 1}, {0, 0}}), 2)
	assert.ErrorIs(t, err, fcm.ErrZeroWeight)

	_, err = fcm.ComputeCenters(data, dense(t, [][]float64{{1, 1, 1}}), 2)
	assert.ErrorIs(t, err, fcm.ErrDimensionMismatch)

	_, err = fcm.ComputeCenters(data, nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = fcm.ComputeCenters(data, dense(t, [][]float64{{1, 1}}), 1)
	assert.ErrorIs(t, err, fcm.ErrBadFuzziness)

	_, err = fcm.ComputeCenters(nil, dense(t, [][]float64{{1, 1}}), 2)
	assert.ErrorIs(t, err, fcm.ErrEmptyDataset)
}

func TestUpdateMemberships(t *testing.T) {
	data := [][]float64{{0}, {1}, {3}, {4}}
	centers := dense(t, [][]float64{{0.5}, {3.5}})
	u := dense(t, [][]float64{{0.5, 0.5, 0.5, 0.5}, {0.5, 0.5, 0.5, 0.5}})

	require.NoError(t, fcm.UpdateMemberships(data, centers, u, 2))
	require.NoError(t, matrix.ValidateColumnStochastic(u, stochTol))

	// Point 0: d = 0.5 and 3.5 → u = 1/(1 + (0.5/3.5)²) = 12.25/12.5.
	v, err := u.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 12.25/12.5, v, 1e-12)

	labels, err := fcm.HardLabels(u)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, labels)
}

func TestUpdateMembershipsMatchesRatioRule(t *testing.T) {
	// Compare with the textbook (d/d')^(2/(m-1)) on a generic point.
	x := []float64{1, 2}
	cs := [][]float64{{0, 0}, {3, 1}, {-2, 5}}
	const m = 1.7

	want := make([]float64, len(cs))
	for j := range cs {
		var s float64
		for jj := range cs {
			s += math.Pow(fcm.Distance(x, cs[j])/fcm.Distance(x, cs[jj]), 2/(m-1))
		}
		want[j] = 1 / s
	}

	got, err := fcm.Predict(dense(t, cs), m, x)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, got, 1e-12)
}

func TestUpdateMembershipsTinyScale(t *testing.T) {
	// Distinct points near 1e-170 must not be mistaken for centers; the
	// memberships equal those of the same layout scaled up by 1e170.
	const scale = 1e-170
	layout := [][]float64{{1, 0}, {-1, 0}, {0, 3}}
	clayout := [][]float64{{2, 1}, {-2, 2}}

	scaled := func(rows [][]float64, f float64) [][]float64 {
		out := make([][]float64, len(rows))
		for i, r := range rows {
			out[i] = make([]float64, len(r))
			for k, v := range r {
				out[i][k] = v * f
			}
		}
		return out
	}
	half := [][]float64{{0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}}

	tiny := dense(t, half)
	require.NoError(t, fcm.UpdateMemberships(scaled(layout, scale), dense(t, scaled(clayout, scale)), tiny, 2))

	unit := dense(t, half)
	require.NoError(t, fcm.UpdateMemberships(layout, dense(t, clayout), unit, 2))

	for j, row := range unit.ToRows() {
		assert.InDeltaSlice(t, row, tiny.ToRows()[j], 1e-12)
	}

	u, err := fcm.Predict(dense(t, scaled(clayout, scale)), 2, []float64{scale, 0})
	require.NoError(t, err)
	assert.InDelta(t, 1, u[0]+u[1], stochTol)
}

func TestUpdateMembershipsWorkersMatch(t *testing.T) {
	pts, _ := threeBlobs(t)
	centers := dense(t, [][]float64{{4, 6}, {49, 52}, {91, 88}})

	seq, err := fcm.InitMemberships(3, len(pts), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	par := seq.CloneDense()

	require.NoError(t, fcm.UpdateMemberships(pts, centers, seq, 2))
	require.NoError(t, fcm.UpdateMemberships(pts, centers, par, 2, fcm.WithWorkers(7)))
	assert.Equal(t, seq.ToRows(), par.ToRows())
}

func TestUpdateMembershipsErrors(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}}
	u := dense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})

	err := fcm.UpdateMemberships(data, dense(t, [][]float64{{0, 0}, {5, 5}}), u, 2)
	assert.ErrorIs(t, err, fcm.ErrDegenerate)

	err = fcm.UpdateMemberships(data, dense(t, [][]float64{{0, 0, 0}, {5, 5, 5}}), u, 2)
	assert.ErrorIs(t, err, fcm.ErrDimensionMismatch)

	err = fcm.UpdateMemberships(data, dense(t, [][]float64{{0, 0}}), u, 2)
	assert.ErrorIs(t, err, fcm.ErrDimensionMismatch)

	err = fcm.UpdateMemberships(data, dense(t, [][]float64{{3, 3}, {5, 5}}), u, 2, fcm.WithWorkers(-2))
	assert.ErrorIs(t, err, fcm.ErrOptionViolation)
}

func TestPredict(t *testing.T) {
	centers := dense(t, [][]float64{{0, 0}, {10, 10}})

	got, err := fcm.Predict(centers, 2, []float64{1, 1})
	require.NoError(t, err)
	assert.Greater(t, got[0], got[1])
	assert.InDelta(t, 1, got[0]+got[1], stochTol)

	_, err = fcm.Predict(centers, 2, []float64{0, 0})
	assert.ErrorIs(t, err, fcm.ErrDegenerate)

	got, err = fcm.Predict(centers, 2, []float64{0, 0}, fcm.WithDegeneratePolicy(fcm.DegenerateCrisp))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, got)

	_, err = fcm.Predict(centers, 2, []float64{1})
	assert.ErrorIs(t, err, fcm.ErrDimensionMismatch)
	_, err = fcm.Predict(centers, 2, []float64{math.NaN(), 0})
	assert.ErrorIs(t, err, fcm.ErrNaNInf)
	_, err = fcm.Predict(centers, 0.9, []float64{1, 1})
	assert.ErrorIs(t, err, fcm.ErrBadFuzziness)
}

func TestCrispSplitsAcrossCoincidingCenters(t *testing.T) {
	centers := dense(t, [][]float64{{2, 2}, {7, 7}, {2, 2}})

	got, err := fcm.Predict(centers, 2, []float64{2, 2}, fcm.WithDegeneratePolicy(fcm.DegenerateCrisp))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0, 0.5}, got)
}

func TestObjective(t *testing.T) {
	data := [][]float64{{0}, {2}}
	centers := dense(t, [][]float64{{1}})
	u := dense(t, [][]float64{{1, 1}})

	j, err := fcm.Objective(data, centers, u, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, j)

	// Two clusters, half memberships: Σ 0.25·d².
	centers = dense(t, [][]float64{{0}, {2}})
	u = dense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	j, err = fcm.Objective(data, centers, u, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.25*4+0.25*4, j, 1e-12)

	_, err = fcm.Objective(data, dense(t, [][]float64{{1, 1}}), dense(t, [][]float64{{1, 1}}), 2)
	assert.ErrorIs(t, err, fcm.ErrDimensionMismatch)
}

func TestObjectiveOverflowIsReported(t *testing.T) {
	data := [][]float64{{1e160, 0}, {-1e160, 0}}
	centers := dense(t, [][]float64{{1e160, 0}})
	u := dense(t, [][]float64{{1, 1}})

	_, err := fcm.Objective(data, centers, u, 2)
	assert.ErrorIs(t, err, fcm.ErrNaNInf)
}

func TestHasConverged(t *testing.T) {
	const eps = 1e-5
	assert.False(t, fcm.HasConverged(nil, eps))
	assert.False(t, fcm.HasConverged([]float64{3}, eps))
	assert.True(t, fcm.HasConverged([]float64{9, 5, 5 + 1e-6}, eps))
	assert.True(t, fcm.HasConverged([]float64{5, 5 - 1e-6}, eps))
	assert.False(t, fcm.HasConverged([]float64{5, 6}, eps))
	assert.False(t, fcm.HasConverged([]float64{5, 5 + 2*eps}, eps))
}

func TestHardLabelsTieBreak(t *testing.T) {
	u := dense(t, [][]float64{
		{0.5, 0.2, 1.0 / 3, 0.1},
		{0.5, 0.8, 1.0 / 3, 0.45},
		{0.0, 0.0, 1.0 / 3, 0.45},
	})
	for i := 0; i < 5; i++ {
		labels, err := fcm.HardLabels(u)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 0, 1}, labels)
	}

	_, err := fcm.HardLabels(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidityIndices(t *testing.T) {
	crisp := dense(t, [][]float64{{1, 0, 1}, {0, 1, 0}})
	pc, err := fcm.PartitionCoefficient(crisp)
	require.NoError(t, err)
	assert.Equal(t, 1.0, pc)
	pe, err := fcm.PartitionEntropy(crisp)
	require.NoError(t, err)
	assert.Equal(t, 0.0, pe)

	flat := dense(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}})
	pc, err = fcm.PartitionCoefficient(flat)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pc, 1e-12)
	pe, err = fcm.PartitionEntropy(flat)
	require.NoError(t, err)
	assert.InDelta(t, math.Ln2, pe, 1e-12)

	_, err = fcm.PartitionCoefficient(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
