package report_test

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fcm/builder"
	"github.com/katalvlaran/fcm/fcm"
	"github.com/katalvlaran/fcm/report"
)

var fixedClock = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

func sampleReport(t *testing.T, opts ...report.Option) *report.Report {
	t.Helper()
	pts, _, err := builder.Blobs([][]float64{{0, 0}, {20, 20}}, 10, builder.WithSeed(5))
	require.NoError(t, err)
	res, err := fcm.Run(pts, 2, 30, 2, fcm.WithSeed(5))
	require.NoError(t, err)

	rep, err := report.New(res, pts, report.Meta{Source: "blobs", Fuzziness: 2, Epsilon: fcm.DefaultEpsilon, MaxIter: 30, Seed: 5},
		append(opts, report.WithClock(fixedClock))...)
	require.NoError(t, err)
	return rep
}

func TestNew(t *testing.T) {
	rep := sampleReport(t)
	assert.Equal(t, report.Version, rep.Version)
	assert.Equal(t, 2, rep.Clusters)
	assert.Equal(t, 20, rep.Points)
	assert.Equal(t, 2, rep.Dim)
	assert.Len(t, rep.Objective, rep.Iterations)
	assert.Len(t, rep.Labels, 20)
	assert.Len(t, rep.Trajectories, 2)
	assert.Equal(t, fixedClock(), rep.CreatedAt)
	assert.Nil(t, rep.Memberships)
	assert.GreaterOrEqual(t, rep.Coefficient, 0.5)
	assert.LessOrEqual(t, rep.Coefficient, 1.0)
	assert.GreaterOrEqual(t, rep.Entropy, 0.0)
	assert.NotEqual(t, rep.ID, rep.RunID)

	withU := sampleReport(t, report.WithMemberships())
	require.Len(t, withU.Memberships, 2)
	assert.Len(t, withU.Memberships[0], 20)

	_, err := report.New(nil, nil, report.Meta{})
	assert.ErrorIs(t, err, report.ErrNilResult)
}

func TestNewDoesNotAliasResult(t *testing.T) {
	pts, _, err := builder.Blobs([][]float64{{0, 0}, {20, 20}}, 10, builder.WithSeed(5))
	require.NoError(t, err)
	res, err := fcm.Run(pts, 2, 30, 2, fcm.WithSeed(5))
	require.NoError(t, err)
	want := res.Trajectories[0][0][0]

	rep, err := report.New(res, pts, report.Meta{})
	require.NoError(t, err)
	rep.Trajectories[0][0][0] = want + 100
	rep.Objective[0] = -1
	rep.Labels[0] = 99

	assert.Equal(t, want, res.Trajectories[0][0][0])
	assert.NotEqual(t, -1.0, res.Objective[0])
	assert.NotEqual(t, 99, res.Labels[0])
}

func TestRoundTrip(t *testing.T) {
	rep := sampleReport(t, report.WithMemberships())
	for _, c := range []report.Compression{report.None, report.Gzip, report.Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.Write(&buf, rep, c))
			got, err := report.Read(&buf, c)
			require.NoError(t, err)
			assert.True(t, rep.CreatedAt.Equal(got.CreatedAt))
			got.CreatedAt = rep.CreatedAt
			assert.Equal(t, rep, got)
		})
	}
}

func TestFileSuffixSelectsCompression(t *testing.T) {
	assert.Equal(t, report.Zstd, report.CompressionFor("run.json.zst"))
	assert.Equal(t, report.Gzip, report.CompressionFor("run.json.gz"))
	assert.Equal(t, report.None, report.CompressionFor("run.json"))

	rep := sampleReport(t)
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json.gz", "c.json.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, report.WriteFile(path, rep))
		got, err := report.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, rep.RunID, got.RunID)
		assert.Equal(t, rep.Labels, got.Labels)
	}
}

func TestReadErrors(t *testing.T) {
	_, err := report.Read(bytes.NewBufferString(`{"version": 99}`), report.None)
	assert.ErrorIs(t, err, report.ErrVersion)

	_, err = report.Read(bytes.NewBufferString(`{}`), report.Compression(7))
	assert.ErrorIs(t, err, report.ErrUnknownCompression)

	_, err = report.Read(bytes.NewBufferString("not gzip"), report.Gzip)
	assert.Error(t, err)

	assert.ErrorIs(t, report.Write(&bytes.Buffer{}, nil, report.None), report.ErrNilResult)
	assert.ErrorIs(t, report.Write(&bytes.Buffer{}, sampleReport(t), report.Compression(7)), report.ErrUnknownCompression)
}
