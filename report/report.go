package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/fcm/fcm"
)

// Version is the document format version written into every report.
const Version = 1

var (
	// ErrNilResult indicates New was called without a result.
	ErrNilResult = errors.New("report: nil result")
	// ErrUnknownCompression indicates an unsupported Compression value.
	ErrUnknownCompression = errors.New("report: unknown compression")
	// ErrVersion indicates a document written by an unsupported format version.
	ErrVersion = errors.New("report: unsupported version")
)

// Meta records the run parameters that are not part of fcm.Result.
type Meta struct {
	Source    string  `json:"source,omitempty"`
	Fuzziness float64 `json:"m"`
	Epsilon   float64 `json:"epsilon"`
	MaxIter   int     `json:"max_iter"`
	Seed      int64   `json:"seed"`
	Workers   int     `json:"workers,omitempty"`
}

// Report is the persisted form of one run.
type Report struct {
	Version      int           `json:"version"`
	ID           uuid.UUID     `json:"id"`
	RunID        uuid.UUID     `json:"run_id"`
	CreatedAt    time.Time     `json:"created_at"`
	State        string        `json:"state"`
	Iterations   int           `json:"iterations"`
	Clusters     int           `json:"clusters"`
	Points       int           `json:"points"`
	Dim          int           `json:"dim"`
	Meta         Meta          `json:"meta"`
	Objective    []float64     `json:"objective"`
	Centers      [][]float64   `json:"centers"`
	Trajectories [][][]float64 `json:"trajectories"`
	Labels       []int         `json:"labels"`
	Coefficient  float64       `json:"partition_coefficient"`
	Entropy      float64       `json:"partition_entropy"`
	Memberships  [][]float64   `json:"memberships,omitempty"`
}

// Option configures New.
type Option func(*options)

type options struct {
	memberships bool
	now         func() time.Time
}

// WithMemberships embeds the full clusters×points membership matrix.
func WithMemberships() Option {
	return func(o *options) { o.memberships = true }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// New builds a Report from a finished run. data is the clustered dataset and
// only contributes its size.
func New(res *fcm.Result, data [][]float64, meta Meta, opts ...Option) (*Report, error) {
	if res == nil || res.Memberships == nil || res.Centers == nil {
		return nil, fmt.Errorf("New: %w", ErrNilResult)
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	pc, err := fcm.PartitionCoefficient(res.Memberships)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	pe, err := fcm.PartitionEntropy(res.Memberships)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	rep := &Report{
		Version:      Version,
		ID:           uuid.New(),
		RunID:        res.RunID,
		CreatedAt:    o.now().UTC(),
		State:        res.State.String(),
		Iterations:   res.Iterations,
		Clusters:     res.Centers.Rows(),
		Points:       len(data),
		Dim:          res.Centers.Cols(),
		Meta:         meta,
		Objective:    append([]float64(nil), res.Objective...),
		Centers:      res.Centers.ToRows(),
		Trajectories: copyTrajectories(res.Trajectories),
		Labels:       append([]int(nil), res.Labels...),
		Coefficient:  pc,
		Entropy:      pe,
	}
	if o.memberships {
		rep.Memberships = res.Memberships.ToRows()
	}
	return rep, nil
}

// copyTrajectories deep-copies cluster → iteration → D paths.
func copyTrajectories(src [][][]float64) [][][]float64 {
	if src == nil {
		return nil
	}
	out := make([][][]float64, len(src))
	for j, path := range src {
		out[j] = make([][]float64, len(path))
		for i, c := range path {
			out[j][i] = append([]float64(nil), c...)
		}
	}
	return out
}
