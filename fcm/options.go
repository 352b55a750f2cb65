package fcm

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"
)

// DefaultEpsilon is the convergence tolerance on |J_t − J_{t−1}|.
const DefaultEpsilon = 1e-5

// Option configures Run via functional arguments.
// If an Option is invalid (e.g. negative workers), it is recorded internally
// and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize one run.
type Options struct {
	// Ctx allows cancellation; ctx.Done() is polled between iterations.
	Ctx context.Context

	// Cancel is an external cancellation predicate polled between iterations.
	Cancel func() bool

	// OnIteration is called after every completed iteration with a deep-copied
	// Snapshot. A non-nil error aborts the run and is returned wrapped.
	OnIteration func(Snapshot) error

	// Rand is the random source for the initial membership matrix. When nil,
	// a deterministic stream is derived from Seed.
	Rand *rand.Rand

	// Seed feeds the default random source (0 ⇒ fixed default seed).
	Seed int64

	// Epsilon is the convergence tolerance (> 0).
	Epsilon float64

	// Workers bounds the goroutines used per kernel; 0 or 1 runs sequentially.
	Workers int

	// Degenerate selects the zero-distance policy.
	Degenerate DegeneratePolicy

	// Logger receives structured run/iteration logs.
	Logger *slog.Logger

	// Metrics receives per-iteration and per-run measurements.
	Metrics MetricsCollector

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background(), no cancellation predicate, no hook
//   - deterministic seed policy (Seed 0)
//   - Epsilon 1e-5, sequential kernels, DegenerateFail
//   - discarding logger, no-op metrics
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Cancel:     nil,
		Epsilon:    DefaultEpsilon,
		Workers:    0,
		Degenerate: DegenerateFail,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:    NoopMetricsCollector{},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCancel registers a cancellation predicate polled between iterations.
func WithCancel(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cancel = fn
		}
	}
}

// WithOnIteration registers the end-of-iteration hook; returning an error
// from it stops the run.
func WithOnIteration(fn func(Snapshot) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// WithRand supplies an explicit random source. The run consumes it; do not
// share one *rand.Rand between concurrent runs.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithSeed selects a deterministic random stream (0 ⇒ default seed).
// An explicit WithRand takes precedence.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithEpsilon sets the convergence tolerance.
//
//	eps > 0 and finite: accepted
//	otherwise:          invalid option → ErrOptionViolation
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if !(eps > 0) || math.IsInf(eps, 0) {
			o.err = fmt.Errorf("%w: Epsilon must be a positive finite value (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithWorkers bounds kernel parallelism.
//
//	n > 1:  split center and membership steps across n goroutines
//	n == 0 or 1: sequential
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithDegeneratePolicy selects how zero point-center distances are handled.
func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(o *Options) {
		switch p {
		case DegenerateFail, DegenerateCrisp:
			o.Degenerate = p
		default:
			o.err = fmt.Errorf("%w: unknown degenerate policy %d", ErrOptionViolation, int(p))
		}
	}
}

// WithLogger routes structured logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics registers a metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// resolveOptions applies opts over DefaultOptions and returns the recorded
// violation, if any (the last invalid option wins).
func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
