package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/fcm/builder"
	"github.com/katalvlaran/fcm/dataset"
	"github.com/katalvlaran/fcm/fcm"
	"github.com/katalvlaran/fcm/metrics"
	"github.com/katalvlaran/fcm/plot"
	"github.com/katalvlaran/fcm/report"
)

const (
	blobsPerCluster = 30
	blobsRadius     = 30.0
	blobsSigma      = 4.0
)

// run executes one clustering job described by cfg. Progress goes to the
// logger on stderr, the summary to stdout.
func run(ctx context.Context, cfg config, stdout, stderr io.Writer) error {
	logger, err := newLogger(stderr, cfg.logFormat, cfg.logLevel)
	if err != nil {
		return err
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
		logger.Info("no seed given, using clock", "seed", seed)
	}

	data, source, err := loadData(cfg, seed)
	if err != nil {
		return err
	}
	logger.Info("dataset ready", "source", source, "points", len(data), "dim", len(data[0]))

	basic := &fcm.BasicMetricsCollector{}
	collectors := multiCollector{basic}
	if cfg.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		prom, err := metrics.NewPrometheus(reg)
		if err != nil {
			return err
		}
		collectors = append(collectors, prom)
		shutdown := serveMetrics(cfg.metricsAddr, reg, logger)
		defer shutdown()
	}

	opts := []fcm.Option{
		fcm.WithContext(ctx),
		fcm.WithSeed(seed),
		fcm.WithEpsilon(cfg.eps),
		fcm.WithWorkers(cfg.workers),
		fcm.WithLogger(logger),
		fcm.WithMetrics(collectors),
	}
	if cfg.crisp {
		opts = append(opts, fcm.WithDegeneratePolicy(fcm.DegenerateCrisp))
	}
	if hook := iterationHook(ctx, cfg, data, logger); hook != nil {
		opts = append(opts, fcm.WithOnIteration(hook))
	}

	res, err := fcm.Run(data, cfg.clusters, cfg.iterations, cfg.m, opts...)
	if err != nil {
		return err
	}

	pc, err := fcm.PartitionCoefficient(res.Memberships)
	if err != nil {
		return err
	}
	pe, err := fcm.PartitionEntropy(res.Memberships)
	if err != nil {
		return err
	}
	stats := basic.GetStats()

	fmt.Fprintf(stdout, "run:        %s\n", res.RunID)
	fmt.Fprintf(stdout, "state:      %s\n", res.State)
	fmt.Fprintf(stdout, "iterations: %d\n", res.Iterations)
	fmt.Fprintf(stdout, "objective:  %.6f\n", lastObjective(res.Objective))
	fmt.Fprintf(stdout, "partition:  coefficient %.4f, entropy %.4f\n", pc, pe)
	fmt.Fprintf(stdout, "timing:     %s per iteration\n", stats.AvgIterationDuration)
	for j := 0; j < res.Centers.Rows(); j++ {
		c, _ := res.Centers.Row(j)
		fmt.Fprintf(stdout, "center %d:   %v\n", j+1, formatPoint(c))
	}

	return writeOutputs(cfg, data, res, report.Meta{
		Source:    source,
		Fuzziness: cfg.m,
		Epsilon:   cfg.eps,
		MaxIter:   cfg.iterations,
		Seed:      seed,
		Workers:   cfg.workers,
	}, logger)
}

func loadData(cfg config, seed int64) ([][]float64, string, error) {
	if cfg.input != "" {
		var opts []dataset.Option
		if cfg.header {
			opts = append(opts, dataset.WithHeader())
		}
		if cfg.zeroFill {
			opts = append(opts, dataset.WithZeroFill())
		}
		data, err := dataset.LoadFile(cfg.input, opts...)
		return data, cfg.input, err
	}

	source := "generated:" + cfg.generate
	switch cfg.generate {
	case generateBlobs:
		n := cfg.clusters
		if n < 1 {
			n = 1
		}
		centers := make([][]float64, n)
		for i := range centers {
			a := 2 * math.Pi * float64(i) / float64(n)
			centers[i] = []float64{blobsRadius * math.Cos(a), blobsRadius * math.Sin(a)}
		}
		data, _, err := builder.Blobs(centers, blobsPerCluster,
			builder.WithSeed(seed), builder.WithSigma(blobsSigma), builder.WithShuffle())
		return data, source, err
	default:
		data, _ := builder.DemoDiagonal()
		return data, source, nil
	}
}

// iterationHook paces the run (-speed) and renders one frame per iteration
// (-frames). It returns nil when neither is requested.
func iterationHook(ctx context.Context, cfg config, data [][]float64, logger *slog.Logger) func(fcm.Snapshot) error {
	var limiter *rate.Limiter
	if cfg.speed > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.speed), 1)
	}
	if limiter == nil && cfg.frames == "" {
		return nil
	}

	return func(s fcm.Snapshot) error {
		if cfg.frames != "" {
			if err := writeFrame(cfg, data, s); err != nil {
				return err
			}
		}
		logger.Info("iteration", "n", s.Iteration+1, "objective", s.Objective, "delta", s.Delta)
		if limiter != nil {
			// A cancelled wait is not a hook failure; Run notices ctx on its own.
			if err := limiter.Wait(ctx); err != nil && ctx.Err() == nil {
				return err
			}
		}
		return nil
	}
}

func writeFrame(cfg config, data [][]float64, s fcm.Snapshot) error {
	if err := os.MkdirAll(cfg.frames, 0o755); err != nil {
		return err
	}
	labels, err := s.Labels()
	if err != nil {
		return err
	}
	path := filepath.Join(cfg.frames, fmt.Sprintf("iteration_%04d.html", s.Iteration+1))
	return writePlot(path, data, labels, s.Trajectories, cfg,
		fmt.Sprintf("iteration %d", s.Iteration+1),
		fmt.Sprintf("J = %.4f, ΔJ = %.2e", s.Objective, s.Delta))
}

func writeOutputs(cfg config, data [][]float64, res *fcm.Result, meta report.Meta, logger *slog.Logger) error {
	var errs []error

	if cfg.out != "" {
		var opts []dataset.Option
		if cfg.header {
			opts = append(opts, dataset.WithHeader())
		}
		if err := dataset.SaveFile(cfg.out, data, res.Labels, opts...); err != nil {
			errs = append(errs, fmt.Errorf("labels: %w", err))
		} else {
			logger.Info("labels written", "path", cfg.out)
		}
	}

	if cfg.plot != "" {
		sub := fmt.Sprintf("%s after %d iterations", res.State, res.Iterations)
		if err := writePlot(cfg.plot, data, res.Labels, res.Trajectories, cfg, "Fuzzy C-Means", sub); err != nil {
			errs = append(errs, fmt.Errorf("plot: %w", err))
		} else {
			logger.Info("plot written", "path", cfg.plot)
		}
	}

	if cfg.report != "" {
		rep, err := report.New(res, data, meta, report.WithMemberships())
		if err == nil {
			err = report.WriteFile(cfg.report, rep)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("report: %w", err))
		} else {
			logger.Info("report written", "path", cfg.report, "compression", report.CompressionFor(cfg.report))
		}
	}

	return errors.Join(errs...)
}

func writePlot(path string, data [][]float64, labels []int, traj [][][]float64, cfg config, title, subtitle string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return plot.Scatter(f, data, labels, traj,
		plot.WithTitle(title, subtitle),
		plot.WithColumns(cfg.x, cfg.y))
}

// serveMetrics exposes reg on addr/metrics until the returned func is called.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}

// multiCollector fans metrics out to several collectors.
type multiCollector []fcm.MetricsCollector

func (mc multiCollector) RecordIteration(iteration int, objective float64, d time.Duration) {
	for _, c := range mc {
		c.RecordIteration(iteration, objective, d)
	}
}

func (mc multiCollector) RecordRun(state fcm.State, iterations int, d time.Duration, err error) {
	for _, c := range mc {
		c.RecordRun(state, iterations, d, err)
	}
}

func lastObjective(history []float64) float64 {
	if len(history) == 0 {
		return math.NaN()
	}
	return history[len(history)-1]
}

func formatPoint(p []float64) string {
	s := "("
	for i, v := range p {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.3f", v)
	}
	return s + ")"
}
