package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// config mirrors the command-line flags.
type config struct {
	input    string
	header   bool
	zeroFill bool
	generate string

	clusters   int
	iterations int
	m          float64
	eps        float64
	seed       int64
	workers    int
	crisp      bool

	speed  float64
	frames string
	x, y   int

	out         string
	plot        string
	report      string
	metricsAddr string

	logFormat string
	logLevel  string
}

const (
	generateDiagonal = "diagonal"
	generateBlobs    = "blobs"
)

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("fcm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&c.input, "input", "", "CSV file with one numeric point per row (default: generated data)")
	fs.BoolVar(&c.header, "header", false, "input has a header row; output gets one")
	fs.BoolVar(&c.zeroFill, "zero-fill", false, "read non-numeric cells as 0 instead of failing")
	fs.StringVar(&c.generate, "generate", generateDiagonal, "synthetic data when -input is empty: diagonal or blobs")

	fs.IntVar(&c.clusters, "clusters", 3, "number of clusters")
	fs.IntVar(&c.iterations, "iterations", 50, "iteration limit")
	fs.Float64Var(&c.m, "m", 2, "fuzziness exponent (> 1)")
	fs.Float64Var(&c.eps, "eps", 1e-5, "convergence tolerance on the objective")
	fs.Int64Var(&c.seed, "seed", 0, "random seed (0 = time based, logged)")
	fs.IntVar(&c.workers, "workers", 0, "goroutines per kernel (0 = sequential)")
	fs.BoolVar(&c.crisp, "crisp", false, "split membership evenly when a point sits on a center instead of failing")

	fs.Float64Var(&c.speed, "speed", 0, "iterations per second (0 = no pacing)")
	fs.StringVar(&c.frames, "frames", "", "directory for one HTML plot per iteration")
	fs.IntVar(&c.x, "x", 0, "column shown on the x axis")
	fs.IntVar(&c.y, "y", 1, "column shown on the y axis")

	fs.StringVar(&c.out, "out", "", "write points with 1-based labels to this CSV file")
	fs.StringVar(&c.plot, "plot", "", "write the final scatter plot to this HTML file")
	fs.StringVar(&c.report, "report", "", "write a JSON run report (.gz / .zst compress)")
	fs.StringVar(&c.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :2112)")

	fs.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if c.input == "" && c.generate != generateDiagonal && c.generate != generateBlobs {
		return c, fmt.Errorf("%w: -generate must be %s or %s", errUsage, generateDiagonal, generateBlobs)
	}
	if c.speed < 0 {
		return c, fmt.Errorf("%w: -speed cannot be negative", errUsage)
	}
	return c, nil
}
