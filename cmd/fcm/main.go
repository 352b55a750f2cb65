// Command fcm clusters a CSV dataset (or a generated demo set) with Fuzzy
// C-Means and writes labels, plots and a JSON report.
//
//	fcm -generate diagonal -clusters 3 -plot fcm.html
//	fcm -input points.csv -header -clusters 4 -out labeled.csv -report run.json.zst
//	fcm -speed 2 -frames frames/ -metrics-addr :2112
//
// SIGINT or SIGTERM stops the run between iterations; the partial result is
// still written.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "fcm:", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "fcm:", err)
		stop()
		os.Exit(1)
	}
}
