// Command roastfilter smooths roast sensor curves read from CSV.
//
// Usage:
//
//	roastfilter [flags] < roast.csv > smooth.csv
//
// The first CSV row names the columns. Columns whose name matches a
// configured channel are filtered, all others are copied through. Empty
// cells and "NaN" are missing readings; they stay missing in the output and
// do not disturb the filters.
//
// Examples:
//
//	roastfilter -config roast.yaml -in roast.csv -out smooth.csv
//	roastfilter -config roast.yaml -describe
//	tail -f live.csv | roastfilter -config roast.yaml -metrics-addr :9100
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type options struct {
	configPath  string
	inPath      string
	outPath     string
	describe    bool
	metricsAddr string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "config file (default: roastfilter.yaml in ., ./configs, /etc/roastfilter)")
	flag.StringVar(&opts.inPath, "in", "-", "input CSV, - for stdin")
	flag.StringVar(&opts.outPath, "out", "-", "output CSV, - for stdout")
	flag.BoolVar(&opts.describe, "describe", false, "print per-channel filter properties and exit")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running, e.g. :9100")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roastfilter [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Smooths roast sensor curves (BT, ET, RoR, ...) read from CSV.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  roastfilter -config roast.yaml -in roast.csv -out smooth.csv\n")
		fmt.Fprintf(os.Stderr, "  roastfilter -config roast.yaml -describe\n")
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMain(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func runMain(ctx context.Context, opts options) error {
	var in io.Reader = os.Stdin
	if opts.inPath != "-" && !opts.describe {
		f, err := os.Open(opts.inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if opts.outPath != "-" && !opts.describe {
		f, err := os.Create(opts.outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return run(ctx, opts, in, out)
}
