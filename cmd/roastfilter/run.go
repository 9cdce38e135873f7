package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/internal/config"
	"github.com/cwbudde/algo-smooth/internal/pipeline"
	"github.com/cwbudde/algo-smooth/stats/curve"
)

var errNoHeader = errors.New("input has no header row")

func run(ctx context.Context, opts options, in io.Reader, out io.Writer) error {
	v, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger, err := config.NewLogger(v)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return runWith(ctx, v, logger, opts, in, out)
}

func runWith(ctx context.Context, v *viper.Viper, logger *zap.Logger, opts options, in io.Reader, out io.Writer) error {
	channels, err := config.Channels(v)
	if err != nil {
		return err
	}
	sampleRate, err := config.SampleRate(v)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	p, err := pipeline.New(channels,
		pipeline.WithLogger(logger),
		pipeline.WithRegisterer(reg),
	)
	if err != nil {
		return err
	}

	if opts.describe {
		return describe(out, p, sampleRate, v.GetInt("block_size"))
	}

	if opts.metricsAddr != "" {
		srv := &http.Server{
			Addr:              opts.metricsAddr,
			Handler:           metricsHandler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", zap.String("addr", opts.metricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	curves, err := filterCSV(ctx, p, in, out)
	if err != nil {
		return err
	}
	logSummaries(logger, curves)
	return nil
}

func metricsHandler(reg *prometheus.Registry) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return mux
}

// filterCSV streams rows from in through p and writes them to out. It
// returns the filtered curve of every channel present in the header.
func filterCSV(ctx context.Context, p *pipeline.Pipeline, in io.Reader, out io.Writer) (map[string][]float64, error) {
	r := csv.NewReader(in)
	r.TrimLeadingSpace = true
	w := csv.NewWriter(out)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	// column index -> channel name, "" for pass-through columns
	columns := make([]string, len(header))
	curves := make(map[string][]float64)
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := p.Chain(key); !ok {
			continue
		}
		if _, dup := curves[key]; dup {
			return nil, fmt.Errorf("channel %q appears in more than one column", key)
		}
		columns[i] = key
		curves[key] = nil
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			w.Flush()
			return curves, err
		}
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		for i, cell := range row {
			name := columns[i]
			if name == "" {
				continue
			}
			x, err := parseSample(cell)
			if err != nil {
				return nil, fmt.Errorf("line %d column %q: %w", line, header[i], err)
			}
			y, _ := p.Process(name, x)
			curves[name] = append(curves[name], y)
			row[i] = formatSample(y)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
		w.Flush()
	}
	w.Flush()
	return curves, w.Error()
}

func parseSample(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}

func formatSample(y float64) string {
	if math.IsNaN(y) {
		return ""
	}
	return strconv.FormatFloat(y, 'g', -1, 64)
}

func logSummaries(logger *zap.Logger, curves map[string][]float64) {
	for name, samples := range curves {
		s := curve.Summarize(samples)
		logger.Info("channel summary",
			zap.String("channel", name),
			zap.Int("samples", s.Length),
			zap.Int("missing", s.Missing),
			zap.Float64("mean", s.Mean),
			zap.Float64("median", s.Median),
			zap.Float64("stddev", s.StdDev),
			zap.Float64("min", s.Min),
			zap.Float64("max", s.Max),
			zap.Float64("p10", s.P10),
			zap.Float64("p90", s.P90),
		)
	}
}
