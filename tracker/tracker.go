// Package tracker processes batches of raw sensor packages into workout
// reports, one line per package.
package tracker

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Dante-danite/hw-python-oop/dispatch"
	"github.com/Dante-danite/hw-python-oop/metrics"
	"github.com/Dante-danite/hw-python-oop/report"
	"github.com/Dante-danite/hw-python-oop/training"
)

// Option configures a Tracker.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	registry metrics.Registry
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMetricsRegistry sets the metrics registry.
// If not provided, no metrics are recorded.
func WithMetricsRegistry(registry metrics.Registry) Option {
	return func(o *options) {
		o.registry = registry
	}
}

// Tracker writes a report line for every package it processes.
type Tracker struct {
	out     io.Writer
	logger  *slog.Logger
	metrics *trackerMetrics
}

// New creates a Tracker writing reports to out.
func New(out io.Writer, opts ...Option) (*Tracker, error) {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}

	t := &Tracker{out: out, logger: o.logger}
	if o.registry != nil {
		m, err := newTrackerMetrics(o.registry)
		if err != nil {
			return nil, fmt.Errorf("creating metrics: %w", err)
		}
		t.metrics = m
	}
	return t, nil
}

// Run processes packages in order. It stops at the first package that
// cannot be read; nothing is written for that package and the error is
// returned. Lines already written stay written.
func (t *Tracker) Run(ctx context.Context, packages []dispatch.Package) error {
	logger := t.logger.With("run_id", uuid.NewString())
	logger.Info("run started", "packages", len(packages))

	for i, p := range packages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run interrupted before package %d: %w", i, err)
		}

		tr, err := p.Read()
		if err != nil {
			logger.Error("package rejected", "index", i, "code", p.Type, "error", err)
			t.metrics.failed(p.Type)
			return fmt.Errorf("package %d (%q): %w", i, p.Type, err)
		}

		if err := t.write(logger, tr); err != nil {
			logger.Error("report not written", "index", i, "code", p.Type, "error", err)
			return fmt.Errorf("package %d (%q): %w", i, p.Type, err)
		}
	}

	logger.Info("run completed", "packages", len(packages))
	return nil
}

func (t *Tracker) write(logger *slog.Logger, tr training.Training) error {
	info := training.Info(tr)
	if _, err := fmt.Fprintln(t.out, report.Message(info)); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	logger.Debug("package processed",
		"activity", info.TrainingType,
		"duration_h", info.Duration,
		"distance_km", info.Distance,
		"speed_kmh", info.Speed,
		"calories", info.Calories,
	)
	t.metrics.processed(info)
	return nil
}
