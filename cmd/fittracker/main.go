package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	dto "github.com/prometheus/client_model/go"

	"github.com/Dante-danite/hw-python-oop/buildinfo"
	"github.com/Dante-danite/hw-python-oop/config"
	"github.com/Dante-danite/hw-python-oop/logging"
	"github.com/Dante-danite/hw-python-oop/metrics"
	"github.com/Dante-danite/hw-python-oop/tracker"
)

type Args struct {
	ConfigPath  string
	ShowVersion bool
	Validate    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(argv []string, stdout, stderr io.Writer) error {
	args, err := parseArgs(argv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if args.ShowVersion {
		fmt.Fprintf(stdout, "fittracker %s\n", buildinfo.Get())
		return nil
	}

	cfg := config.Default()
	if args.ConfigPath != "" {
		cfg, err = config.LoadConfig(args.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	if args.Validate {
		source := args.ConfigPath
		if source == "" {
			source = "built-in defaults"
		}
		fmt.Fprintf(stdout, "Configuration validation successful: %s\n", source)
		return nil
	}

	loggerConfig := logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Output:    cfg.Logging.Output,
		AddSource: cfg.Logging.AddSource,
	}
	var logger *logging.Logger
	if loggerConfig.Output == "stderr" {
		logger, err = logging.NewWithWriter(loggerConfig, stderr)
	} else {
		logger, err = logging.New(loggerConfig)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	props := buildinfo.Get()
	logger.Debug("fittracker started",
		"version", props.Version,
		"git_commit", props.GitCommit,
		"config_path", args.ConfigPath,
	)

	var registry metrics.Registry
	local := metrics.NewLocalRegistry()
	registry = local
	if url := cfg.Monitoring.VictoriaMetricsURL; url != "" {
		hostname, err := os.Hostname()
		if err != nil {
			return fmt.Errorf("failed to get hostname: %w", err)
		}
		registry = metrics.NewPushRegistry(metrics.PushConfig{
			URL:      url,
			Prefix:   cfg.Monitoring.MetricsPrefix,
			Job:      cfg.Monitoring.JobName,
			Instance: hostname,
			Timeout:  cfg.Monitoring.PushTimeout,
			OnError: func(name string, err error) {
				logger.Warn("metric push failed", "metric", name, "error", err)
			},
		})
	}

	t, err := tracker.New(stdout,
		tracker.WithLogger(logger.Logger),
		tracker.WithMetricsRegistry(registry))
	if err != nil {
		return fmt.Errorf("failed to create tracker: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := t.Run(ctx, cfg.DispatchPackages()); err != nil {
		return err
	}

	if registry == local {
		return logMetrics(logger.Logger, local)
	}
	return nil
}

// logMetrics writes the final value of every local metric at debug level.
func logMetrics(logger *slog.Logger, registry *metrics.LocalRegistry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			logger.Debug("metric",
				"name", mf.GetName(),
				"labels", labelString(m.GetLabel()),
				"value", metricValue(m),
			)
		}
	}
	return nil
}

func labelString(pairs []*dto.LabelPair) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.GetName() + "=" + p.GetValue()
	}
	return strings.Join(parts, ",")
}

func metricValue(m *dto.Metric) float64 {
	switch {
	case m.Counter != nil:
		return m.GetCounter().GetValue()
	case m.Gauge != nil:
		return m.GetGauge().GetValue()
	default:
		return 0
	}
}

func parseArgs(argv []string, stderr io.Writer) (Args, error) {
	fs := flag.NewFlagSet("fittracker", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "Path to config file")
	configPathShort := fs.String("c", "", "Path to config file (shorthand)")
	showVersion := fs.Bool("version", false, "Show version information")
	versionShort := fs.Bool("v", false, "Show version information (shorthand)")
	validate := fs.Bool("validate", false, "Validate configuration and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fittracker [options]\n")
		fmt.Fprintf(stderr, "\nWorkout statistics from raw sensor packages\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fittracker\n")
		fmt.Fprintf(stderr, "  fittracker --config workouts.yaml\n")
		fmt.Fprintf(stderr, "  fittracker --config workouts.yaml --validate\n")
	}

	if err := fs.Parse(argv); err != nil {
		return Args{}, err
	}

	path := *configPath
	if path == "" && *configPathShort != "" {
		path = *configPathShort
	}

	return Args{
		ConfigPath:  path,
		ShowVersion: *showVersion || *versionShort,
		Validate:    *validate,
	}, nil
}
