package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Dante-danite/hw-python-oop/dispatch"
)

const (
	defaultMetricsPrefix = "fittracker"
	defaultJobName       = "fittracker"
	defaultPushTimeout   = 10 * time.Second

	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultLogOutput = "stderr"
)

// Config represents the complete application configuration
type Config struct {
	Packages   []PackageConfig  `yaml:"packages"`
	Logging    LoggingConfig    `yaml:"logging"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
}

// PackageConfig is one raw sensor package: an activity code and its
// readings in constructor order.
type PackageConfig struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data"`
}

// LoggingConfig defines logging behavior settings
type LoggingConfig struct {
	Level     string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format    string `yaml:"format" validate:"omitempty,oneof=json text"`
	Output    string `yaml:"output"`
	AddSource bool   `yaml:"add_source"`
}

// MonitoringConfig holds metrics settings. Metrics are only pushed when
// VictoriaMetricsURL is set.
type MonitoringConfig struct {
	VictoriaMetricsURL string        `yaml:"victoriametrics_url" validate:"omitempty,url"`
	MetricsPrefix      string        `yaml:"metrics_prefix" validate:"omitempty,metricname"`
	JobName            string        `yaml:"jobname"`
	PushTimeout        time.Duration `yaml:"push_timeout" validate:"gte=0"`
}

// builtinPackages is the batch processed when no packages are configured.
var builtinPackages = []PackageConfig{
	{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Type: "RUN", Data: []float64{15000, 1, 75}},
	{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
}

var metricNameRE = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("metricname", func(fl validator.FieldLevel) bool {
		return metricNameRE.MatchString(fl.Field().String())
	})
	return v
}

// Default returns the configuration used when no config file is given.
func Default() Config {
	var cfg Config
	cfg.SetDefaults()
	return cfg
}

// Validate checks the configuration field constraints. Every package must
// name a known activity code with the matching number of readings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid %s: failed %q constraint", verrs[0].Namespace(), verrs[0].Tag())
		}
		return err
	}
	for i, p := range c.Packages {
		if p.Type == "" {
			return fmt.Errorf("package %d: type is required", i)
		}
		if _, err := dispatch.ReadPackage(p.Type, p.Data); err != nil {
			return fmt.Errorf("package %d: %w", i, err)
		}
	}
	return nil
}

// SetDefaults sets reasonable default values for optional fields
func (c *Config) SetDefaults() {
	if len(c.Packages) == 0 {
		c.Packages = make([]PackageConfig, len(builtinPackages))
		for i, p := range builtinPackages {
			c.Packages[i] = PackageConfig{Type: p.Type, Data: append([]float64(nil), p.Data...)}
		}
	}
	if c.Monitoring.MetricsPrefix == "" {
		c.Monitoring.MetricsPrefix = defaultMetricsPrefix
	}
	if c.Monitoring.JobName == "" {
		c.Monitoring.JobName = defaultJobName
	}
	if c.Monitoring.PushTimeout == 0 {
		c.Monitoring.PushTimeout = defaultPushTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}
}

// DispatchPackages returns the configured packages in input order.
func (c *Config) DispatchPackages() []dispatch.Package {
	packages := make([]dispatch.Package, len(c.Packages))
	for i, p := range c.Packages {
		packages[i] = dispatch.Package{Type: p.Type, Data: p.Data}
	}
	return packages
}

// LoadConfig reads the YAML config file at the given path and returns a Config struct
func LoadConfig(path string) (Config, error) {
	var cfg Config
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decoding %s: %w", path, err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
