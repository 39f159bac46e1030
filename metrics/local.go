package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// LocalRegistry implements Registry on top of a private prometheus.Registry.
// Nothing is exported over the network; callers gather the values themselves.
type LocalRegistry struct {
	prom *prometheus.Registry
}

// NewLocalRegistry creates an empty LocalRegistry.
func NewLocalRegistry() *LocalRegistry {
	return &LocalRegistry{prom: prometheus.NewRegistry()}
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *LocalRegistry) PrometheusRegistry() *prometheus.Registry {
	return r.prom
}

// Gather returns the current state of every registered metric.
func (r *LocalRegistry) Gather() ([]*dto.MetricFamily, error) {
	return r.prom.Gather()
}

// NewGaugeVec creates and registers a new GaugeVec.
func (r *LocalRegistry) NewGaugeVec(opts prometheus.GaugeOpts, labels []string) (GaugeVec, error) {
	g := prometheus.NewGaugeVec(opts, labels)
	if err := r.prom.Register(g); err != nil {
		return nil, fmt.Errorf("registering gauge vec %q: %w", opts.Name, err)
	}
	return &localGaugeVec{vec: g}, nil
}

// NewCounterVec creates and registers a new CounterVec.
func (r *LocalRegistry) NewCounterVec(opts prometheus.CounterOpts, labels []string) (CounterVec, error) {
	c := prometheus.NewCounterVec(opts, labels)
	if err := r.prom.Register(c); err != nil {
		return nil, fmt.Errorf("registering counter vec %q: %w", opts.Name, err)
	}
	return &localCounterVec{vec: c}, nil
}

type localGaugeVec struct {
	vec *prometheus.GaugeVec
}

func (g *localGaugeVec) With(labels prometheus.Labels) Gauge {
	return g.vec.With(labels)
}

type localCounterVec struct {
	vec *prometheus.CounterVec
}

func (c *localCounterVec) With(labels prometheus.Labels) Counter {
	return c.vec.With(labels)
}
