// Package metrics records workout processing metrics with Prometheus types.
//
// Two registries are provided:
//   - LocalRegistry keeps metrics in an in-process Prometheus registry that
//     can be gathered at the end of a run
//   - PushRegistry sends every update to a Prometheus remote write endpoint
//     such as VictoriaMetrics
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Gauge is a metric holding the last value set.
type Gauge interface {
	Set(float64)
}

// Counter is a monotonically increasing metric.
type Counter interface {
	Inc()
}

// GaugeVec is a Gauge partitioned by labels.
type GaugeVec interface {
	With(prometheus.Labels) Gauge
}

// CounterVec is a Counter partitioned by labels.
type CounterVec interface {
	With(prometheus.Labels) Counter
}

// Registry creates and registers labelled metrics.
type Registry interface {
	NewGaugeVec(opts prometheus.GaugeOpts, labels []string) (GaugeVec, error)
	NewCounterVec(opts prometheus.CounterOpts, labels []string) (CounterVec, error)
}
