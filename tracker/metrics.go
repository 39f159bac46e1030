package tracker

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Dante-danite/hw-python-oop/metrics"
	"github.com/Dante-danite/hw-python-oop/training"
)

// trackerMetrics records per-activity results. A nil *trackerMetrics
// records nothing.
type trackerMetrics struct {
	processedTotal metrics.CounterVec
	failedTotal    metrics.CounterVec
	calories       metrics.GaugeVec
	distance       metrics.GaugeVec
}

func newTrackerMetrics(registry metrics.Registry) (*trackerMetrics, error) {
	processedTotal, err := registry.NewCounterVec(prometheus.CounterOpts{
		Name: "workouts_processed_total",
		Help: "Workouts summarised, by activity",
	}, []string{"activity"})
	if err != nil {
		return nil, err
	}

	failedTotal, err := registry.NewCounterVec(prometheus.CounterOpts{
		Name: "workouts_failed_total",
		Help: "Packages that could not be read, by activity code",
	}, []string{"code"})
	if err != nil {
		return nil, err
	}

	calories, err := registry.NewGaugeVec(prometheus.GaugeOpts{
		Name: "workout_calories",
		Help: "Calories burned in the last workout, by activity",
	}, []string{"activity"})
	if err != nil {
		return nil, err
	}

	distance, err := registry.NewGaugeVec(prometheus.GaugeOpts{
		Name: "workout_distance_km",
		Help: "Distance of the last workout in km, by activity",
	}, []string{"activity"})
	if err != nil {
		return nil, err
	}

	return &trackerMetrics{
		processedTotal: processedTotal,
		failedTotal:    failedTotal,
		calories:       calories,
		distance:       distance,
	}, nil
}

func (m *trackerMetrics) processed(info training.InfoMessage) {
	if m == nil {
		return
	}
	labels := prometheus.Labels{"activity": info.TrainingType}
	m.processedTotal.With(labels).Inc()
	m.calories.With(labels).Set(info.Calories)
	m.distance.With(labels).Set(info.Distance)
}

func (m *trackerMetrics) failed(code string) {
	if m == nil {
		return
	}
	m.failedTotal.With(prometheus.Labels{"code": code}).Inc()
}
