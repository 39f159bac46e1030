package tracker

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dante-danite/hw-python-oop/dispatch"
	"github.com/Dante-danite/hw-python-oop/metrics"
)

var builtin = []dispatch.Package{
	{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Type: "RUN", Data: []float64{15000, 1, 75}},
	{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
}

const (
	swimmingLine = "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.\n"
	runningLine  = "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.\n"
	walkingLine  = "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.\n"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	tr, err := New(&out)
	require.NoError(t, err)

	require.NoError(t, tr.Run(context.Background(), builtin))
	assert.Equal(t, swimmingLine+runningLine+walkingLine, out.String())
}

func TestRun_Empty(t *testing.T) {
	var out bytes.Buffer
	tr, err := New(&out)
	require.NoError(t, err)

	require.NoError(t, tr.Run(context.Background(), nil))
	assert.Empty(t, out.String())
}

func TestRun_FailFast(t *testing.T) {
	tests := []struct {
		name     string
		packages []dispatch.Package
		expected string
		target   error
	}{
		{
			name: "unknown code first",
			packages: []dispatch.Package{
				{Type: "XYZ", Data: []float64{1, 1, 1}},
				builtin[1],
			},
			expected: "",
			target:   dispatch.ErrUnrecognizedActivityCode,
		},
		{
			name: "unknown code in the middle",
			packages: []dispatch.Package{
				builtin[1],
				{Type: "XYZ", Data: []float64{1, 1, 1}},
				builtin[2],
			},
			expected: runningLine,
			target:   dispatch.ErrUnrecognizedActivityCode,
		},
		{
			name: "wrong reading count",
			packages: []dispatch.Package{
				builtin[0],
				{Type: "WLK", Data: []float64{9000, 1, 75}},
			},
			expected: swimmingLine,
			target:   dispatch.ErrArgumentCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tr, err := New(&out)
			require.NoError(t, err)

			err = tr.Run(context.Background(), tt.packages)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	tr, err := New(&out)
	require.NoError(t, err)

	err = tr.Run(ctx, builtin)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRun_WriteError(t *testing.T) {
	tr, err := New(failingWriter{})
	require.NoError(t, err)

	err = tr.Run(context.Background(), builtin)
	assert.ErrorContains(t, err, "writing report: disk full")
}

func TestRun_WriteErrorIsNotAFailedPackage(t *testing.T) {
	registry := metrics.NewLocalRegistry()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	tr, err := New(failingWriter{}, WithLogger(logger), WithMetricsRegistry(registry))
	require.NoError(t, err)

	err = tr.Run(context.Background(), builtin)
	require.ErrorContains(t, err, `package 0 ("SWM"): writing report`)

	failed, err := testutil.GatherAndCount(registry.PrometheusRegistry(), "workouts_failed_total")
	require.NoError(t, err)
	assert.Zero(t, failed)
	processed, err := testutil.GatherAndCount(registry.PrometheusRegistry(), "workouts_processed_total")
	require.NoError(t, err)
	assert.Zero(t, processed)

	assert.Contains(t, logs.String(), `msg="report not written"`)
	assert.NotContains(t, logs.String(), "package rejected")
}

func TestRun_Logging(t *testing.T) {
	var out, logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr, err := New(&out, WithLogger(logger))
	require.NoError(t, err)

	err = tr.Run(context.Background(), []dispatch.Package{builtin[1], {Type: "XYZ"}})
	require.Error(t, err)

	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "msg=\"run started\"")
	assert.Contains(t, lines[1], "activity=Running")
	assert.Contains(t, lines[2], "msg=\"package rejected\"")
	assert.Contains(t, lines[2], "code=XYZ")
	for _, line := range lines {
		assert.Contains(t, line, "run_id=")
	}
}

func TestRun_Metrics(t *testing.T) {
	registry := metrics.NewLocalRegistry()

	var out bytes.Buffer
	tr, err := New(&out, WithMetricsRegistry(registry))
	require.NoError(t, err)

	require.NoError(t, tr.Run(context.Background(), builtin))
	err = tr.Run(context.Background(), []dispatch.Package{builtin[1], {Type: "XYZ"}})
	require.ErrorIs(t, err, dispatch.ErrUnrecognizedActivityCode)

	expected := `
# HELP workouts_failed_total Packages that could not be read, by activity code
# TYPE workouts_failed_total counter
workouts_failed_total{code="XYZ"} 1
# HELP workouts_processed_total Workouts summarised, by activity
# TYPE workouts_processed_total counter
workouts_processed_total{activity="Running"} 2
workouts_processed_total{activity="SportsWalking"} 1
workouts_processed_total{activity="Swimming"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(registry.PrometheusRegistry(), strings.NewReader(expected),
		"workouts_processed_total", "workouts_failed_total"))

	families, err := registry.Gather()
	require.NoError(t, err)
	calories := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "workout_calories" {
			continue
		}
		for _, m := range mf.GetMetric() {
			calories[m.GetLabel()[0].GetValue()] = m.GetGauge().GetValue()
		}
	}
	assert.InDelta(t, 336.0, calories["Swimming"], 1e-9)
	assert.InDelta(t, 797.805, calories["Running"], 1e-9)
	assert.InDelta(t, 349.2517475250001, calories["SportsWalking"], 1e-9)
}

func TestNew_MetricsRegistrationError(t *testing.T) {
	registry := metrics.NewLocalRegistry()
	_, err := registry.NewCounterVec(prometheus.CounterOpts{Name: "workouts_processed_total", Help: "taken"}, []string{"activity"})
	require.NoError(t, err)

	_, err = New(&bytes.Buffer{}, WithMetricsRegistry(registry))
	assert.Error(t, err)
}
