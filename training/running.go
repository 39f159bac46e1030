package training

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79
)

// Running is a run measured in steps.
type Running struct {
	base
}

// NewRunning creates a run from its step count, duration in hours and
// weight in kg.
func NewRunning(action int, duration, weight float64) *Running {
	return &Running{base: base{Action: action, Duration: duration, Weight: weight}}
}

func (r *Running) Name() string {
	return "Running"
}

func (r *Running) Distance() float64 {
	return r.distance(lenStep)
}

func (r *Running) MeanSpeed() float64 {
	return r.Distance() / r.Duration
}

func (r *Running) SpentCalories() float64 {
	// float64 conversion keeps the product from being fused into an FMA.
	speed := float64(runningCaloriesMeanSpeedMultiplier * r.MeanSpeed())
	return ((speed + runningCaloriesMeanSpeedShift) * r.Weight) / mInKm * r.Duration * minInH
}
