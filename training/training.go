// Package training computes workout statistics from raw sensor readings.
//
// Each activity type implements the Training interface with its own
// coefficients and calorie formula. Inputs are not validated: a zero or
// negative duration, weight or height yields NaN or ±Inf in the results.
package training

const (
	lenStep = 0.65 // metres per step
	mInKm   = 1000 // metres in a kilometre
	minInH  = 60   // minutes in an hour
)

// Training is a single workout whose statistics can be derived on demand.
type Training interface {
	// Name returns the activity type as shown in reports.
	Name() string
	// Hours returns the workout duration in hours.
	Hours() float64
	// Distance returns the distance covered in kilometres.
	Distance() float64
	// MeanSpeed returns the mean speed in km/h.
	MeanSpeed() float64
	// SpentCalories returns the calories burned during the workout.
	SpentCalories() float64
}

// base holds the readings shared by every activity type. It does not
// implement SpentCalories, so it never satisfies Training by itself.
type base struct {
	Action   int
	Duration float64
	Weight   float64
}

func (b base) Hours() float64 {
	return b.Duration
}

func (b base) distance(stepLen float64) float64 {
	return float64(b.Action) * stepLen / mInKm
}

// InfoMessage is the summary of a completed workout.
type InfoMessage struct {
	TrainingType string
	Duration     float64
	Distance     float64
	Speed        float64
	Calories     float64
}

// Info derives the summary of t.
func Info(t Training) InfoMessage {
	return InfoMessage{
		TrainingType: t.Name(),
		Duration:     t.Hours(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
