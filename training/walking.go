package training

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	kmhInMsec                       = 0.278
	cmInM                           = 100
)

// SportsWalking is a walk measured in steps. The walker's height takes
// part in the calorie formula.
type SportsWalking struct {
	base
	Height float64 // cm
}

// NewSportsWalking creates a walk from its step count, duration in hours,
// weight in kg and height in cm.
func NewSportsWalking(action int, duration, weight, height float64) *SportsWalking {
	return &SportsWalking{
		base:   base{Action: action, Duration: duration, Weight: weight},
		Height: height,
	}
}

func (w *SportsWalking) Name() string {
	return "SportsWalking"
}

func (w *SportsWalking) Distance() float64 {
	return w.distance(lenStep)
}

func (w *SportsWalking) MeanSpeed() float64 {
	return w.Distance() / w.Duration
}

func (w *SportsWalking) SpentCalories() float64 {
	sq := math.Pow(kmhInMsec*w.MeanSpeed(), 2)
	weighted := float64(walkingCaloriesWeightMultiplier * w.Weight)
	heightTerm := float64(sq / (w.Height / cmInM) * walkingSpeedHeightMultiplier * w.Weight)
	return (weighted + heightTerm) * w.Duration * minInH
}
