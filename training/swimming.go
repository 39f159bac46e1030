package training

const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming is a pool swim. Distance comes from the stroke count while
// speed comes from the pool geometry.
type Swimming struct {
	base
	CountPool  int
	LengthPool float64 // metres
}

// NewSwimming creates a swim from its stroke count, duration in hours,
// weight in kg, number of pool lengths swum and pool length in metres.
func NewSwimming(action int, duration, weight float64, countPool int, lengthPool float64) *Swimming {
	return &Swimming{
		base:       base{Action: action, Duration: duration, Weight: weight},
		CountPool:  countPool,
		LengthPool: lengthPool,
	}
}

func (s *Swimming) Name() string {
	return "Swimming"
}

func (s *Swimming) Distance() float64 {
	return s.distance(swimmingLenStep)
}

func (s *Swimming) MeanSpeed() float64 {
	return s.LengthPool * float64(s.CountPool) / mInKm / s.Duration
}

func (s *Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.Weight * s.Duration
}
