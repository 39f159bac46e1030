// Package dispatch turns raw sensor packages into trainings.
package dispatch

import (
	"errors"
	"fmt"

	"github.com/Dante-danite/hw-python-oop/training"
)

var (
	// ErrUnrecognizedActivityCode is returned for a code outside SWM, RUN and WLK.
	ErrUnrecognizedActivityCode = errors.New("unrecognized activity code")
	// ErrArgumentCount is returned when the data does not match the activity's readings.
	ErrArgumentCount = errors.New("wrong number of readings")
)

// Package is one raw sensor reading: an activity code and its readings in
// constructor order.
type Package struct {
	Type string
	Data []float64
}

type constructor struct {
	arity int
	build func(d []float64) training.Training
}

var constructors = map[string]constructor{
	"SWM": {5, func(d []float64) training.Training {
		return training.NewSwimming(int(d[0]), d[1], d[2], int(d[3]), d[4])
	}},
	"RUN": {3, func(d []float64) training.Training {
		return training.NewRunning(int(d[0]), d[1], d[2])
	}},
	"WLK": {4, func(d []float64) training.Training {
		return training.NewSportsWalking(int(d[0]), d[1], d[2], d[3])
	}},
}

// ReadPackage builds the training identified by code from data.
// Integer readings (action count, pool count) are truncated toward zero.
func ReadPackage(code string, data []float64) (training.Training, error) {
	c, ok := constructors[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnrecognizedActivityCode, code)
	}
	if len(data) != c.arity {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArgumentCount, code, c.arity, len(data))
	}
	return c.build(data), nil
}

// Read is ReadPackage for a Package value.
func (p Package) Read() (training.Training, error) {
	return ReadPackage(p.Type, p.Data)
}
