// Package report renders workout summaries as human-readable lines.
package report

import (
	"fmt"

	"github.com/Dante-danite/hw-python-oop/training"
)

const messageFormat = "Тип тренировки: %s; " +
	"Длительность: %.3f ч.; " +
	"Дистанция: %.3f км; " +
	"Ср. скорость: %.3f км/ч; " +
	"Потрачено ккал: %.3f."

// Message formats info as a single line without a trailing newline.
// Every number is printed fixed-point with three decimals.
func Message(info training.InfoMessage) string {
	return fmt.Sprintf(messageFormat,
		info.TrainingType,
		info.Duration,
		info.Distance,
		info.Speed,
		info.Calories,
	)
}
