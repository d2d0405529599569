// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/planning-trap/pkg/constants"
)

// RoundHalfUp rounds to the nearest whole number, ties toward positive
// infinity. Displayed figures are rounded this way.
func RoundHalfUp(val float64) float64 {
	return math.Floor(val + 0.5)
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ProgressPercent expresses planning hours as a whole percentage of
// ProgressHoursCap, capped at 100.
func ProgressPercent(totalHours float64) int {
	percent := RoundHalfUp(totalHours / constants.ProgressHoursCap * 100)
	return int(Clamp(percent, 0, 100))
}
