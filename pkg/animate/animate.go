// Package animate interpolates the counters of the results reveal.
package animate

import (
	"math"
	"time"

	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/mathutil"
)

// EaseOutQuart maps linear progress in [0, 1] onto a decelerating curve.
func EaseOutQuart(progress float64) float64 {
	p := mathutil.Clamp(progress, 0, 1)
	return 1 - math.Pow(1-p, 4)
}

// Counter animates a number from From to To, starting Delay after the reveal.
type Counter struct {
	From     float64
	To       float64
	Delay    time.Duration
	Duration time.Duration
}

// At returns the counter value elapsed after the reveal started.
func (c Counter) At(elapsed time.Duration) float64 {
	return c.From + (c.To-c.From)*EaseOutQuart(c.Progress(elapsed))
}

// Progress returns the linear progress of the counter in [0, 1].
func (c Counter) Progress(elapsed time.Duration) float64 {
	running := elapsed - c.Delay
	if running <= 0 {
		return 0
	}
	if c.Duration <= 0 {
		return 1
	}
	return mathutil.Clamp(float64(running)/float64(c.Duration), 0, 1)
}

// Done reports whether the counter has reached its final value.
func (c Counter) Done(elapsed time.Duration) bool {
	return c.Progress(elapsed) >= 1
}

// End returns the time after the reveal start at which the counter settles.
func (c Counter) End() time.Duration {
	return c.Delay + c.Duration
}

// Timeline is the schedule of the results reveal.
type Timeline struct {
	ProgressAt      time.Duration
	ResultsAt       time.Duration
	DirectCost      Counter
	OpportunityCost Counter
	TotalDamage     Counter
	ShakeUntil      time.Duration
}

// NewTimeline schedules counters for the given figures.
func NewTimeline(directCost, opportunityCost, totalDamage float64) Timeline {
	totalStart := constants.ResultsDelay + constants.TotalDamageDelay
	return Timeline{
		ProgressAt: constants.ProgressDelay,
		ResultsAt:  constants.ResultsDelay,
		DirectCost: Counter{
			To:       directCost,
			Delay:    constants.ResultsDelay,
			Duration: constants.DirectCostDuration,
		},
		OpportunityCost: Counter{
			To:       opportunityCost,
			Delay:    constants.ResultsDelay,
			Duration: constants.OpportunityCostDuration,
		},
		TotalDamage: Counter{
			To:       totalDamage,
			Delay:    totalStart,
			Duration: constants.TotalDamageDuration,
		},
		ShakeUntil: totalStart + constants.ShakeDuration,
	}
}

// Shaking reports whether the total damage figure is in its shake window.
func (t Timeline) Shaking(elapsed time.Duration) bool {
	return elapsed >= t.TotalDamage.Delay && elapsed < t.ShakeUntil
}

// End returns when the last counter settles.
func (t Timeline) End() time.Duration {
	end := t.DirectCost.End()
	for _, c := range []Counter{t.OpportunityCost, t.TotalDamage} {
		if c.End() > end {
			end = c.End()
		}
	}
	return end
}
