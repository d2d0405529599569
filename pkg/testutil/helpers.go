// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/planning-trap/internal/engine"
)

// DefaultInput is four weeks of planning with every other field left blank,
// so the rate and hours fall back to their defaults.
func DefaultInput() engine.Input {
	return engine.Input{Duration: "4"}
}

// DefaultResult is the result of DefaultInput: 80 hours at $75, $15,000 in
// total damage and 10 products.
func DefaultResult() engine.Result {
	return engine.Result{
		DirectCost:      6000,
		OpportunityCost: 9000,
		TotalDamage:     15000,
		ProductsBuilt:   10,
		TotalHours:      80,
		Weeks:           4,
	}
}

// ResultFor computes the result for parsed values.
func ResultFor(hourlyRate float64, weeks int, hoursPerWeek float64) engine.Result {
	return engine.ComputeValues(hourlyRate, weeks, hoursPerWeek)
}
