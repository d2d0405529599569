// Package engine computes what time spent planning instead of shipping costs.
//
// Every function here is pure: it reads only its arguments, never fails and
// returns a fresh value. Malformed input is replaced by a fixed default before
// any arithmetic happens.
package engine

import (
	"math"
	"strings"

	"github.com/iwvelando/planning-trap/pkg/constants"
)

// Input holds the raw form values of one calculation.
type Input struct {
	HourlyRate   Raw `json:"hourlyRate"`
	Duration     Raw `json:"duration"`
	CustomWeeks  Raw `json:"customWeeks"`
	HoursPerWeek Raw `json:"hoursPerWeek"`
}

// Result holds the derived figures of one calculation.
type Result struct {
	DirectCost      float64 `json:"directCost"`
	OpportunityCost float64 `json:"opportunityCost"`
	TotalDamage     float64 `json:"totalDamage"`
	ProductsBuilt   int     `json:"productsBuilt"`
	TotalHours      float64 `json:"totalHours"`
	Weeks           int     `json:"weeks"`
}

// ResolveWeeks turns the duration selector into a week count. The custom
// selector defers to customWeeks, which must be positive; anything
// unparseable resolves to one week.
func ResolveWeeks(duration, customWeeks string) int {
	if strings.TrimSpace(duration) == constants.CustomDuration {
		return ParsePositiveIntOrDefault(customWeeks, constants.DefaultCustomWeeks)
	}
	return ParseIntOrDefault(duration, constants.DefaultCustomWeeks)
}

// Compute parses the raw input, substituting defaults, and derives the result.
func Compute(in Input) Result {
	hourlyRate := ParseFloatOrDefault(string(in.HourlyRate), constants.DefaultHourlyRate)
	weeks := ResolveWeeks(string(in.Duration), string(in.CustomWeeks))
	hoursPerWeek := ParseFloatOrDefault(string(in.HoursPerWeek), constants.DefaultHoursPerWeek)

	return ComputeValues(hourlyRate, weeks, hoursPerWeek)
}

// ComputeValues derives the result from already parsed values.
func ComputeValues(hourlyRate float64, weeks int, hoursPerWeek float64) Result {
	totalHours := float64(weeks) * hoursPerWeek
	directCost := totalHours * hourlyRate
	opportunityCost := directCost * constants.OpportunityMultiplier
	totalDamage := directCost + opportunityCost

	return Result{
		DirectCost:      directCost,
		OpportunityCost: opportunityCost,
		TotalDamage:     totalDamage,
		ProductsBuilt:   productsFromHours(totalHours),
		TotalHours:      totalHours,
		Weeks:           weeks,
	}
}

// productsFromHours counts whole products in totalHours, clamped to
// [0, math.MaxInt] so overflowing or negative hours never wrap.
func productsFromHours(totalHours float64) int {
	products := math.Floor(totalHours / constants.HoursPerProduct)
	switch {
	case math.IsNaN(products) || products <= 0:
		return 0
	case products >= math.MaxInt:
		return math.MaxInt
	}
	return int(products)
}
