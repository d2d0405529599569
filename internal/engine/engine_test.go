package engine

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeDefaults(t *testing.T) {
	got := Compute(Input{HourlyRate: "", Duration: "4", HoursPerWeek: ""})
	want := Result{
		DirectCost:      6000,
		OpportunityCost: 9000,
		TotalDamage:     15000,
		ProductsBuilt:   10,
		TotalHours:      80,
		Weeks:           4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeMatchesDefaultedValues(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"empty strings", Input{Duration: "4"}},
		{"non-numeric", Input{HourlyRate: "lots", Duration: "4", HoursPerWeek: "many"}},
		{"zero", Input{HourlyRate: "0", Duration: "4", HoursPerWeek: "0"}},
		{"overflow", Input{HourlyRate: "1e400", Duration: "4", HoursPerWeek: "-1e999"}},
		{"whitespace", Input{HourlyRate: "   ", Duration: " 4 ", HoursPerWeek: "\t"}},
		{"explicit defaults", Input{HourlyRate: "75", Duration: "4", HoursPerWeek: "20"}},
	}

	want := ComputeValues(75, 4, 20)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(want, Compute(tt.input)); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeFormulas(t *testing.T) {
	tests := []struct {
		rate  float64
		weeks int
		hours float64
	}{
		{75, 4, 20},
		{120.5, 3, 37.5},
		{0.01, 1, 0.5},
		{250, 52, 40},
		{33.3, 7, 12.25},
	}

	for _, tt := range tests {
		got := ComputeValues(tt.rate, tt.weeks, tt.hours)
		totalHours := float64(tt.weeks) * tt.hours
		direct := totalHours * tt.rate

		if got.TotalHours != totalHours {
			t.Errorf("TotalHours = %v, want %v", got.TotalHours, totalHours)
		}
		if got.DirectCost != direct {
			t.Errorf("DirectCost = %v, want %v", got.DirectCost, direct)
		}
		if got.OpportunityCost != direct*1.5 {
			t.Errorf("OpportunityCost = %v, want %v", got.OpportunityCost, direct*1.5)
		}
		if math.Abs(got.TotalDamage-direct*2.5) > 1e-9*direct {
			t.Errorf("TotalDamage = %v, want %v", got.TotalDamage, direct*2.5)
		}
		if got.ProductsBuilt != int(math.Floor(totalHours/8)) {
			t.Errorf("ProductsBuilt = %d, want %d", got.ProductsBuilt, int(math.Floor(totalHours/8)))
		}
		if got.Weeks != tt.weeks {
			t.Errorf("Weeks = %d, want %d", got.Weeks, tt.weeks)
		}
	}
}

func TestComputeNoIntermediateRounding(t *testing.T) {
	got := Compute(Input{HourlyRate: "33.333", Duration: "1", HoursPerWeek: "3"})
	if got.DirectCost != 3*33.333 {
		t.Fatalf("DirectCost = %v, want unrounded %v", got.DirectCost, 3*33.333)
	}
	if got.ProductsBuilt != 0 {
		t.Fatalf("ProductsBuilt = %d, want 0", got.ProductsBuilt)
	}
}

func TestComputeIdempotent(t *testing.T) {
	in := Input{HourlyRate: "87.25", Duration: "custom", CustomWeeks: "9", HoursPerWeek: "31.5"}
	first := Compute(in)
	second := Compute(in)
	if first != second {
		t.Fatalf("Compute() not deterministic: %+v vs %+v", first, second)
	}
}

func TestComputeMonotonic(t *testing.T) {
	base := ComputeValues(75, 4, 20)

	if ComputeValues(76, 4, 20).TotalDamage <= base.TotalDamage {
		t.Error("raising the hourly rate did not raise total damage")
	}
	if ComputeValues(75, 5, 20).TotalDamage <= base.TotalDamage {
		t.Error("raising weeks did not raise total damage")
	}
	if ComputeValues(75, 4, 20.5).TotalDamage <= base.TotalDamage {
		t.Error("raising hours per week did not raise total damage")
	}
}

func TestComputeKeepsNegativeValues(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  Result
	}{
		{
			name:  "negative rate",
			input: Input{HourlyRate: "-5", Duration: "4", HoursPerWeek: "20"},
			want: Result{
				DirectCost:      -400,
				OpportunityCost: -600,
				TotalDamage:     -1000,
				ProductsBuilt:   10,
				TotalHours:      80,
				Weeks:           4,
			},
		},
		{
			name:  "negative hours",
			input: Input{HourlyRate: "10", Duration: "2", HoursPerWeek: "-8"},
			want: Result{
				DirectCost:      -160,
				OpportunityCost: -240,
				TotalDamage:     -400,
				ProductsBuilt:   0,
				TotalHours:      -16,
				Weeks:           2,
			},
		},
		{
			name:  "negative preset weeks",
			input: Input{HourlyRate: "10", Duration: "-1", HoursPerWeek: "8"},
			want: Result{
				DirectCost:      -80,
				OpportunityCost: -120,
				TotalDamage:     -200,
				ProductsBuilt:   0,
				TotalHours:      -8,
				Weeks:           -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Compute(tt.input)); diff != "" {
				t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeOverflowingInput(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"huge hours", Input{HourlyRate: "75", Duration: "52", HoursPerWeek: "1e307"}},
		{"huge rate", Input{HourlyRate: "1e308", Duration: "52", HoursPerWeek: "40"}},
		{"huge negative hours", Input{HourlyRate: "75", Duration: "52", HoursPerWeek: "-1e307"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.input)
			if got.ProductsBuilt < 0 {
				t.Fatalf("ProductsBuilt = %d, expected a non-negative count", got.ProductsBuilt)
			}
		})
	}

	got := Compute(Input{HourlyRate: "75", Duration: "52", HoursPerWeek: "1e307"})
	if !math.IsInf(got.TotalHours, 1) {
		t.Fatalf("TotalHours = %v, expected +Inf", got.TotalHours)
	}
	if got.ProductsBuilt != math.MaxInt {
		t.Fatalf("ProductsBuilt = %d, expected %d", got.ProductsBuilt, math.MaxInt)
	}
}

func TestProductsFromHours(t *testing.T) {
	tests := []struct {
		hours    float64
		expected int
	}{
		{80, 10},
		{7.99, 0},
		{-16, 0},
		{math.NaN(), 0},
		{math.Inf(-1), 0},
		{math.Inf(1), math.MaxInt},
		{1e300, math.MaxInt},
	}

	for _, tt := range tests {
		if got := productsFromHours(tt.hours); got != tt.expected {
			t.Errorf("productsFromHours(%v) = %d, expected %d", tt.hours, got, tt.expected)
		}
	}
}

func TestResolveWeeks(t *testing.T) {
	tests := []struct {
		name        string
		duration    string
		customWeeks string
		expected    int
	}{
		{"preset", "4", "", 4},
		{"preset ignores custom weeks", "12", "30", 12},
		{"custom", "custom", "6", 6},
		{"custom empty", "custom", "", 1},
		{"custom non-numeric", "custom", "soon", 1},
		{"custom zero", "custom", "0", 1},
		{"custom negative", "custom", "-3", 1},
		{"custom hex", "custom", "0x10", 1},
		{"custom overflow", "custom", "99999999999999999999999", 1},
		{"negative preset", "-2", "", -2},
		{"custom fractional truncates", "custom", "2.9", 2},
		{"custom trailing text", "custom", "3 weeks", 3},
		{"unparseable preset", "forever", "", 1},
		{"empty selector", "", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveWeeks(tt.duration, tt.customWeeks); got != tt.expected {
				t.Errorf("ResolveWeeks(%q, %q) = %d, expected %d", tt.duration, tt.customWeeks, got, tt.expected)
			}
		})
	}
}

func TestComputeCustomWeeksEmpty(t *testing.T) {
	got := Compute(Input{Duration: "custom"})
	if got.Weeks != 1 {
		t.Fatalf("Weeks = %d, expected 1", got.Weeks)
	}
	if got.TotalHours != 20 {
		t.Fatalf("TotalHours = %v, expected 20", got.TotalHours)
	}
}

func TestInputDecodesNumbersAndStrings(t *testing.T) {
	var in Input
	body := `{"hourlyRate": 90, "duration": "custom", "customWeeks": 3, "hoursPerWeek": null}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := Input{HourlyRate: "90", Duration: "custom", CustomWeeks: "3", HoursPerWeek: ""}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Fatalf("decoded input mismatch (-want +got):\n%s", diff)
	}

	got := Compute(in)
	if got.DirectCost != 90*3*20 {
		t.Fatalf("DirectCost = %v, expected %v", got.DirectCost, 90*3*20)
	}
}

func TestRawIgnoresCompositeValues(t *testing.T) {
	var in Input
	if err := json.Unmarshal([]byte(`{"hourlyRate": {"value": 10}, "duration": [4]}`), &in); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if in.HourlyRate != "" || in.Duration != "" {
		t.Fatalf("expected composite values to decode as empty, got %+v", in)
	}
}
