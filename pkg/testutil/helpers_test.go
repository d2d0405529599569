package testutil

import (
	"testing"

	"github.com/iwvelando/planning-trap/internal/engine"
)

func TestDefaultResultMatchesEngine(t *testing.T) {
	if got := engine.Compute(DefaultInput()); got != DefaultResult() {
		t.Fatalf("DefaultResult() = %+v, engine computed %+v", DefaultResult(), got)
	}
}

func TestResultFor(t *testing.T) {
	got := ResultFor(100, 2, 10)
	if got.DirectCost != 2000 || got.TotalHours != 20 || got.ProductsBuilt != 2 {
		t.Fatalf("ResultFor(100, 2, 10) = %+v", got)
	}
}
