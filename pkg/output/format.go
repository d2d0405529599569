// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/planning-trap/internal/engine"
	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/format"
	"github.com/iwvelando/planning-trap/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display is a result prepared for rendering.
type Display struct {
	Result          engine.Result `json:"result"`
	DirectCost      string        `json:"directCost"`
	OpportunityCost string        `json:"opportunityCost"`
	TotalDamage     string        `json:"totalDamage"`
	ProductsLost    int           `json:"productsLost"`
	TotalHours      string        `json:"totalHours"`
	Weeks           int           `json:"weeks"`
	ProgressPercent int           `json:"progressPercent"`
	HighDamage      bool          `json:"highDamage"`
	Insight         string        `json:"insight"`
}

// NewDisplay rounds and formats r for display.
func NewDisplay(r engine.Result, insight string) Display {
	return Display{
		Result:          r,
		DirectCost:      format.WholeDollars(r.DirectCost),
		OpportunityCost: format.WholeDollars(r.OpportunityCost),
		TotalDamage:     format.WholeDollars(r.TotalDamage),
		ProductsLost:    r.ProductsBuilt,
		TotalHours:      format.Hours(r.TotalHours),
		Weeks:           r.Weeks,
		ProgressPercent: mathutil.ProgressPercent(r.TotalHours),
		HighDamage:      r.TotalDamage > constants.HighDamageThreshold,
		Insight:         insight,
	}
}

// PrettyFormat writes a human-readable summary.
func PrettyFormat(w io.Writer, d Display) {
	p := message.NewPrinter(language.English)
	_, _ = fmt.Fprintf(w, "--- Planning trap: %d weeks, %s hours ---\n", d.Weeks, d.TotalHours)
	_, _ = fmt.Fprintf(w, "Direct cost      | %s\n", d.DirectCost)
	_, _ = fmt.Fprintf(w, "Opportunity cost | %s\n", d.OpportunityCost)
	_, _ = fmt.Fprintf(w, "Total damage     | %s\n", d.TotalDamage)
	_, _ = p.Fprintf(w, "Products lost    | %d\n", d.ProductsLost)
	_, _ = fmt.Fprintf(w, "Progress         | %d%%\n", d.ProgressPercent)
	_, _ = fmt.Fprintf(w, "\n%s\n", d.Insight)
}

// CsvFormat writes a header row and one value row with unrounded figures.
func CsvFormat(w io.Writer, d Display) error {
	cw := csv.NewWriter(w)
	records := [][]string{
		{"weeks", "total hours", "direct cost", "opportunity cost", "total damage", "products lost", "insight"},
		{
			strconv.Itoa(d.Weeks),
			strconv.FormatFloat(d.Result.TotalHours, 'f', -1, 64),
			strconv.FormatFloat(d.Result.DirectCost, 'f', 2, 64),
			strconv.FormatFloat(d.Result.OpportunityCost, 'f', 2, 64),
			strconv.FormatFloat(d.Result.TotalDamage, 'f', 2, 64),
			strconv.Itoa(d.ProductsLost),
			d.Insight,
		},
	}
	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat writes the display model as indented JSON.
func JSONFormat(w io.Writer, d Display) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

// Write renders d in the named output format.
func Write(w io.Writer, outputFormat string, d Display) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, d)
		return nil
	case constants.OutputFormatCSV:
		return CsvFormat(w, d)
	case constants.OutputFormatJSON:
		return JSONFormat(w, d)
	default:
		return fmt.Errorf("unsupported output format %q", outputFormat)
	}
}

// InsightTable writes the threshold table, highest threshold first.
func InsightTable(w io.Writer) {
	table := engine.Insights()
	_, _ = fmt.Fprintf(w, "Threshold  | Insight\n")
	_, _ = fmt.Fprintf(w, "_________  | _______\n")
	for i := len(table) - 1; i >= 0; i-- {
		_, _ = fmt.Fprintf(w, "%-10s | %s\n", format.WholeDollars(table[i].Threshold), table[i].Message)
	}
	_, _ = fmt.Fprintf(w, "%-10s | %s\n", "below", engine.FallbackInsight)
}
