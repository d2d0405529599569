package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/planning-trap/pkg/constants"
	"github.com/iwvelando/planning-trap/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Number returns an integer with thousands separators (e.g., "1,234,567").
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// WholeDollars rounds half up to whole dollars and returns it with a dollar
// sign and thousands separators (e.g., "$15,000").
func WholeDollars(amount float64) string {
	rounded := mathutil.RoundHalfUp(amount)
	if rounded < 0 {
		return "-" + constants.CurrencySymbol + Number(int64(-rounded))
	}
	return constants.CurrencySymbol + Number(int64(rounded))
}

// Currency returns a currency string with a dollar sign, thousands separators
// and cents (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-" + constants.CurrencySymbol + formatted
	}
	return constants.CurrencySymbol + formatted
}

// Hours returns an hour count without trailing zeros (e.g., "80", "37.5").
func Hours(hours float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", hours), "0"), ".")
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
