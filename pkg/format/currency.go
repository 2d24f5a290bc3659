// Package format renders incomes, hours and wages for human-readable output.
package format

import (
	"strings"

	"github.com/iwvelando/labor-supply/pkg/constants"
	"github.com/shopspring/decimal"
)

// HoursPlaces is the number of decimals shown for hours and slopes.
const HoursPlaces = 4

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(constants.DecimalPlaces)
	formatted := groupThousands(d.Abs().StringFixed(constants.DecimalPlaces))
	if d.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(constants.DecimalPlaces)
	formatted := groupThousands(d.Abs().StringFixed(constants.DecimalPlaces))
	if d.IsNegative() {
		return "-" + formatted
	}
	return formatted
}

// Hours returns hours rounded half away from zero to HoursPlaces decimals.
// Values that round to zero print without a sign.
func Hours(value float64) string {
	d := decimal.NewFromFloat(value).Round(HoursPlaces)
	if d.IsZero() {
		d = decimal.Zero
	}
	return d.StringFixed(HoursPlaces)
}

func groupThousands(value string) string {
	parts := strings.SplitN(value, ".", 2)
	intPart := parts[0]

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

	if len(parts) == 2 {
		return intPart + "." + parts[1]
	}
	return intPart
}
