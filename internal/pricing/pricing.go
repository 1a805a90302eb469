// Package pricing derives booking durations and prices. All functions are
// pure: safe to call concurrently on independent inputs, no hidden state.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// moneyPlaces is the minor-unit precision of the modeled currency.
const moneyPlaces = 2

var msPerHour = decimal.NewFromInt(3_600_000)

// Calculator computes durations and prices from booking intervals and room rates.
//
// ClampNonNegative controls how malformed intervals (end <= start) behave:
// when set, HoursBetween floors negative results to zero instead of
// propagating them. Callers are still expected to validate end > start before
// pricing; the flag only changes what a bad interval computes to.
type Calculator struct {
	ClampNonNegative bool
}

// HoursBetween returns the elapsed hours between start and end, rounded to
// two decimal places (half away from zero).
func (c Calculator) HoursBetween(start, end time.Time) decimal.Decimal {
	ms := end.Sub(start).Milliseconds()
	hours := decimal.NewFromInt(ms).Div(msPerHour).Round(moneyPlaces)
	if c.ClampNonNegative && hours.IsNegative() {
		return decimal.Zero
	}
	return hours
}

// TotalPrice returns pricePerHour * hours rounded to the currency's minor unit.
func (c Calculator) TotalPrice(pricePerHour, hours decimal.Decimal) decimal.Decimal {
	return pricePerHour.Mul(hours).Round(moneyPlaces)
}

// ExtensionCost returns the incremental cost of adding extensionHours at the
// given hourly rate.
func (c Calculator) ExtensionCost(pricePerHour decimal.Decimal, extensionHours int) decimal.Decimal {
	return pricePerHour.Mul(decimal.NewFromInt(int64(extensionHours))).Round(moneyPlaces)
}
