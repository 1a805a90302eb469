package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestHoursBetween(t *testing.T) {
	calc := Calculator{}
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("zero interval", func(t *testing.T) {
		assert.True(t, calc.HoursBetween(base, base).IsZero())
	})

	t.Run("exactly one hour", func(t *testing.T) {
		end := base.Add(3_600_000 * time.Millisecond)
		assert.Equal(t, "1.00", calc.HoursBetween(base, end).StringFixed(2))
	})

	t.Run("two hours", func(t *testing.T) {
		end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, "2.00", calc.HoursBetween(base, end).StringFixed(2))
	})

	t.Run("rounds half away from zero", func(t *testing.T) {
		// 9 minutes = 0.15 hours exactly; 9m18s = 0.155 hours, rounds up to 0.16
		end := base.Add(9*time.Minute + 18*time.Second)
		assert.Equal(t, "0.16", calc.HoursBetween(base, end).StringFixed(2))
	})

	t.Run("partial hours", func(t *testing.T) {
		end := base.Add(90 * time.Minute)
		assert.Equal(t, "1.50", calc.HoursBetween(base, end).StringFixed(2))
	})

	t.Run("negative interval propagates by default", func(t *testing.T) {
		got := calc.HoursBetween(base, base.Add(-30*time.Minute))
		assert.Equal(t, "-0.50", got.StringFixed(2))
	})

	t.Run("negative interval clamped when configured", func(t *testing.T) {
		clamped := Calculator{ClampNonNegative: true}
		got := clamped.HoursBetween(base, base.Add(-30*time.Minute))
		assert.True(t, got.IsZero())
	})
}

func TestTotalPrice(t *testing.T) {
	calc := Calculator{}

	total := calc.TotalPrice(d("10.00"), d("2.00"))
	assert.Equal(t, "20.00", total.StringFixed(2))

	// Idempotent: same inputs always give the same result.
	again := calc.TotalPrice(d("10.00"), d("2.00"))
	assert.True(t, total.Equal(again))

	t.Run("rounds to minor unit", func(t *testing.T) {
		total := calc.TotalPrice(d("9.99"), d("1.33"))
		assert.Equal(t, "13.29", total.StringFixed(2))
	})

	t.Run("zero rate", func(t *testing.T) {
		assert.True(t, calc.TotalPrice(decimal.Zero, d("5.00")).IsZero())
	})
}

func TestExtensionCost(t *testing.T) {
	calc := Calculator{}

	cost := calc.ExtensionCost(d("10.00"), 3)
	assert.Equal(t, "30.00", cost.StringFixed(2))

	cost = calc.ExtensionCost(d("12.50"), 2)
	assert.Equal(t, "25.00", cost.StringFixed(2))
}

func TestBookingScenario(t *testing.T) {
	// Room at 10.00/hour, booked 10:00-12:00, then extended by 3 hours.
	calc := Calculator{}
	rate := d("10.00")
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	hours := calc.HoursBetween(start, end)
	require.Equal(t, "2.00", hours.StringFixed(2))

	total := calc.TotalPrice(rate, hours)
	require.Equal(t, "20.00", total.StringFixed(2))

	extra := calc.ExtensionCost(rate, 3)
	require.Equal(t, "30.00", extra.StringFixed(2))
	assert.Equal(t, "50.00", total.Add(extra).StringFixed(2))
}
