package money

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidAmount = errors.New("invalid money amount")

// ParseAmount converts a decimal currency value (like 12.34 or -50.00) to
// signed minor units as int64. Incomes are positive, expenses negative.
func ParseAmount(value float64) (int64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrInvalidAmount
	}
	// Prevent overflow: int64 max ~9e18 => value max ~9e16
	if value > 9e16 || value < -9e16 {
		return 0, fmt.Errorf("%w: too large", ErrInvalidAmount)
	}
	return int64(math.Round(value * 100.0)), nil
}

// FormatAmount renders signed minor units as a decimal string, -123.45 style.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
