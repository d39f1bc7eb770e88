// Package money converts between user-facing decimal amounts and stored cents.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

var hundred = decimal.NewFromInt(100)

// Parse reads a decimal amount ("12.5", "12,50", "1234") into cents, rounding half away from zero.
// Negative amounts are rejected.
func Parse(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if clean == "" {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	if d.IsNegative() {
		return 0, ErrInvalidAmount
	}

	return d.Mul(hundred).Round(0).IntPart(), nil
}

// Format renders cents with exactly two decimals, e.g. 1250 -> "12.50".
func Format(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FromFloat converts a float amount (as found in legacy JSON snapshots) to cents.
func FromFloat(f float64) int64 {
	return decimal.NewFromFloat(f).Mul(hundred).Round(0).IntPart()
}

// Half returns half of cents, rounded towards zero.
func Half(cents int64) int64 {
	return cents / 2
}
