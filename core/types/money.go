// Package types - shared value types for fare computation
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	// CurrencyRUB is the only currency fares are quoted in
	CurrencyRUB Currency = "RUB"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// RoundWhole rounds an amount to the nearest whole currency unit,
// half away from zero. Fares are quoted in whole rubles.
func RoundWhole(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
