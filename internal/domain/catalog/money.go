// Package catalog holds the pure pricing and inventory rules of the shoe catalog.
package catalog

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PesoSign prefixes every displayed amount.
const PesoSign = "₱"

// Money is an amount in centavos.
type Money int64

// FromPesos converts a peso amount to centavos, rounding half away from zero.
func FromPesos(pesos float64) Money {
	return Money(math.Round(pesos * 100))
}

// Pesos returns the amount in pesos.
func (m Money) Pesos() float64 {
	return float64(m) / 100
}

// String renders the amount with two decimals and thousands separators.
func (m Money) String() string {
	return PesoSign + formatNumber(m.Pesos(), 2, 2)
}

// MarshalJSON encodes the amount as a peso number with at most two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, m.Pesos(), 'f', 2, 64), nil
}

// ApplyRate returns m*rate rounded half-up to the centavo. Rates are resolved
// to basis points so the result is exact for any two-decimal rate.
func (m Money) ApplyRate(rate float64) Money {
	bp := int64(math.Round(rate * 10_000))
	product := int64(m) * bp
	if product >= 0 {
		return Money((product + 5_000) / 10_000)
	}

	return Money(-((-product + 5_000) / 10_000))
}

// FormatPeso renders a display price such as ₱1,000 or ₱1,299.5.
func FormatPeso(pesos float64) string {
	return PesoSign + formatNumber(pesos, 0, 2)
}

func formatNumber(v float64, minFraction, maxFraction int) string {
	// Printers keep formatting state and are not shared across goroutines.
	return message.NewPrinter(language.English).Sprint(number.Decimal(v,
		number.MinFractionDigits(minFraction),
		number.MaxFractionDigits(maxFraction),
	))
}
