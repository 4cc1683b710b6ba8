package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with full decimal precision.
type Money struct {
	decimal.Decimal
}

// New wraps a decimal amount.
func New(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// Whole rounds to whole dollars using banker's rounding.
func (m Money) Whole() Money {
	return Money{m.Decimal.RoundBank(0)}
}

// Add adds another amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String returns the amount with two decimals and no grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders whole dollars with a leading "$" and thousands separators.
// Negative amounts keep the sign after the symbol ($-1,234), including those
// that round to zero ($-0). Any magnitude is grouped, not just int64 range.
func (m Money) Format() string {
	whole := m.Whole()
	if whole.IsZero() && m.IsNegative() {
		return "$-0"
	}
	return "$" + humanize.BigComma(whole.BigInt())
}

// Format renders a raw decimal the same way Money.Format does.
func Format(d decimal.Decimal) string {
	return New(d).Format()
}
