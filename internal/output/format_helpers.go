package output

import (
	"strconv"

	"github.com/rpgo/fia-comparison/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole US dollars: "$1,263,800".
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

func intToString(i int) string { return strconv.Itoa(i) }

var decimalHundred = decimal.NewFromInt(100)
