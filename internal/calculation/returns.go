package calculation

import (
	"github.com/shopspring/decimal"
)

const (
	// SimulationYears is the number of year-start balances reported per product.
	SimulationYears = 40
	// HistoricalFirstYear is the calendar year of the first historical return.
	HistoricalFirstYear = 2003
)

// sp500PriceReturns holds S&P 500 annual price returns for 2003 through 2022.
var sp500PriceReturns = mustDecimals(
	"0.2638", "0.0899", "0.0300", "0.1362", "0.0310", "-0.3849", "0.2345", "0.1284", "0.0000", "0.1351",
	"0.2960", "0.1139", "-0.0007", "0.0954", "0.1922", "-0.0624", "0.2888", "0.1633", "0.2651", "-0.1954",
)

func mustDecimals(values ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.RequireFromString(v)
	}
	return out
}

// HistoricalReturns returns a copy of the 20-year S&P 500 price return table.
func HistoricalReturns() []decimal.Decimal {
	return append([]decimal.Decimal(nil), sp500PriceReturns...)
}

// GenerateReturnSeries builds the 40-year nominal return sequence: the
// historical table played back twice, in order.
func GenerateReturnSeries() []decimal.Decimal {
	return repeatSeries(sp500PriceReturns, 2)
}

func repeatSeries(table []decimal.Decimal, times int) []decimal.Decimal {
	out := make([]decimal.Decimal, 0, len(table)*times)
	for i := 0; i < times; i++ {
		out = append(out, table...)
	}
	return out
}

// ParticipationPath interpolates n participation rates from start to end
// with both endpoints included.
func ParticipationPath(start, end decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return []decimal.Decimal{}
	}
	path := make([]decimal.Decimal, n)
	path[0] = start
	if n == 1 {
		return path
	}
	span := end.Sub(start)
	steps := decimal.NewFromInt(int64(n - 1))
	for i := 1; i < n-1; i++ {
		// multiply before dividing so rounding never accumulates across steps
		path[i] = start.Add(span.Mul(decimal.NewFromInt(int64(i))).Div(steps))
	}
	path[n-1] = end
	return path
}

// ApplyFloor clamps a credited return to the guaranteed minimum.
func ApplyFloor(floor, credited decimal.Decimal) decimal.Decimal {
	return decimal.Max(floor, credited)
}

// FIAReturns scales each nominal return by the participation rate for that
// year and floors the result.
func FIAReturns(nominal []decimal.Decimal, participationStart, participationEnd, floor decimal.Decimal) []decimal.Decimal {
	path := ParticipationPath(participationStart, participationEnd, len(nominal))
	out := make([]decimal.Decimal, len(nominal))
	for i, r := range nominal {
		out[i] = ApplyFloor(floor, path[i].Mul(r))
	}
	return out
}

// FeeDragReturns applies a multiplicative annual fee: (1+r)*(1-fee) - 1.
func FeeDragReturns(nominal []decimal.Decimal, fee decimal.Decimal) []decimal.Decimal {
	keep := decimal.NewFromInt(1).Sub(fee)
	out := make([]decimal.Decimal, len(nominal))
	for i, r := range nominal {
		out[i] = decimal.NewFromInt(1).Add(r).Mul(keep).Sub(decimal.NewFromInt(1))
	}
	return out
}
