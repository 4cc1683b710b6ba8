package calculation

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// HistoricalStatistics provides a statistical summary of a return table.
type HistoricalStatistics struct {
	FirstYear        int             `json:"first_year"`
	LastYear         int             `json:"last_year"`
	Count            int             `json:"count"`
	Mean             decimal.Decimal `json:"mean"`
	Median           decimal.Decimal `json:"median"`
	StdDev           decimal.Decimal `json:"std_dev"`
	Min              decimal.Decimal `json:"min"`
	Max              decimal.Decimal `json:"max"`
	NegativeYears    int             `json:"negative_years"`
	CumulativeGrowth decimal.Decimal `json:"cumulative_growth"`
}

// SP500Statistics summarizes the S&P 500 table behind the return series.
func SP500Statistics() HistoricalStatistics {
	stats := CalculateStatistics(sp500PriceReturns)
	stats.FirstYear = HistoricalFirstYear
	stats.LastYear = HistoricalFirstYear + len(sp500PriceReturns) - 1
	return stats
}

// CalculateStatistics computes mean, median, population standard deviation,
// extremes and the compounded growth of values.
func CalculateStatistics(values []decimal.Decimal) HistoricalStatistics {
	if len(values) == 0 {
		return HistoricalStatistics{}
	}

	var sum decimal.Decimal
	growth := decimal.NewFromInt(1)
	negative := 0
	min, max := values[0], values[0]
	for _, v := range values {
		sum = sum.Add(v)
		growth = growth.Mul(decimal.NewFromInt(1).Add(v))
		if v.IsNegative() {
			negative++
		}
		if v.LessThan(min) {
			min = v
		}
		if v.GreaterThan(max) {
			max = v
		}
	}
	count := decimal.NewFromInt(int64(len(values)))
	mean := sum.Div(count)

	var varianceSum decimal.Decimal
	for _, v := range values {
		diff := v.Sub(mean)
		varianceSum = varianceSum.Add(diff.Mul(diff))
	}
	variance := varianceSum.Div(count).InexactFloat64()
	stdDev := decimal.NewFromFloat(math.Sqrt(variance))

	sorted := append([]decimal.Decimal(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = sorted[mid-1].Add(sorted[mid]).Div(decimal.NewFromInt(2))
	}

	return HistoricalStatistics{
		Count:            len(values),
		Mean:             mean,
		Median:           median,
		StdDev:           stdDev,
		Min:              min,
		Max:              max,
		NegativeYears:    negative,
		CumulativeGrowth: growth.Sub(decimal.NewFromInt(1)),
	}
}
