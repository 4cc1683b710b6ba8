package calculation

import (
	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// FirstRMDAge is the youngest age with a divisor in the table.
	FirstRMDAge = 73
	// LastRMDAge is the oldest age with a divisor in the table.
	LastRMDAge = 94
)

// IRS Uniform Lifetime Table distribution periods for ages 73 through 94.
var distributionPeriods = map[int]decimal.Decimal{
	73: decimal.RequireFromString("26.5"),
	74: decimal.RequireFromString("25.5"),
	75: decimal.RequireFromString("24.6"),
	76: decimal.RequireFromString("23.7"),
	77: decimal.RequireFromString("22.9"),
	78: decimal.RequireFromString("22.0"),
	79: decimal.RequireFromString("21.1"),
	80: decimal.RequireFromString("20.2"),
	81: decimal.RequireFromString("19.4"),
	82: decimal.RequireFromString("18.5"),
	83: decimal.RequireFromString("17.7"),
	84: decimal.RequireFromString("16.8"),
	85: decimal.RequireFromString("16.0"),
	86: decimal.RequireFromString("15.2"),
	87: decimal.RequireFromString("14.4"),
	88: decimal.RequireFromString("13.7"),
	89: decimal.RequireFromString("12.9"),
	90: decimal.RequireFromString("12.2"),
	91: decimal.RequireFromString("11.5"),
	92: decimal.RequireFromString("10.8"),
	93: decimal.RequireFromString("10.1"),
	94: decimal.RequireFromString("9.5"),
}

// DistributionPeriod returns the life-expectancy divisor for age and whether
// an RMD is required at that age.
func DistributionPeriod(age int) (decimal.Decimal, bool) {
	period, ok := distributionPeriods[age]
	return period, ok
}

// RMDCalculator applies a flat tax and an inflation discount to required
// minimum distributions.
type RMDCalculator struct {
	TaxRate       decimal.Decimal
	InflationRate decimal.Decimal
}

// NewRMDCalculator creates a new RMD calculator
func NewRMDCalculator(taxRate, inflationRate decimal.Decimal) *RMDCalculator {
	return &RMDCalculator{
		TaxRate:       taxRate,
		InflationRate: inflationRate,
	}
}

// CalculateRMD returns balance divided by the distribution period for age,
// or zero when the age has no RMD obligation.
func (rmd *RMDCalculator) CalculateRMD(balance decimal.Decimal, age int) decimal.Decimal {
	period, ok := DistributionPeriod(age)
	if !ok {
		return decimal.Zero
	}
	return balance.Div(period)
}

// AfterTax removes the flat tax from a gross distribution.
func (rmd *RMDCalculator) AfterTax(gross decimal.Decimal) decimal.Decimal {
	return gross.Mul(decimal.NewFromInt(1).Sub(rmd.TaxRate))
}

// InflationFactors returns the cumulative inflation factor in effect at each
// of n consecutive years, starting at 1.
func (rmd *RMDCalculator) InflationFactors(n int) []decimal.Decimal {
	factors := make([]decimal.Decimal, n)
	factor := decimal.NewFromInt(1)
	growth := decimal.NewFromInt(1).Add(rmd.InflationRate)
	for i := range factors {
		factors[i] = factor
		factor = factor.Mul(growth)
	}
	return factors
}

// Schedule computes the distribution schedule for balances aligned
// index-for-index with ages, youngest first.
func (rmd *RMDCalculator) Schedule(product domain.Product, balances []decimal.Decimal, ages []int) domain.RMDSchedule {
	n := min(len(balances), len(ages))
	factors := rmd.InflationFactors(n)
	years := make([]domain.RMDYear, n)
	for i := 0; i < n; i++ {
		gross := rmd.CalculateRMD(balances[i], ages[i])
		net := rmd.AfterTax(gross)
		// factor is zero only after an inflation rate of exactly -100%
		adjusted := decimal.Zero
		if !factors[i].IsZero() {
			adjusted = net.Div(factors[i])
		}
		years[i] = domain.RMDYear{
			Age:                  ages[i],
			StartBalance:         balances[i],
			GrossRMD:             gross,
			AfterTaxRMD:          net,
			InflationAdjustedRMD: adjusted,
		}
	}
	return domain.RMDSchedule{Product: product, Years: years}
}
