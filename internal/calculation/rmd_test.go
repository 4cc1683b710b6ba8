package calculation

import (
	"testing"

	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionPeriod(t *testing.T) {
	tests := []struct {
		age    int
		period string
		ok     bool
	}{
		{age: 55},
		{age: 72},
		{age: 73, period: "26.5", ok: true},
		{age: 80, period: "20.2", ok: true},
		{age: 90, period: "12.2", ok: true},
		{age: 94, period: "9.5", ok: true},
		{age: 95},
	}
	for _, tt := range tests {
		period, ok := DistributionPeriod(tt.age)
		assert.Equal(t, tt.ok, ok, "age %d", tt.age)
		if tt.ok {
			assert.True(t, period.Equal(dec(tt.period)), "age %d period %s", tt.age, period)
		}
	}
}

func TestDistributionPeriod_DecreasesWithAge(t *testing.T) {
	prev, ok := DistributionPeriod(FirstRMDAge)
	require.True(t, ok)
	for age := FirstRMDAge + 1; age <= LastRMDAge; age++ {
		period, ok := DistributionPeriod(age)
		require.True(t, ok, "age %d missing", age)
		assert.True(t, period.LessThan(prev), "age %d period %s not below %s", age, period, prev)
		prev = period
	}
}

func TestRMDCalculator_CalculateRMD(t *testing.T) {
	calc := NewRMDCalculator(dec("0.30"), dec("0.03"))
	balance := dec("1000000")

	assert.True(t, calc.CalculateRMD(balance, 72).IsZero())
	assert.True(t, calc.CalculateRMD(balance, 95).IsZero())
	assert.True(t, calc.CalculateRMD(balance, 73).Equal(balance.Div(dec("26.5"))))
	assert.True(t, calc.CalculateRMD(dec("95"), 94).Equal(dec("10")))
}

func TestRMDCalculator_InflationFactors(t *testing.T) {
	calc := NewRMDCalculator(dec("0.30"), dec("0.03"))
	factors := calc.InflationFactors(SimulationYears)

	require.Len(t, factors, SimulationYears)
	assert.True(t, factors[0].Equal(dec("1")), "age 55 is undiscounted")
	assert.True(t, factors[1].Equal(dec("1.03")))
	assert.True(t, factors[2].Equal(dec("1.0609")))
	for i := 1; i < len(factors); i++ {
		assert.True(t, factors[i].GreaterThan(factors[i-1]), "factor %d not increasing", i)
	}

	deflation := NewRMDCalculator(dec("0"), dec("-0.02")).InflationFactors(3)
	assert.True(t, deflation[2].Equal(dec("0.9604")))
}

func TestRMDCalculator_Schedule(t *testing.T) {
	ages := Ages(StartAge, SimulationYears)
	balances := make([]decimal.Decimal, len(ages))
	for i := range balances {
		balances[i] = dec("1000000")
	}
	tax := dec("0.30")
	calc := NewRMDCalculator(tax, dec("0.03"))
	factors := calc.InflationFactors(len(ages))

	schedule := calc.Schedule(domain.ProductFIA, balances, ages)
	assert.Equal(t, domain.ProductFIA, schedule.Product)
	require.Len(t, schedule.Years, SimulationYears)

	for i, y := range schedule.Years {
		assert.Equal(t, ages[i], y.Age)
		assert.True(t, y.StartBalance.Equal(balances[i]))
		if y.Age < FirstRMDAge || y.Age > LastRMDAge {
			assert.True(t, y.GrossRMD.IsZero(), "age %d", y.Age)
			assert.True(t, y.AfterTaxRMD.IsZero(), "age %d", y.Age)
			assert.True(t, y.InflationAdjustedRMD.IsZero(), "age %d", y.Age)
			continue
		}
		period, _ := DistributionPeriod(y.Age)
		assert.True(t, y.GrossRMD.Equal(balances[i].Div(period)), "age %d", y.Age)
		assert.True(t, y.GrossRMD.Mul(decimal.NewFromInt(1).Sub(tax)).Equal(y.AfterTaxRMD), "age %d", y.Age)
		assert.True(t, y.InflationAdjustedRMD.Equal(y.AfterTaxRMD.Div(factors[i])), "age %d", y.Age)
		assert.True(t, y.InflationAdjustedRMD.LessThan(y.AfterTaxRMD), "age %d", y.Age)
	}
}

func TestRMDCalculator_ScheduleDiscountsFromFirstAge(t *testing.T) {
	calc := NewRMDCalculator(dec("0.30"), dec("0.03"))
	schedule := calc.Schedule(domain.Product401k, []decimal.Decimal{dec("265"), dec("255")}, []int{73, 74})

	require.Len(t, schedule.Years, 2)
	first, second := schedule.Years[0], schedule.Years[1]
	assert.True(t, first.GrossRMD.Equal(dec("10")))
	assert.True(t, first.AfterTaxRMD.Equal(dec("7")))
	assert.True(t, first.InflationAdjustedRMD.Equal(dec("7")))
	assert.True(t, second.GrossRMD.Equal(dec("10")))
	assert.True(t, second.InflationAdjustedRMD.Equal(dec("7").Div(dec("1.03"))))
}

func TestRMDCalculator_ScheduleUsesShorterInput(t *testing.T) {
	calc := NewRMDCalculator(dec("0.30"), dec("0.03"))
	schedule := calc.Schedule(domain.ProductFIA, []decimal.Decimal{dec("1"), dec("2"), dec("3")}, []int{55, 56})
	assert.Len(t, schedule.Years, 2)
}

func TestRMDCalculator_AcceptsAnyRates(t *testing.T) {
	balances := []decimal.Decimal{dec("265"), dec("255")}

	negativeTax := NewRMDCalculator(dec("-0.5"), dec("0")).Schedule(domain.ProductFIA, balances, []int{73, 74})
	assert.True(t, negativeTax.Years[0].AfterTaxRMD.Equal(dec("15")))

	assert.NotPanics(t, func() {
		s := NewRMDCalculator(dec("0.3"), dec("-1")).Schedule(domain.ProductFIA, balances, []int{73, 74})
		assert.True(t, s.Years[1].InflationAdjustedRMD.IsZero())
	})
}
