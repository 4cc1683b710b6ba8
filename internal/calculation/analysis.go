package calculation

import (
	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/rpgo/fia-comparison/pkg/money"
)

// SummarizeSchedule totals a product's distributions.
func SummarizeSchedule(schedule domain.RMDSchedule) domain.ProductSummary {
	summary := domain.ProductSummary{Product: schedule.Product}
	gross, afterTax, adjusted := money.Zero(), money.Zero(), money.Zero()
	for i, y := range schedule.Years {
		if i == 0 || y.StartBalance.GreaterThan(summary.PeakStartBalance) {
			summary.PeakStartBalance = y.StartBalance
		}
		summary.FinalStartBalance = y.StartBalance
		gross = gross.Add(money.New(y.GrossRMD))
		afterTax = afterTax.Add(money.New(y.AfterTaxRMD))
		adjusted = adjusted.Add(money.New(y.InflationAdjustedRMD))
		if summary.FirstRMDAge == 0 && !y.GrossRMD.IsZero() {
			summary.FirstRMDAge = y.Age
		}
	}
	summary.TotalGrossRMD = gross.Decimal
	summary.TotalAfterTaxRMD = afterTax.Decimal
	summary.TotalInflationAdjustedRMD = adjusted.Decimal
	return summary
}

// Summarize compares both schedules on inflation-adjusted after-tax income.
// Ties go to the 401(k).
func Summarize(fia, k401 domain.RMDSchedule) domain.ComparisonSummary {
	fiaSummary := SummarizeSchedule(fia)
	k401Summary := SummarizeSchedule(k401)

	leader, trailer := k401Summary, fiaSummary
	if fiaSummary.TotalInflationAdjustedRMD.GreaterThan(k401Summary.TotalInflationAdjustedRMD) {
		leader, trailer = fiaSummary, k401Summary
	}
	advantage := money.New(leader.TotalInflationAdjustedRMD).Sub(money.New(trailer.TotalInflationAdjustedRMD))
	return domain.ComparisonSummary{
		FIA:       fiaSummary,
		K401:      k401Summary,
		Leader:    leader.Product,
		Advantage: advantage.Decimal,
	}
}

// AssembleComparison joins both schedules row by row with the year numbers.
func AssembleComparison(years []int, fia, k401 domain.RMDSchedule) []domain.ComparisonRow {
	n := min(len(years), len(fia.Years), len(k401.Years))
	rows := make([]domain.ComparisonRow, n)
	for i := 0; i < n; i++ {
		rows[i] = domain.ComparisonRow{
			Year: years[i],
			Age:  fia.Years[i].Age,
			FIA:  fia.Years[i],
			K401: k401.Years[i],
		}
	}
	return rows
}
