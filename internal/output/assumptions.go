package output

import (
	"fmt"

	"github.com/rpgo/fia-comparison/internal/calculation"
	"github.com/rpgo/fia-comparison/internal/domain"
)

// GenerateAssumptions describes the modeling assumptions behind a run.
func GenerateAssumptions(params *domain.Parameters) []string {
	stats := calculation.SP500Statistics()
	return []string{
		fmt.Sprintf("Market returns: S&P 500 price returns %d-%d (%d years), played back twice (mean %s, worst %s, best %s, cumulative growth %s)",
			stats.FirstYear, stats.LastYear, stats.Count, FormatPercentage(stats.Mean), FormatPercentage(stats.Min),
			FormatPercentage(stats.Max), FormatPercentage(stats.CumulativeGrowth)),
		fmt.Sprintf("FIA participation: %s in year 1 falling linearly to %s in year %d",
			FormatPercentage(params.FIAParticipationStart), FormatPercentage(params.FIAParticipationEnd), calculation.SimulationYears),
		fmt.Sprintf("FIA floor: %s minimum credited return", FormatPercentage(params.FIAFloor)),
		fmt.Sprintf("401(k) fee drag: %s of gross growth annually", FormatPercentage(params.FeeDrag)),
		fmt.Sprintf("RMDs: IRS Uniform Lifetime Table, ages %d-%d, flat %s tax",
			calculation.FirstRMDAge, calculation.LastRMDAge, FormatPercentage(params.RMDTaxRate)),
		fmt.Sprintf("Inflation: %s annually, RMDs restated in age-%d dollars", FormatPercentage(params.InflationRate), calculation.StartAge),
		fmt.Sprintf("Return spread: median %s, standard deviation %s, %d of %d years negative",
			FormatPercentage(stats.Median), FormatPercentage(stats.StdDev), stats.NegativeYears, stats.Count),
	}
}

func assumptionsFor(results *domain.Comparison) []string {
	if len(results.Assumptions) > 0 {
		return results.Assumptions
	}
	return GenerateAssumptions(&results.Parameters)
}
