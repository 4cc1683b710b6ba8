package calculation

import (
	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/rpgo/fia-comparison/pkg/money"
)

// ComparisonEngine runs the FIA vs 401(k) pipeline: return series, return
// shaping, compounding, RMD schedules and the joined comparison table.
type ComparisonEngine struct {
	Logger Logger
}

// NewComparisonEngine creates an engine that logs nothing.
func NewComparisonEngine() *ComparisonEngine {
	return &ComparisonEngine{Logger: NopLogger{}}
}

// NewComparisonEngineWithLogger creates an engine reporting through logger.
func NewComparisonEngineWithLogger(logger Logger) *ComparisonEngine {
	return &ComparisonEngine{Logger: loggerOrNop(logger)}
}

// Run computes the full comparison for params. Parameters are used as given;
// range checking belongs to the caller.
func (ce *ComparisonEngine) Run(params domain.Parameters) *domain.Comparison {
	log := loggerOrNop(ce.Logger)

	nominal := GenerateReturnSeries()
	path := ParticipationPath(params.FIAParticipationStart, params.FIAParticipationEnd, len(nominal))
	fiaReturns := FIAReturns(nominal, params.FIAParticipationStart, params.FIAParticipationEnd, params.FIAFloor)
	k401Returns := FeeDragReturns(nominal, params.FeeDrag)
	log.Debugf("return series: %d years, participation %s -> %s, floor %s, fee %s",
		len(nominal), params.FIAParticipationStart, params.FIAParticipationEnd, params.FIAFloor, params.FeeDrag)

	fiaBalances := CompoundBalances(params.StartingBalance, fiaReturns)
	k401Balances := CompoundBalances(params.StartingBalance, k401Returns)

	ages := Ages(StartAge, len(nominal))
	rmdCalc := NewRMDCalculator(params.RMDTaxRate, params.InflationRate)
	fiaSchedule := rmdCalc.Schedule(domain.ProductFIA, fiaBalances, ages)
	k401Schedule := rmdCalc.Schedule(domain.Product401k, k401Balances, ages)

	summary := Summarize(fiaSchedule, k401Schedule)
	log.Infof("simulated ages %d-%d: FIA final balance %s, 401k final balance %s, leader %s by %s (inflation-adjusted)",
		ages[0], ages[len(ages)-1],
		money.New(summary.FIA.FinalStartBalance), money.New(summary.K401.FinalStartBalance),
		summary.Leader, money.New(summary.Advantage))

	return &domain.Comparison{
		Parameters:        params,
		NominalReturns:    nominal,
		ParticipationPath: path,
		FIAReturns:        fiaReturns,
		K401Returns:       k401Returns,
		Rows:              AssembleComparison(Years(len(nominal)), fiaSchedule, k401Schedule),
		Summary:           summary,
	}
}
