package output

import (
	"encoding/json"

	"github.com/rpgo/fia-comparison/internal/calculation"
	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/rpgo/fia-comparison/pkg/money"
	"github.com/shopspring/decimal"
)

// JSONFormatter serializes the comparison as pretty-printed JSON. Amounts are
// rounded to cents and rates to six places; full precision stays in memory.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

type jsonRMDYear struct {
	StartBalance         string `json:"start_balance"`
	GrossRMD             string `json:"rmd"`
	AfterTaxRMD          string `json:"after_tax_rmd"`
	InflationAdjustedRMD string `json:"inflation_adjusted_rmd"`
}

type jsonRow struct {
	Year              int         `json:"year"`
	Age               int         `json:"age"`
	NominalReturn     string      `json:"nominal_return"`
	ParticipationRate string      `json:"participation_rate"`
	FIAReturn         string      `json:"fia_return"`
	K401Return        string      `json:"k401_return"`
	FIA               jsonRMDYear `json:"fia"`
	K401              jsonRMDYear `json:"k401"`
}

type jsonProductSummary struct {
	FinalStartBalance         string `json:"final_start_balance"`
	PeakStartBalance          string `json:"peak_start_balance"`
	TotalGrossRMD             string `json:"total_rmd"`
	TotalAfterTaxRMD          string `json:"total_after_tax_rmd"`
	TotalInflationAdjustedRMD string `json:"total_inflation_adjusted_rmd"`
	FirstRMDAge               int    `json:"first_rmd_age"`
}

type jsonStatistics struct {
	FirstYear        int    `json:"first_year"`
	LastYear         int    `json:"last_year"`
	Count            int    `json:"count"`
	Mean             string `json:"mean"`
	Median           string `json:"median"`
	StdDev           string `json:"std_dev"`
	Min              string `json:"min"`
	Max              string `json:"max"`
	NegativeYears    int    `json:"negative_years"`
	CumulativeGrowth string `json:"cumulative_growth"`
}

type jsonReport struct {
	Parameters  domain.Parameters  `json:"parameters"`
	Assumptions []string           `json:"assumptions"`
	Historical  jsonStatistics     `json:"historical_returns"`
	Rows        []jsonRow          `json:"rows"`
	FIA         jsonProductSummary `json:"fia_summary"`
	K401        jsonProductSummary `json:"k401_summary"`
	Leader      domain.Product     `json:"leader"`
	Advantage   string             `json:"inflation_adjusted_advantage"`
}

func (j JSONFormatter) Format(results *domain.Comparison) ([]byte, error) {
	report := jsonReport{
		Parameters:  results.Parameters,
		Assumptions: assumptionsFor(results),
		Historical:  jsonStats(calculation.SP500Statistics()),
		Rows:        make([]jsonRow, 0, len(results.Rows)),
		FIA:         jsonSummary(results.Summary.FIA),
		K401:        jsonSummary(results.Summary.K401),
		Leader:      results.Summary.Leader,
		Advantage:   cents(results.Summary.Advantage),
	}
	for i, r := range results.Rows {
		report.Rows = append(report.Rows, jsonRow{
			Year:              r.Year,
			Age:               r.Age,
			NominalReturn:     rateAt(results.NominalReturns, i),
			ParticipationRate: rateAt(results.ParticipationPath, i),
			FIAReturn:         rateAt(results.FIAReturns, i),
			K401Return:        rateAt(results.K401Returns, i),
			FIA:               jsonYear(r.FIA),
			K401:              jsonYear(r.K401),
		})
	}
	return json.MarshalIndent(report, "", "  ")
}

func jsonYear(y domain.RMDYear) jsonRMDYear {
	return jsonRMDYear{
		StartBalance:         cents(y.StartBalance),
		GrossRMD:             cents(y.GrossRMD),
		AfterTaxRMD:          cents(y.AfterTaxRMD),
		InflationAdjustedRMD: cents(y.InflationAdjustedRMD),
	}
}

func jsonSummary(s domain.ProductSummary) jsonProductSummary {
	return jsonProductSummary{
		FinalStartBalance:         cents(s.FinalStartBalance),
		PeakStartBalance:          cents(s.PeakStartBalance),
		TotalGrossRMD:             cents(s.TotalGrossRMD),
		TotalAfterTaxRMD:          cents(s.TotalAfterTaxRMD),
		TotalInflationAdjustedRMD: cents(s.TotalInflationAdjustedRMD),
		FirstRMDAge:               s.FirstRMDAge,
	}
}

func jsonStats(s calculation.HistoricalStatistics) jsonStatistics {
	rate := func(d decimal.Decimal) string { return d.StringFixed(6) }
	return jsonStatistics{
		FirstYear:        s.FirstYear,
		LastYear:         s.LastYear,
		Count:            s.Count,
		Mean:             rate(s.Mean),
		Median:           rate(s.Median),
		StdDev:           rate(s.StdDev),
		Min:              rate(s.Min),
		Max:              rate(s.Max),
		NegativeYears:    s.NegativeYears,
		CumulativeGrowth: rate(s.CumulativeGrowth),
	}
}

func cents(d decimal.Decimal) string { return money.New(d).String() }

func rateAt(rates []decimal.Decimal, i int) string {
	if i >= len(rates) {
		return ""
	}
	return rates[i].StringFixed(6)
}
