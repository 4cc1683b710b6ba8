package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/fia-comparison/internal/domain"
)

// ComparisonHeader lists the columns of the year-by-year comparison table.
var ComparisonHeader = []string{
	"Year", "Age",
	"FIA Start Balance", "FIA RMD", "FIA After-Tax RMD", "FIA Infl-Adj RMD",
	"401k Start Balance", "401k RMD", "401k After-Tax RMD", "401k Infl-Adj RMD",
}

// ComparisonTable renders one row of currency strings per simulation year,
// header excluded.
func ComparisonTable(results *domain.Comparison) [][]string {
	table := make([][]string, 0, len(results.Rows))
	for _, r := range results.Rows {
		table = append(table, []string{
			intToString(r.Year),
			intToString(r.Age),
			FormatCurrency(r.FIA.StartBalance),
			FormatCurrency(r.FIA.GrossRMD),
			FormatCurrency(r.FIA.AfterTaxRMD),
			FormatCurrency(r.FIA.InflationAdjustedRMD),
			FormatCurrency(r.K401.StartBalance),
			FormatCurrency(r.K401.GrossRMD),
			FormatCurrency(r.K401.AfterTaxRMD),
			FormatCurrency(r.K401.InflationAdjustedRMD),
		})
	}
	return table
}

// CSVComparisonExporter writes the comparison table as CSV.
type CSVComparisonExporter struct{}

func (c CSVComparisonExporter) Name() string      { return "csv" }
func (c CSVComparisonExporter) Extension() string { return "csv" }

func (c CSVComparisonExporter) Format(results *domain.Comparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(ComparisonHeader); err != nil {
		return nil, err
	}
	if err := w.WriteAll(ComparisonTable(results)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
