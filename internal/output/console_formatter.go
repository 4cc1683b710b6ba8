package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rpgo/fia-comparison/internal/domain"
)

// ConsoleFormatter renders the comparison as an aligned text table followed by
// a summary of both products.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.Comparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "FIA vs 401(k) RMD COMPARISON")
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "Starting balance: %s\n", FormatCurrency(results.Parameters.StartingBalance))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(ComparisonHeader, "\t")+"\t")
	for _, row := range ComparisonTable(results) {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintln(&buf)

	writeSummary(&buf, results.Summary)
	return buf.Bytes(), nil
}

func writeSummary(buf *bytes.Buffer, s domain.ComparisonSummary) {
	fmt.Fprintln(buf, "SUMMARY")
	fmt.Fprintln(buf, strings.Repeat("-", 60))
	for _, p := range []domain.ProductSummary{s.FIA, s.K401} {
		fmt.Fprintf(buf, "%s: final balance %s, peak %s, RMDs %s gross / %s after tax / %s inflation-adjusted\n",
			p.Product,
			FormatCurrency(p.FinalStartBalance),
			FormatCurrency(p.PeakStartBalance),
			FormatCurrency(p.TotalGrossRMD),
			FormatCurrency(p.TotalAfterTaxRMD),
			FormatCurrency(p.TotalInflationAdjustedRMD),
		)
	}
	if s.Leader != "" {
		fmt.Fprintf(buf, "More inflation-adjusted after-tax income: %s (+%s)\n", s.Leader, FormatCurrency(s.Advantage))
	}
}
