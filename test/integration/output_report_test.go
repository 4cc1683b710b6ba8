package integration

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/fia-comparison/internal/calculation"
	"github.com/rpgo/fia-comparison/internal/config"
	"github.com/rpgo/fia-comparison/internal/output"
)

func TestGenerateReport_AllFormats(t *testing.T) {
	params, err := config.NewInputParser().LoadFromFile("../testdata/example_params.yaml")
	if err != nil {
		t.Fatalf("load params: %v", err)
	}
	results := calculation.NewComparisonEngine().Run(*params)
	dir := t.TempDir()

	for _, name := range output.AvailableFormatterNames() {
		path, err := output.GenerateReport(results, name, filepath.Join(dir, "report."+name))
		if err != nil {
			t.Fatalf("GenerateReport(%s): %v", name, err)
		}
		fi, err := os.Stat(path)
		if err != nil {
			t.Fatalf("expected %s to exist: %v", path, err)
		}
		if fi.Size() == 0 {
			t.Fatalf("expected non-empty %s report", name)
		}
	}
}

func TestCSVReport_MatchesTable(t *testing.T) {
	params, err := config.NewInputParser().LoadFromFile("../testdata/high_fee_params.yaml")
	if err != nil {
		t.Fatalf("load params: %v", err)
	}
	results := calculation.NewComparisonEngine().Run(*params)
	path, err := output.GenerateReport(results, "spreadsheet", filepath.Join(t.TempDir(), "out.csv"))
	if err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	want := output.ComparisonTable(results)
	if len(records) != len(want)+1 {
		t.Fatalf("got %d records, want header plus %d rows", len(records), len(want))
	}
	records = records[1:]
	for i := range want {
		for j := range want[i] {
			if records[i][j] != want[i][j] {
				t.Errorf("cell [%d][%d] = %q, want %q", i, j, records[i][j], want[i][j])
			}
		}
	}
}
