package domain

import (
	"github.com/shopspring/decimal"
)

// Parameters defines a single FIA vs 401(k) comparison run.
// Rates are fractions (0.35 means 35%).
type Parameters struct {
	StartingBalance       decimal.Decimal `yaml:"starting_balance" json:"starting_balance"`
	FIAParticipationStart decimal.Decimal `yaml:"fia_participation_start" json:"fia_participation_start"`
	FIAParticipationEnd   decimal.Decimal `yaml:"fia_participation_end" json:"fia_participation_end"`
	FIAFloor              decimal.Decimal `yaml:"fia_floor" json:"fia_floor"`
	FeeDrag               decimal.Decimal `yaml:"k401_fee_drag" json:"k401_fee_drag"`
	InflationRate         decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	RMDTaxRate            decimal.Decimal `yaml:"rmd_tax_rate" json:"rmd_tax_rate"`
}

// Product identifies one of the compared savings vehicles.
type Product string

const (
	ProductFIA  Product = "FIA"
	Product401k Product = "401k"
)

// RMDYear is one age of a product's distribution schedule.
type RMDYear struct {
	Age                  int             `json:"age"`
	StartBalance         decimal.Decimal `json:"start_balance"`
	GrossRMD             decimal.Decimal `json:"gross_rmd"`
	AfterTaxRMD          decimal.Decimal `json:"after_tax_rmd"`
	InflationAdjustedRMD decimal.Decimal `json:"inflation_adjusted_rmd"`
}

// RMDSchedule holds the year-start balances and distributions of one product.
type RMDSchedule struct {
	Product Product   `json:"product"`
	Years   []RMDYear `json:"years"`
}

// ComparisonRow joins both products for a single simulation year.
type ComparisonRow struct {
	Year int     `json:"year"`
	Age  int     `json:"age"`
	FIA  RMDYear `json:"fia"`
	K401 RMDYear `json:"k401"`
}

// ProductSummary aggregates a product's schedule.
type ProductSummary struct {
	Product                   Product         `json:"product"`
	FinalStartBalance         decimal.Decimal `json:"final_start_balance"`
	PeakStartBalance          decimal.Decimal `json:"peak_start_balance"`
	TotalGrossRMD             decimal.Decimal `json:"total_gross_rmd"`
	TotalAfterTaxRMD          decimal.Decimal `json:"total_after_tax_rmd"`
	TotalInflationAdjustedRMD decimal.Decimal `json:"total_inflation_adjusted_rmd"`
	FirstRMDAge               int             `json:"first_rmd_age"`
}

// ComparisonSummary names the product delivering more inflation-adjusted
// after-tax income and by how much.
type ComparisonSummary struct {
	FIA       ProductSummary  `json:"fia"`
	K401      ProductSummary  `json:"k401"`
	Leader    Product         `json:"leader"`
	Advantage decimal.Decimal `json:"advantage"`
}

// Comparison is the complete result of a run.
type Comparison struct {
	Parameters        Parameters        `json:"parameters"`
	NominalReturns    []decimal.Decimal `json:"nominal_returns"`
	ParticipationPath []decimal.Decimal `json:"participation_path"`
	FIAReturns        []decimal.Decimal `json:"fia_returns"`
	K401Returns       []decimal.Decimal `json:"k401_returns"`
	Rows              []ComparisonRow   `json:"rows"`
	Summary           ComparisonSummary `json:"summary"`
	Assumptions       []string          `json:"assumptions,omitempty"`
}
