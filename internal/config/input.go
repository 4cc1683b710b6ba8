package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrValidation is returned when strict validation rejects parameters.
var ErrValidation = errors.New("parameter validation failed")

// InputParser handles parsing of scenario parameter files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads parameters from a YAML (or JSON) file. Missing keys
// stay zero; ranges are not checked here.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Parameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var params domain.Parameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &params, nil
}

// ValidateParameters lists every out-of-range value in params. The
// calculation accepts all of them; callers decide whether an issue is fatal.
func ValidateParameters(params *domain.Parameters) []string {
	var issues []string
	one := decimal.NewFromInt(1)

	if !params.StartingBalance.IsPositive() {
		issues = append(issues, fmt.Sprintf("starting balance must be positive, got %s", params.StartingBalance))
	}
	fractions := []struct {
		name  string
		value decimal.Decimal
	}{
		{"FIA starting participation rate", params.FIAParticipationStart},
		{"FIA ending participation rate", params.FIAParticipationEnd},
		{"401(k) fee drag", params.FeeDrag},
		{"inflation rate", params.InflationRate},
		{"RMD tax rate", params.RMDTaxRate},
	}
	for _, f := range fractions {
		if f.value.IsNegative() || f.value.GreaterThan(one) {
			issues = append(issues, fmt.Sprintf("%s should be between 0 and 1, got %s", f.name, f.value))
		}
	}
	if params.FIAFloor.LessThan(one.Neg()) {
		issues = append(issues, fmt.Sprintf("FIA floor cannot be less than -100%%, got %s", params.FIAFloor))
	}
	return issues
}

// CheckParameters turns validation issues into an ErrValidation error.
func CheckParameters(params *domain.Parameters) error {
	issues := ValidateParameters(params)
	if len(issues) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(issues, "; "))
}

// ExampleParameters returns the reference scenario: $1M, participation
// decaying from 100% to 35%, 0% floor, 2% fee, 3% inflation, 30% tax.
func ExampleParameters() *domain.Parameters {
	return &domain.Parameters{
		StartingBalance:       decimal.NewFromInt(1000000),
		FIAParticipationStart: decimal.NewFromFloat(1.0),
		FIAParticipationEnd:   decimal.NewFromFloat(0.35),
		FIAFloor:              decimal.Zero,
		FeeDrag:               decimal.NewFromFloat(0.02),
		InflationRate:         decimal.NewFromFloat(0.03),
		RMDTaxRate:            decimal.NewFromFloat(0.30),
	}
}

// SaveParameters writes params as YAML.
func SaveParameters(params *domain.Parameters, filename string) error {
	b, err := yaml.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to encode parameters: %w", err)
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
