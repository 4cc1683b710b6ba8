package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/fia-comparison/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidInput is returned when a prompted value is missing or not a number.
var ErrInvalidInput = errors.New("invalid input")

// promptField is one interactive question, asked in declaration order.
type promptField struct {
	label string
	text  string
	set   func(p *domain.Parameters, v decimal.Decimal)
}

var promptFields = []promptField{
	{"starting balance", "Enter starting balance (e.g., 1000000): ",
		func(p *domain.Parameters, v decimal.Decimal) { p.StartingBalance = v }},
	{"FIA starting participation rate", "Enter starting FIA participation rate (e.g., 1.0 for 100%): ",
		func(p *domain.Parameters, v decimal.Decimal) { p.FIAParticipationStart = v }},
	{"FIA ending participation rate", "Enter ending FIA participation rate (e.g., 0.35 for 35%): ",
		func(p *domain.Parameters, v decimal.Decimal) { p.FIAParticipationEnd = v }},
	{"FIA floor rate", "Enter FIA floor rate (e.g., 0.0): ",
		func(p *domain.Parameters, v decimal.Decimal) { p.FIAFloor = v }},
	{"401(k) fee drag", "Enter 401(k) annual fee drag (e.g., 0.02 for 2%): ",
		func(p *domain.Parameters, v decimal.Decimal) { p.FeeDrag = v }},
	{"inflation rate", "Enter annual inflation rate (e.g., 0.03 for 3%): ",
		func(p *domain.Parameters, v decimal.Decimal) { p.InflationRate = v }},
	{"RMD tax rate", "Enter tax rate on RMDs (e.g., 0.30 for 30%): ",
		func(p *domain.Parameters, v decimal.Decimal) { p.RMDTaxRate = v }},
}

// Prompter collects the seven scenario parameters line by line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads answers from in and writes questions to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Collect asks every question in order and stops at the first bad answer.
func (p *Prompter) Collect() (*domain.Parameters, error) {
	var params domain.Parameters
	for _, f := range promptFields {
		v, err := p.ask(f)
		if err != nil {
			return nil, err
		}
		f.set(&params, v)
	}
	return &params, nil
}

func (p *Prompter) ask(f promptField) (decimal.Decimal, error) {
	fmt.Fprint(p.out, f.text)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return decimal.Zero, fmt.Errorf("failed to read %s: %w", f.label, err)
		}
		return decimal.Zero, fmt.Errorf("%w: no value for %s", ErrInvalidInput, f.label)
	}
	answer := strings.TrimSpace(p.in.Text())
	if answer == "" {
		return decimal.Zero, fmt.Errorf("%w: no value for %s", ErrInvalidInput, f.label)
	}
	v, err := decimal.NewFromString(answer)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", ErrInvalidInput, f.label, answer)
	}
	return v, nil
}
