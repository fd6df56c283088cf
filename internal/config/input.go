package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/karimElmougi/firesim/internal/domain"
	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// Defaults for optional configuration fields.
const (
	DefaultSalaryCap    = 999_999
	DefaultWithdrawRate = 0.04

	// Nominal contribution caps; both are indexed by inflation each period.
	DefaultRRSPLimit = 26_500
	DefaultTFSALimit = 6_000
)

// fileConfig is the on-disk layout, shared by the TOML and YAML decoders.
// Values are plain numbers in the file; they are converted to exact
// decimals once, right after decoding.
type fileConfig struct {
	Salary                   float64 `toml:"salary" yaml:"salary"`
	CostOfLiving             float64 `toml:"cost_of_living" yaml:"cost_of_living"`
	RetirementCostOfLiving   float64 `toml:"retirement_cost_of_living" yaml:"retirement_cost_of_living"`
	RRSPContributionHeadroom float64 `toml:"rrsp_contribution_headroom" yaml:"rrsp_contribution_headroom"`
	RRSPAssets               float64 `toml:"rrsp_assets" yaml:"rrsp_assets"`
	TFSAAssets               float64 `toml:"tfsa_assets" yaml:"tfsa_assets"`
	UnregisteredAssets       float64 `toml:"unregistered_assets" yaml:"unregistered_assets"`

	Inflation          float64 `toml:"inflation" yaml:"inflation"`
	SalaryGrowth       float64 `toml:"salary_growth" yaml:"salary_growth"`
	ReturnOnInvestment float64 `toml:"return_on_investment" yaml:"return_on_investment"`
	EmployerRRSPMatch  float64 `toml:"employer_rrsp_match" yaml:"employer_rrsp_match"`
	SalaryCap          float64 `toml:"salary_cap" yaml:"salary_cap"`
	WithdrawRate       float64 `toml:"withdraw_rate" yaml:"withdraw_rate"`
	PeriodsPerYear     int     `toml:"periods_per_year" yaml:"periods_per_year"`

	TFSALimit float64 `toml:"tfsa_limit" yaml:"tfsa_limit"`
	RRSPLimit float64 `toml:"rrsp_limit" yaml:"rrsp_limit"`

	ProvincialTaxBrackets []fileBracket `toml:"provincial_tax_brackets" yaml:"provincial_tax_brackets"`
	// StateTaxBrackets is an accepted alias for ProvincialTaxBrackets.
	StateTaxBrackets   []fileBracket `toml:"state_tax_brackets" yaml:"state_tax_brackets"`
	FederalTaxBrackets []fileBracket `toml:"federal_tax_brackets" yaml:"federal_tax_brackets"`
}

type fileBracket struct {
	LowerBound float64 `toml:"lower_bound" yaml:"lower_bound"`
	UpperBound float64 `toml:"upper_bound" yaml:"upper_bound"`
	Rate       float64 `toml:"rate" yaml:"rate"`
}

// InputParser handles parsing of input configuration files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a TOML or YAML file, selected by
// extension (.toml vs .yaml/.yml/anything else).
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var fc fileConfig
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		if err := toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	config := fc.toDomain()
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// toDomain converts the decoded file values into the exact-decimal
// configuration record, applying documented defaults for absent fields.
func (fc fileConfig) toDomain() *domain.Configuration {
	salaryCap := fc.SalaryCap
	if salaryCap == 0 {
		salaryCap = DefaultSalaryCap
	}
	withdrawRate := fc.WithdrawRate
	if withdrawRate == 0 {
		withdrawRate = DefaultWithdrawRate
	}
	periods := fc.PeriodsPerYear
	if periods == 0 {
		periods = 1
	}
	tfsaLimit := fc.TFSALimit
	if tfsaLimit == 0 {
		tfsaLimit = DefaultTFSALimit
	}
	rrspLimit := fc.RRSPLimit
	if rrspLimit == 0 {
		rrspLimit = DefaultRRSPLimit
	}

	provincial := fc.ProvincialTaxBrackets
	if len(provincial) == 0 {
		provincial = fc.StateTaxBrackets
	}

	return &domain.Configuration{
		Rates: domain.Rates{
			Inflation:          decimal.NewFromFloat(fc.Inflation),
			SalaryGrowth:       decimal.NewFromFloat(fc.SalaryGrowth),
			ReturnOnInvestment: decimal.NewFromFloat(fc.ReturnOnInvestment),
			EmployerMatch:      decimal.NewFromFloat(fc.EmployerRRSPMatch),
			WithdrawRate:       decimal.NewFromFloat(withdrawRate),
			SalaryCap:          dec.NewMoney(salaryCap),
			PeriodsPerYear:     periods,
		},
		InitialValues: domain.InitialValues{
			Salary:                   dec.NewMoney(fc.Salary),
			CostOfLiving:             dec.NewMoney(fc.CostOfLiving),
			RetirementCostOfLiving:   dec.NewMoney(fc.RetirementCostOfLiving),
			RRSPContributionHeadroom: dec.NewMoney(fc.RRSPContributionHeadroom),
			RRSPAssets:               dec.NewMoney(fc.RRSPAssets),
			TFSAAssets:               dec.NewMoney(fc.TFSAAssets),
			UnregisteredAssets:       dec.NewMoney(fc.UnregisteredAssets),
		},
		TFSALimit:             dec.NewMoney(tfsaLimit),
		RRSPLimit:             dec.NewMoney(rrspLimit),
		ProvincialTaxBrackets: toBracketDefs(provincial),
		FederalTaxBrackets:    toBracketDefs(fc.FederalTaxBrackets),
	}
}

func toBracketDefs(brackets []fileBracket) []domain.TaxBracketDef {
	if len(brackets) == 0 {
		return nil
	}
	defs := make([]domain.TaxBracketDef, len(brackets))
	for i, b := range brackets {
		defs[i] = domain.TaxBracketDef{
			LowerBound: dec.NewMoney(b.LowerBound),
			UpperBound: dec.NewMoney(b.UpperBound),
			Rate:       decimal.NewFromFloat(b.Rate),
		}
	}
	return defs
}

// ValidateConfiguration validates the loaded configuration. Bracket-table
// shape is validated separately when the simulation is constructed.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	iv := config.InitialValues
	if !iv.Salary.IsPositive() {
		return fmt.Errorf("salary must be positive")
	}
	if iv.CostOfLiving.IsNegative() {
		return fmt.Errorf("cost of living cannot be negative")
	}
	if iv.RetirementCostOfLiving.IsNegative() {
		return fmt.Errorf("retirement cost of living cannot be negative")
	}
	if iv.RRSPAssets.IsNegative() || iv.TFSAAssets.IsNegative() || iv.UnregisteredAssets.IsNegative() {
		return fmt.Errorf("asset balances cannot be negative")
	}
	if iv.RRSPContributionHeadroom.IsNegative() {
		return fmt.Errorf("rrsp contribution headroom cannot be negative")
	}

	r := config.Rates
	if !r.Inflation.IsPositive() {
		return fmt.Errorf("inflation must be a positive growth factor (e.g. 1.02)")
	}
	if !r.SalaryGrowth.IsPositive() {
		return fmt.Errorf("salary growth must be a positive growth factor (e.g. 1.05)")
	}
	if !r.ReturnOnInvestment.IsPositive() {
		return fmt.Errorf("return on investment must be a positive growth factor (e.g. 1.08)")
	}
	if r.ReturnOnInvestment.GreaterThan(decimal.NewFromInt(2)) {
		return fmt.Errorf("return on investment factor above 2.0 is not supported")
	}
	if r.EmployerMatch.IsNegative() {
		return fmt.Errorf("employer rrsp match cannot be negative")
	}
	if !r.WithdrawRate.IsPositive() || r.WithdrawRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("withdraw rate must be in (0, 1]")
	}
	if r.PeriodsPerYear < 1 {
		return fmt.Errorf("periods per year must be at least 1")
	}
	if !r.SalaryCap.IsPositive() {
		return fmt.Errorf("salary cap must be positive")
	}
	if !config.TFSALimit.IsPositive() || !config.RRSPLimit.IsPositive() {
		return fmt.Errorf("contribution limits must be positive")
	}
	return nil
}
