package domain

import (
	"github.com/shopspring/decimal"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// TaxBracketDef is one marginal tax bracket as supplied by the configuration
// file. Rate is a percentage in [0, 100].
type TaxBracketDef struct {
	LowerBound dec.Money
	UpperBound dec.Money
	Rate       decimal.Decimal
}

// Rates holds the process-wide rate assumptions. They are constant for the
// life of one simulation run; every fiscal state in a chain references the
// same Rates value.
type Rates struct {
	// Inflation, SalaryGrowth and ReturnOnInvestment are annual growth
	// factors (1.02 means 2% per year), matching the config file encoding.
	Inflation          decimal.Decimal
	SalaryGrowth       decimal.Decimal
	ReturnOnInvestment decimal.Decimal

	// EmployerMatch is the employer RRSP match as a fraction of salary.
	EmployerMatch decimal.Decimal

	// WithdrawRate is the retirement withdrawal rate (e.g. 0.04).
	WithdrawRate decimal.Decimal

	SalaryCap dec.Money

	// PeriodsPerYear splits each year's compounding into equal sub-periods.
	// 1 means plain annual compounding.
	PeriodsPerYear int
}

// InitialValues holds the period-0 figures from the configuration.
type InitialValues struct {
	Salary                 dec.Money
	CostOfLiving           dec.Money
	RetirementCostOfLiving dec.Money

	// RRSPContributionHeadroom is extra headroom carried into the first
	// transition, on top of the computed earned-income headroom.
	RRSPContributionHeadroom dec.Money

	RRSPAssets         dec.Money
	TFSAAssets         dec.Money
	UnregisteredAssets dec.Money
}

// Configuration is the validated, immutable input to a simulation.
type Configuration struct {
	Rates         Rates
	InitialValues InitialValues

	// TFSALimit and RRSPLimit are the nominal (period-0) contribution caps.
	TFSALimit dec.Money
	RRSPLimit dec.Money

	// ProvincialTaxBrackets and FederalTaxBrackets are each required to be
	// contiguous from zero; the engine taxes income against both.
	ProvincialTaxBrackets []TaxBracketDef
	FederalTaxBrackets    []TaxBracketDef
}
