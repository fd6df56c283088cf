package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/karimElmougi/firesim/internal/domain"
	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// taxableGrowthShare splits the taxable account's return 75/25 between
// reinvested growth and dividends paid out as income.
var (
	taxableGrowthShare = decimal.NewFromFloat(0.75)
	dividendShare      = decimal.NewFromFloat(0.25)
)

// FiscalState is the immutable snapshot of one fiscal period. Each state is
// derived purely from its predecessor and the shared Rates; no state is
// mutated after creation.
type FiscalState struct {
	Salary         dec.Money
	DividendIncome dec.Money

	PersonalContribution     dec.Money
	EmployerContribution     dec.Money
	TFSAContribution         dec.Money
	UnregisteredContribution dec.Money

	RRSPAssets         dec.Money
	TFSAAssets         dec.Money
	UnregisteredAssets dec.Money

	CostOfLiving           dec.Money
	RetirementCostOfLiving dec.Money

	ElapsedPeriods int
	Constants      Constants

	// headroomCarryover is pre-existing contribution room from the
	// configuration, consumed by the first transition only.
	headroomCarryover dec.Money

	rates *domain.Rates
}

// Income is this period's total income: salary plus dividends thrown off by
// the taxable account.
func (s FiscalState) Income() dec.Money {
	return s.Salary.Add(s.DividendIncome)
}

// Simulation produces the lazy, unbounded chain of fiscal states for one
// configuration. Each call to Next yields exactly one state; consumers
// bound the sequence externally. A fresh sequence requires a fresh
// Simulation built from the same configuration, which deterministically
// reproduces the full chain.
type Simulation struct {
	current FiscalState
	rates   *domain.Rates

	deferredGrowth GrowthModel
	taxFreeGrowth  GrowthModel
	taxableGrowth  GrowthModel
	dividendYield  decimal.Decimal

	logger Logger
}

// NewSimulation validates the configuration's bracket tables, extracts the
// per-period growth factors, and builds the period-0 state. Any error here
// aborts before a single state is produced.
func NewSimulation(cfg *domain.Configuration) (*Simulation, error) {
	provincial, err := NewBracketTable(cfg.ProvincialTaxBrackets)
	if err != nil {
		return nil, fmt.Errorf("provincial tax brackets: %w", err)
	}
	federal, err := NewBracketTable(cfg.FederalTaxBrackets)
	if err != nil {
		return nil, fmt.Errorf("federal tax brackets: %w", err)
	}
	// Marginal taxes are additive, so the two validated tables are taxed
	// as one combined sequence.
	brackets := make(BracketTable, 0, len(provincial)+len(federal))
	brackets = append(brackets, provincial...)
	brackets = append(brackets, federal...)

	roi := cfg.Rates.ReturnOnInvestment
	deferredGrowth, err := NewGrowthModel(roi, cfg.Rates.PeriodsPerYear)
	if err != nil {
		return nil, err
	}
	taxableGrowth, err := NewGrowthModel(blendFactor(roi, taxableGrowthShare), cfg.Rates.PeriodsPerYear)
	if err != nil {
		return nil, err
	}

	rates := cfg.Rates

	initial := FiscalState{
		Salary:                 cfg.InitialValues.Salary,
		RRSPAssets:             cfg.InitialValues.RRSPAssets,
		TFSAAssets:             cfg.InitialValues.TFSAAssets,
		UnregisteredAssets:     cfg.InitialValues.UnregisteredAssets,
		CostOfLiving:           cfg.InitialValues.CostOfLiving,
		RetirementCostOfLiving: cfg.InitialValues.RetirementCostOfLiving,
		ElapsedPeriods:         0,
		Constants: Constants{
			TFSALimit: cfg.TFSALimit,
			RRSPLimit: cfg.RRSPLimit,
			Brackets:  brackets,
		},
		headroomCarryover: cfg.InitialValues.RRSPContributionHeadroom,
		rates:             &rates,
	}

	return &Simulation{
		current:        initial,
		rates:          &rates,
		deferredGrowth: deferredGrowth,
		taxFreeGrowth:  deferredGrowth,
		taxableGrowth:  taxableGrowth,
		dividendYield:  roi.Sub(decimal.NewFromInt(1)).Mul(dividendShare),
		logger:         NopLogger{},
	}, nil
}

// SetLogger sets the logger for the simulation. A nil logger restores the
// no-op default.
func (s *Simulation) SetLogger(l Logger) {
	if l == nil {
		s.logger = NopLogger{}
		return
	}
	s.logger = l
}

// Next yields the current fiscal state and advances the chain by one
// period. The first call returns the period-0 state built from the
// configuration.
func (s *Simulation) Next() FiscalState {
	current := s.current
	s.current = s.advance(current)
	return current
}

// advance is the pure state-transition function: one fiscal period forward.
func (s *Simulation) advance(prev FiscalState) FiscalState {
	rates := prev.rates

	// 1. Salary grows, capped.
	salary := dec.Min(rates.SalaryCap, prev.Salary.Mul(rates.SalaryGrowth))

	// 2. Dividends from last period's taxable balance join this period's
	// income.
	dividends := prev.UnregisteredAssets.Mul(s.dividendYield)
	income := salary.Add(dividends)

	// 3. Tax-deferred allocation. Headroom accrues from the previous
	// period's income against the previous period's cap.
	headroom := ContributionHeadroom(prev.Income(), prev.Constants.RRSPLimit).
		Add(prev.headroomCarryover)
	personal, employer := SplitRRSPContribution(headroom, salary, rates.EmployerMatch)
	totalRRSP := personal.Add(employer)

	// 4. One more period of inflation on caps and bracket bounds.
	constants := prev.Constants.AdjustForInflation(rates.Inflation)

	taxableIncome := income.Sub(personal)
	netIncome := constants.Brackets.NetIncome(taxableIncome, dec.Zero())
	costOfLiving := prev.CostOfLiving.Mul(rates.Inflation)
	discretionary := netIncome.Sub(costOfLiving)

	tfsaContribution, unregisteredContribution := AllocateDiscretionary(discretionary, constants.TFSALimit)

	// 5. Grow all three balances with this period's contributions.
	rrspAssets := s.deferredGrowth.Apply(prev.RRSPAssets, totalRRSP)
	tfsaAssets := s.taxFreeGrowth.Apply(prev.TFSAAssets, tfsaContribution)
	unregisteredAssets := s.taxableGrowth.Apply(prev.UnregisteredAssets, unregisteredContribution)

	return FiscalState{
		Salary:                   salary,
		DividendIncome:           dividends,
		PersonalContribution:     personal,
		EmployerContribution:     employer,
		TFSAContribution:         tfsaContribution,
		UnregisteredContribution: unregisteredContribution,
		RRSPAssets:               rrspAssets,
		TFSAAssets:               tfsaAssets,
		UnregisteredAssets:       unregisteredAssets,
		CostOfLiving:             costOfLiving,
		RetirementCostOfLiving:   prev.RetirementCostOfLiving.Mul(rates.Inflation),
		ElapsedPeriods:           prev.ElapsedPeriods + 1,
		Constants:                constants,
		rates:                    rates,
	}
}
