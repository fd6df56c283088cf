package output

import (
	"github.com/karimElmougi/firesim/internal/calculation"
	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// Row is one rendered fiscal period. Every column is derived from a single
// snapshot; the report layer never recomputes engine semantics.
type Row struct {
	Year int

	Salary         dec.Money
	DividendIncome dec.Money
	Income         dec.Money
	TaxableIncome  dec.Money
	NetIncome      dec.Money
	CostOfLiving   dec.Money

	PersonalRRSPContribution dec.Money
	EmployerRRSPContribution dec.Money
	TotalRRSPContribution    dec.Money
	TFSAContribution         dec.Money
	UnregisteredContribution dec.Money
	TotalContribution        dec.Money

	RRSPAssets         dec.Money
	TFSAAssets         dec.Money
	UnregisteredAssets dec.Money
	TotalAssets        dec.Money

	Goal                   dec.Money
	PassiveIncome          dec.Money
	RetirementCostOfLiving dec.Money
}

// Report is the bounded view of a projection chain handed to formatters.
type Report struct {
	Rows []Row
}

// BuildReport consumes the first `years` states of the simulation, adding
// the base-year offset to the displayed period index. The bound lives here,
// outside the engine; the chain itself is unbounded.
func BuildReport(sim *calculation.Simulation, years, baseYear int) *Report {
	rows := make([]Row, 0, years)
	for i := 0; i < years; i++ {
		state := sim.Next()
		rows = append(rows, Row{
			Year:                     baseYear + state.ElapsedPeriods + 1,
			Salary:                   state.Salary,
			DividendIncome:           state.DividendIncome,
			Income:                   state.Income(),
			TaxableIncome:            state.TaxableIncome(),
			NetIncome:                state.NetIncome(),
			CostOfLiving:             state.CostOfLiving,
			PersonalRRSPContribution: state.PersonalContribution,
			EmployerRRSPContribution: state.EmployerContribution,
			TotalRRSPContribution:    state.TotalRRSPContribution(),
			TFSAContribution:         state.TFSAContribution,
			UnregisteredContribution: state.UnregisteredContribution,
			TotalContribution:        state.TotalContribution(),
			RRSPAssets:               state.RRSPAssets,
			TFSAAssets:               state.TFSAAssets,
			UnregisteredAssets:       state.UnregisteredAssets,
			TotalAssets:              state.TotalAssets(),
			Goal:                     state.SavingsGoal(),
			PassiveIncome:            state.PassiveIncome(),
			RetirementCostOfLiving:   state.RetirementCostOfLiving,
		})
	}
	return &Report{Rows: rows}
}
