package calculation

import (
	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// Derived metrics are computed on demand from a snapshot, never stored.

// TaxableIncome is income less the personal tax-deferred contribution.
func (s FiscalState) TaxableIncome() dec.Money {
	return s.Income().Sub(s.PersonalContribution)
}

// NetIncome is after-tax taxable income against this period's indexed
// brackets.
func (s FiscalState) NetIncome() dec.Money {
	return s.Constants.Brackets.NetIncome(s.TaxableIncome(), dec.Zero())
}

// TotalRRSPContribution is the combined personal and employer share.
func (s FiscalState) TotalRRSPContribution() dec.Money {
	return s.PersonalContribution.Add(s.EmployerContribution)
}

// TotalContribution sums the period's contributions across all accounts.
func (s FiscalState) TotalContribution() dec.Money {
	return s.TotalRRSPContribution().Add(s.TFSAContribution).Add(s.UnregisteredContribution)
}

// TotalAssets sums the three account balances.
func (s FiscalState) TotalAssets() dec.Money {
	return s.RRSPAssets.Add(s.TFSAAssets).Add(s.UnregisteredAssets)
}

// PassiveIncome is the after-tax income available at the withdrawal rate:
// tax-free withdrawals come out whole, deferred withdrawals are taxed as
// ordinary income, and taxable-account withdrawals get capital-gains
// treatment.
func (s FiscalState) PassiveIncome() dec.Money {
	rate := s.rates.WithdrawRate
	return s.TFSAAssets.Mul(rate).
		Add(s.Constants.Brackets.NetIncome(s.RRSPAssets.Mul(rate), s.UnregisteredAssets.Mul(rate)))
}

// SavingsGoal is the asset level at which the withdrawal rate covers the
// retirement cost of living, indexed to the current period.
func (s FiscalState) SavingsGoal() dec.Money {
	return s.RetirementCostOfLiving.Div(s.rates.WithdrawRate)
}
