package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/karimElmougi/firesim/internal/domain"
	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// ErrMalformedBracketTable is returned when a bracket table has overlapping
// bounds, gaps, or rates outside [0, 100]. Computing tax against such a
// table would silently produce wrong amounts, so construction rejects it.
var ErrMalformedBracketTable = errors.New("malformed tax bracket table")

var oneHundred = decimal.NewFromInt(100)

// TaxBracket is a single marginal tax rate over an income interval.
// Brackets are immutable; AdjustForInflation produces a new bracket.
type TaxBracket struct {
	LowerBound dec.Money
	UpperBound dec.Money
	Rate       decimal.Decimal // percentage in [0, 100]
}

// ComputeTax returns this bracket's marginal tax on the given income:
// max(0, min(income, upper) - lower) * rate / 100. A bracket entirely above
// the income contributes zero, never a negative amount.
func (b TaxBracket) ComputeTax(income dec.Money) dec.Money {
	portion := dec.Min(income, b.UpperBound).Sub(b.LowerBound).ClampNonNegative()
	return portion.Mul(b.Rate).Div(oneHundred)
}

// AdjustForInflation scales both bounds by the given factor, leaving the
// rate unchanged.
func (b TaxBracket) AdjustForInflation(factor decimal.Decimal) TaxBracket {
	return TaxBracket{
		LowerBound: b.LowerBound.Mul(factor),
		UpperBound: b.UpperBound.Mul(factor),
		Rate:       b.Rate,
	}
}

// BracketTable is an ordered sequence of tax brackets. A validated table has
// non-overlapping, contiguous coverage starting at zero. The engine also
// concatenates validated tables (provincial + federal) into one; marginal
// taxes are additive, so Tax stays correct on the combined sequence.
type BracketTable []TaxBracket

// NewBracketTable validates one jurisdiction's brackets. An empty table is
// permitted and taxes nothing.
func NewBracketTable(defs []domain.TaxBracketDef) (BracketTable, error) {
	table := make(BracketTable, 0, len(defs))
	for i, d := range defs {
		b := TaxBracket{LowerBound: d.LowerBound, UpperBound: d.UpperBound, Rate: d.Rate}
		if !b.LowerBound.LessThan(b.UpperBound) {
			return nil, fmt.Errorf("bracket %d: lower bound %s is not below upper bound %s: %w",
				i, b.LowerBound, b.UpperBound, ErrMalformedBracketTable)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("bracket %d: rate %s is outside [0, 100]: %w", i, b.Rate, ErrMalformedBracketTable)
		}
		if i == 0 {
			if !b.LowerBound.IsZero() {
				return nil, fmt.Errorf("bracket 0: coverage must start at 0, got %s: %w",
					b.LowerBound, ErrMalformedBracketTable)
			}
		} else if !b.LowerBound.Equal(table[i-1].UpperBound) {
			return nil, fmt.Errorf("bracket %d: lower bound %s does not meet previous upper bound %s: %w",
				i, b.LowerBound, table[i-1].UpperBound, ErrMalformedBracketTable)
		}
		table = append(table, b)
	}
	return table, nil
}

// Tax sums the marginal tax across all brackets. Income at or below zero is
// taxed zero. The table must already be inflation-adjusted for the period
// being taxed; Tax itself is index-agnostic.
func (t BracketTable) Tax(income dec.Money) dec.Money {
	if !income.IsPositive() {
		return dec.Zero()
	}
	total := dec.Zero()
	for _, b := range t {
		total = total.Add(b.ComputeTax(income))
	}
	return total
}

// NetIncome returns after-tax income for a split of ordinary income and
// capital-gains-like income. Only half of the gains join the taxable base,
// but the full gains amount is paid out after tax.
func (t BracketTable) NetIncome(ordinary, capitalGains dec.Money) dec.Money {
	taxable := ordinary.Add(capitalGains.Div(decimal.NewFromInt(2)))
	return ordinary.Add(capitalGains).Sub(t.Tax(taxable))
}

// AdjustForInflation returns a new table with every bound scaled by factor.
func (t BracketTable) AdjustForInflation(factor decimal.Decimal) BracketTable {
	adjusted := make(BracketTable, len(t))
	for i, b := range t {
		adjusted[i] = b.AdjustForInflation(factor)
	}
	return adjusted
}
