package calculation

import (
	"github.com/shopspring/decimal"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// Index scales a nominal monetary constant by rate^elapsedPeriods. It
// applies to contribution caps, bracket bounds and cost-of-living figures,
// never to rates or accumulated balances (those compound via the growth
// model). rate^0 is exactly 1, so period 0 reproduces nominal values.
func Index(amount dec.Money, rate decimal.Decimal, elapsedPeriods int) dec.Money {
	if elapsedPeriods == 0 {
		return amount
	}
	return amount.Mul(rate.Pow(decimal.NewFromInt(int64(elapsedPeriods))))
}

// Constants holds the inflation-indexed monetary constants of one period:
// the contribution caps and the combined tax bracket table. A new Constants
// value is derived each period so every bound and cap shifts together.
type Constants struct {
	TFSALimit dec.Money
	RRSPLimit dec.Money
	Brackets  BracketTable
}

// AdjustForInflation derives the next period's constants by scaling every
// cap and bracket bound by one period of inflation.
func (c Constants) AdjustForInflation(rate decimal.Decimal) Constants {
	return Constants{
		TFSALimit: c.TFSALimit.Mul(rate),
		RRSPLimit: c.RRSPLimit.Mul(rate),
		Brackets:  c.Brackets.AdjustForInflation(rate),
	}
}
