package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// GrowthModel compounds an asset balance at an annual growth factor,
// optionally split into equal sub-annual periods. The per-period factor r
// satisfies r^N = R and is extracted once at construction via Newton's
// method, so a non-converging rate surfaces before any state is produced.
type GrowthModel struct {
	annual    decimal.Decimal
	perPeriod decimal.Decimal
	periods   int
}

// NewGrowthModel builds a growth model for the annual factor R and N
// periods per year. N == 1 degenerates to plain annual compounding.
func NewGrowthModel(annual decimal.Decimal, periodsPerYear int) (GrowthModel, error) {
	if periodsPerYear < 1 {
		return GrowthModel{}, fmt.Errorf("growth model: periods per year must be at least 1, got %d", periodsPerYear)
	}
	perPeriod := annual
	if periodsPerYear > 1 {
		r, err := dec.NthRoot(annual, periodsPerYear)
		if err != nil {
			return GrowthModel{}, fmt.Errorf("growth model: %w", err)
		}
		perPeriod = r
	}
	return GrowthModel{annual: annual, perPeriod: perPeriod, periods: periodsPerYear}, nil
}

// Apply advances a balance by one year of growth plus the year's
// contribution. In sub-annual mode each of the N periods adds
// balance*(r-1) + contribution/N; with N == 1 this is exactly
// balance + balance*(R-1) + contribution.
func (g GrowthModel) Apply(balance, contribution dec.Money) dec.Money {
	if g.periods == 1 {
		return balance.Add(balance.Grow(g.annual)).Add(contribution)
	}
	slice := contribution.Div(decimal.NewFromInt(int64(g.periods)))
	for i := 0; i < g.periods; i++ {
		balance = balance.Add(balance.Grow(g.perPeriod)).Add(slice)
	}
	return balance
}

// blendFactor derives an effective annual growth factor from R by keeping
// only the given share of the return: 1 + (R-1)*share. The taxable account
// uses the 75% growth share; the remaining 25% is paid out as dividends.
func blendFactor(annual decimal.Decimal, share decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	return one.Add(annual.Sub(one).Mul(share))
}
