package calculation

import (
	"github.com/shopspring/decimal"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// rrspContributionShare is the fraction of earned income that accrues as
// tax-deferred contribution headroom each year (CRA's 18% earned-income
// rule).
var rrspContributionShare = decimal.NewFromFloat(0.18)

var two = decimal.NewFromInt(2)

// ContributionHeadroom returns the tax-deferred headroom generated by one
// period: min(indexed cap, income * 18%).
func ContributionHeadroom(income, indexedCap dec.Money) dec.Money {
	return dec.Min(indexedCap, income.Mul(rrspContributionShare))
}

// SplitRRSPContribution divides headroom between the personal and employer
// shares given the employer match rate against salary.
//
// The full match costs 2*maxMatch of headroom (the employer dollar plus the
// matched personal dollar). When that fits, the employer receives maxMatch
// and the personal share takes whatever headroom is left over. When it does
// not fit, headroom is split evenly so the employer share alone never
// exceeds half of headroom.
func SplitRRSPContribution(headroom, salary dec.Money, matchRate decimal.Decimal) (personal, employer dec.Money) {
	maxMatch := salary.Mul(matchRate)
	if maxMatch.Mul(two).GreaterThan(headroom) {
		half := headroom.Div(two)
		return half, half
	}
	return headroom.Sub(maxMatch.Mul(two)), maxMatch
}

// AllocateDiscretionary runs the savings waterfall on discretionary income:
// the tax-free account first, bounded by its indexed cap, then the taxable
// account absorbs the uncapped remainder. A shortfall (negative
// discretionary income) contributes nothing; it is not borrowed against
// assets.
func AllocateDiscretionary(discretionary, tfsaLimit dec.Money) (tfsa, unregistered dec.Money) {
	tfsa = dec.Min(tfsaLimit, discretionary).ClampNonNegative()
	unregistered = discretionary.Sub(tfsa).ClampNonNegative()
	return tfsa, unregistered
}
