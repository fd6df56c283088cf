package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

func TestGrowthModelAnnual(t *testing.T) {
	model, err := NewGrowthModel(decimal.NewFromFloat(1.08), 1)
	require.NoError(t, err)

	// new = old + old*(R-1) + contribution
	got := model.Apply(dec.NewMoney(10_000), dec.NewMoney(1_000))
	assert.True(t, got.Equal(dec.NewMoney(11_800)), "expected 11800, got %s", got)
}

func TestGrowthModelSinglePeriodEqualsPlainGrowth(t *testing.T) {
	// growth_model(balance, R, N=1) adds exactly balance*(R-1).
	model, err := NewGrowthModel(decimal.NewFromFloat(1.08), 1)
	require.NoError(t, err)

	balance := dec.NewMoney(50_000)
	got := model.Apply(balance, dec.Zero())
	want := balance.Add(balance.Grow(decimal.NewFromFloat(1.08)))
	assert.True(t, got.Equal(want))
}

func TestGrowthModelSubAnnualMatchesAnnualOnBalance(t *testing.T) {
	// With no contribution, N sub-periods at r = R^(1/N) compound to the
	// same year-end balance as one annual step.
	annual, err := NewGrowthModel(decimal.NewFromFloat(1.08), 1)
	require.NoError(t, err)

	balance := dec.NewMoney(100_000)
	want := annual.Apply(balance, dec.Zero())

	tolerance := decimal.NewFromFloat(0.01) // within a cent
	for _, n := range []int{2, 4, 12, 26} {
		sub, err := NewGrowthModel(decimal.NewFromFloat(1.08), n)
		require.NoError(t, err)

		got := sub.Apply(balance, dec.Zero())
		diff := got.Sub(want).Decimal.Abs()
		assert.True(t, diff.LessThan(tolerance),
			"N=%d: expected %s, got %s (diff %s)", n, want, got, diff)
	}
}

func TestGrowthModelSubAnnualContributionsEarnPartialGrowth(t *testing.T) {
	// Monthly contributions start compounding mid-year, so the year-end
	// balance lands between "no growth on contributions" and "full annual
	// growth on contributions".
	model, err := NewGrowthModel(decimal.NewFromFloat(1.08), 12)
	require.NoError(t, err)

	contribution := dec.NewMoney(12_000)
	got := model.Apply(dec.Zero(), contribution)

	assert.True(t, got.GreaterThan(contribution), "contributions must earn some growth")
	assert.True(t, got.LessThan(contribution.Mul(decimal.NewFromFloat(1.08))),
		"contributions cannot earn a full year of growth")
}

func TestGrowthModelStableAcrossRateRange(t *testing.T) {
	// No divergence anywhere in the supported factor range.
	for _, r := range []float64{0.25, 0.5, 0.95, 1.0, 1.02, 1.5, 2.0} {
		model, err := NewGrowthModel(decimal.NewFromFloat(r), 26)
		require.NoError(t, err, "R=%v", r)

		got := model.Apply(dec.NewMoney(10_000), dec.NewMoney(1_000))
		assert.False(t, got.IsNegative(), "R=%v produced a negative balance: %s", r, got)
	}
}

func TestGrowthModelDegenerateRates(t *testing.T) {
	// A unit factor is stasis, a factor below one is loss, never an error.
	stasis, err := NewGrowthModel(decimal.NewFromInt(1), 1)
	require.NoError(t, err)
	assert.True(t, stasis.Apply(dec.NewMoney(5_000), dec.Zero()).Equal(dec.NewMoney(5_000)))

	loss, err := NewGrowthModel(decimal.NewFromFloat(0.9), 1)
	require.NoError(t, err)
	assert.True(t, loss.Apply(dec.NewMoney(5_000), dec.Zero()).Equal(dec.NewMoney(4_500)))
}

func TestGrowthModelRejectsBadPeriodCount(t *testing.T) {
	_, err := NewGrowthModel(decimal.NewFromFloat(1.08), 0)
	assert.Error(t, err)

	_, err = NewGrowthModel(decimal.NewFromFloat(1.08), -4)
	assert.Error(t, err)
}

func TestBlendFactor(t *testing.T) {
	// 75% of an 8% return is a 6% effective growth factor.
	got := blendFactor(decimal.NewFromFloat(1.08), decimal.NewFromFloat(0.75))
	assert.True(t, got.Equal(decimal.NewFromFloat(1.06)), "expected 1.06, got %s", got)
}
