package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

func TestRunSweepRejectsInvalidParameters(t *testing.T) {
	cfg := baseConfig()

	_, err := RunSweep(cfg, SweepConfig{Runs: 0, Horizon: 30}, nil)
	require.Error(t, err)

	_, err = RunSweep(cfg, SweepConfig{Runs: 10, Horizon: 0}, nil)
	require.Error(t, err)
}

func TestRunSweepRejectsMalformedConfiguration(t *testing.T) {
	cfg := baseConfig()
	cfg.ProvincialTaxBrackets = append(cfg.ProvincialTaxBrackets,
		bracketDef(5_000, 10_000, 15)) // does not start at zero

	_, err := RunSweep(cfg, SweepConfig{Runs: 4, Horizon: 10}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedBracketTable)
}

func TestRunSweepDeterministicForFixedSeed(t *testing.T) {
	sc := SweepConfig{
		Runs:            32,
		Horizon:         30,
		Seed:            7,
		ReturnStdDev:    0.02,
		InflationStdDev: 0.01,
	}

	first, err := RunSweep(baseConfig(), sc, nil)
	require.NoError(t, err)
	second, err := RunSweep(baseConfig(), sc, nil)
	require.NoError(t, err)

	require.Len(t, second.Outcomes, len(first.Outcomes))
	for i := range first.Outcomes {
		a, b := first.Outcomes[i], second.Outcomes[i]
		assert.True(t, a.ReturnFactor.Equal(b.ReturnFactor), "run %d: return factor diverged", i)
		assert.True(t, a.InflationFactor.Equal(b.InflationFactor), "run %d: inflation factor diverged", i)
		assert.Equal(t, a.PeriodsToGoal, b.PeriodsToGoal, "run %d", i)
		assert.True(t, a.FinalAssets.Equal(b.FinalAssets), "run %d: final assets diverged", i)
	}
	assert.True(t, first.SuccessRate.Equal(second.SuccessRate))
	assert.Equal(t, first.Percentiles, second.Percentiles)
}

func TestRunSweepRunsArePerturbed(t *testing.T) {
	sc := SweepConfig{
		Runs:         16,
		Horizon:      20,
		Seed:         1,
		ReturnStdDev: 0.05,
	}

	result, err := RunSweep(baseConfig(), sc, nil)
	require.NoError(t, err)

	distinct := map[string]struct{}{}
	for _, o := range result.Outcomes {
		distinct[o.ReturnFactor.String()] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1, "perturbation should vary the return factor across runs")
}

func TestRunSweepZeroStdDevCollapsesToOneChain(t *testing.T) {
	cfg := baseConfig()
	sc := SweepConfig{Runs: 8, Horizon: 40, Seed: 99}

	result, err := RunSweep(cfg, sc, nil)
	require.NoError(t, err)

	// Walk the unperturbed chain to find the true goal period.
	sim, err := NewSimulation(baseConfig())
	require.NoError(t, err)
	wantPeriods := -1
	for period := 0; period <= sc.Horizon; period++ {
		state := sim.Next()
		if state.PassiveIncome().GreaterThanOrEqual(state.RetirementCostOfLiving) {
			wantPeriods = state.ElapsedPeriods
			break
		}
	}
	require.GreaterOrEqual(t, wantPeriods, 0, "reference chain should reach the goal within the horizon")

	for i, o := range result.Outcomes {
		assert.True(t, o.ReturnFactor.Equal(cfg.Rates.ReturnOnInvestment), "run %d", i)
		assert.True(t, o.InflationFactor.Equal(cfg.Rates.Inflation), "run %d", i)
		assert.Equal(t, wantPeriods, o.PeriodsToGoal, "run %d", i)
	}
	assert.True(t, result.SuccessRate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, wantPeriods, result.Percentiles.P10)
	assert.Equal(t, wantPeriods, result.Percentiles.P50)
	assert.Equal(t, wantPeriods, result.Percentiles.P90)
}

func TestRunSweepFailuresCountAsHorizon(t *testing.T) {
	cfg := baseConfig()
	cfg.InitialValues.RetirementCostOfLiving = dec.NewMoney(1_000_000_000)
	sc := SweepConfig{Runs: 8, Horizon: 5, Seed: 3, ReturnStdDev: 0.02}

	result, err := RunSweep(cfg, sc, nil)
	require.NoError(t, err)

	assert.True(t, result.SuccessRate.IsZero())
	for i, o := range result.Outcomes {
		assert.Equal(t, -1, o.PeriodsToGoal, "run %d", i)
	}
	assert.Equal(t, sc.Horizon, result.Percentiles.P50)
	assert.Equal(t, sc.Horizon, result.Percentiles.P90)
}
