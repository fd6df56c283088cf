package calculation

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/karimElmougi/firesim/internal/domain"
)

// SweepConfig drives a Monte Carlo sweep over rate assumptions. Each run
// perturbs the return-on-investment and inflation factors around the
// configured values and projects an independent chain.
type SweepConfig struct {
	Runs    int
	Horizon int // projection bound in periods, per run
	Seed    int64

	// ReturnStdDev and InflationStdDev are the standard deviations of the
	// normally-distributed perturbation applied to the respective growth
	// factors.
	ReturnStdDev    float64
	InflationStdDev float64
}

// SweepOutcome is the result of one randomized projection.
type SweepOutcome struct {
	ReturnFactor    decimal.Decimal
	InflationFactor decimal.Decimal
	// PeriodsToGoal is the first elapsed period at which passive income
	// covers the retirement cost of living, or -1 when the horizon is
	// reached first.
	PeriodsToGoal int
	FinalAssets   decimal.Decimal
}

// SweepResult aggregates a full sweep.
type SweepResult struct {
	Outcomes    []SweepOutcome
	SuccessRate decimal.Decimal
	Percentiles PercentileRanges
	Runs        int
	Horizon     int
}

// PercentileRanges summarizes the distribution of periods-to-goal across a
// sweep. Runs that never reach the goal count as the horizon.
type PercentileRanges struct {
	P10 int
	P25 int
	P50 int
	P75 int
	P90 int
}

// sweepWorkers bounds concurrent projections.
const sweepWorkers = 10

// RunSweep projects cfg under randomized rate assumptions. Every run gets
// its own configuration copy so no chain shares mutable state, and its own
// seeded source so a fixed seed reproduces the sweep bit for bit regardless
// of scheduling.
func RunSweep(cfg *domain.Configuration, sc SweepConfig, logger Logger) (*SweepResult, error) {
	if sc.Runs <= 0 {
		return nil, fmt.Errorf("sweep: runs must be positive, got %d", sc.Runs)
	}
	if sc.Horizon <= 0 {
		return nil, fmt.Errorf("sweep: horizon must be positive, got %d", sc.Horizon)
	}
	if logger == nil {
		logger = NopLogger{}
	}

	// Fail fast on a configuration the perturbed runs would also reject.
	if _, err := NewSimulation(cfg); err != nil {
		return nil, err
	}

	outcomes := make([]SweepOutcome, sc.Runs)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, sweepWorkers)

	for i := 0; i < sc.Runs; i++ {
		wg.Add(1)
		go func(run int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			rng := rand.New(rand.NewSource(sc.Seed + int64(run)))
			outcomes[run] = runPerturbed(cfg, sc, rng)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, o := range outcomes {
		if o.PeriodsToGoal >= 0 {
			succeeded++
		}
	}
	logger.Infof("sweep finished: %d/%d runs reached the goal within %d periods",
		succeeded, sc.Runs, sc.Horizon)

	return &SweepResult{
		Outcomes:    outcomes,
		SuccessRate: decimal.NewFromInt(int64(succeeded)).Div(decimal.NewFromInt(int64(sc.Runs))),
		Percentiles: calculatePercentiles(outcomes, sc.Horizon),
		Runs:        sc.Runs,
		Horizon:     sc.Horizon,
	}, nil
}

// runPerturbed copies the configuration, jitters its rate assumptions, and
// walks one chain up to the horizon.
func runPerturbed(cfg *domain.Configuration, sc SweepConfig, rng *rand.Rand) SweepOutcome {
	perturbed := *cfg
	perturbed.Rates.ReturnOnInvestment = perturbFactor(cfg.Rates.ReturnOnInvestment, sc.ReturnStdDev, rng)
	perturbed.Rates.Inflation = perturbFactor(cfg.Rates.Inflation, sc.InflationStdDev, rng)

	outcome := SweepOutcome{
		ReturnFactor:    perturbed.Rates.ReturnOnInvestment,
		InflationFactor: perturbed.Rates.Inflation,
		PeriodsToGoal:   -1,
	}

	sim, err := NewSimulation(&perturbed)
	if err != nil {
		// Perturbation cannot corrupt brackets or periods; keep the run as
		// a failure rather than aborting the sweep.
		return outcome
	}

	var state FiscalState
	for period := 0; period <= sc.Horizon; period++ {
		state = sim.Next()
		if outcome.PeriodsToGoal < 0 && state.PassiveIncome().GreaterThanOrEqual(state.RetirementCostOfLiving) {
			outcome.PeriodsToGoal = state.ElapsedPeriods
		}
	}
	outcome.FinalAssets = state.TotalAssets().Decimal
	return outcome
}

// perturbFactor adds a normal jitter to a growth factor, floored just above
// zero so the growth model's root extraction stays defined.
func perturbFactor(base decimal.Decimal, stdDev float64, rng *rand.Rand) decimal.Decimal {
	if stdDev == 0 {
		return base
	}
	jitter := decimal.NewFromFloat(rng.NormFloat64() * stdDev)
	perturbed := base.Add(jitter)
	floor := decimal.NewFromFloat(0.01)
	if perturbed.LessThan(floor) {
		return floor
	}
	return perturbed
}

// calculatePercentiles summarizes periods-to-goal; failed runs count as the
// horizon so a pessimistic tail stays visible.
func calculatePercentiles(outcomes []SweepOutcome, horizon int) PercentileRanges {
	periods := make([]int, len(outcomes))
	for i, o := range outcomes {
		if o.PeriodsToGoal < 0 {
			periods[i] = horizon
		} else {
			periods[i] = o.PeriodsToGoal
		}
	}
	sort.Ints(periods)

	n := len(periods)
	return PercentileRanges{
		P10: periods[n/10],
		P25: periods[n/4],
		P50: periods[n/2],
		P75: periods[3*n/4],
		P90: periods[9*n/10],
	}
}
