package decimal

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNoConvergence is returned when Newton's method fails to settle within
// the iteration budget.
var ErrNoConvergence = errors.New("root extraction did not converge")

// maxRootIterations bounds the Newton loop rather than looping until
// convergence. With a float64 seed the method converges quadratically, so
// the cap is generous.
const maxRootIterations = 128

// rootEpsilon is the relative convergence tolerance.
var rootEpsilon = decimal.New(1, -9) // 1e-9

// NthRoot computes the positive nth root of value with Newton's method:
//
//	x1 = ((n-1)*x0 + value/x0^(n-1)) / n
//
// iterated until |x1-x0| < epsilon*|x0|. It is used to derive an equivalent
// per-period growth factor r from an annual factor R such that r^n = R, and
// is stable for factors in (0, 2].
//
// The seed is the float64 root estimate; a naive seed like value/n lands so
// far below the root that the first step overshoots to value/(n*x0^(n-1))
// and the loop needs O(n^2) steps to walk back down.
func NthRoot(value decimal.Decimal, n int) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Zero, fmt.Errorf("nth root: n must be positive, got %d", n)
	}
	if value.IsNegative() || value.IsZero() {
		return decimal.Zero, fmt.Errorf("nth root: value must be positive, got %s", value)
	}
	if n == 1 {
		return value, nil
	}

	nDec := decimal.NewFromInt(int64(n))
	nMinusOne := decimal.NewFromInt(int64(n - 1))

	seed, _ := value.Float64()
	x := decimal.NewFromFloat(math.Pow(seed, 1/float64(n)))
	if !x.IsPositive() {
		x = value.Div(nDec)
	}

	for i := 0; i < maxRootIterations; i++ {
		next := nMinusOne.Mul(x).Add(value.Div(x.Pow(nMinusOne))).Div(nDec)
		if next.Sub(x).Abs().LessThan(rootEpsilon.Mul(x.Abs())) {
			return next, nil
		}
		x = next
	}
	return decimal.Zero, fmt.Errorf("nth root of %s (n=%d): %w", value, n, ErrNoConvergence)
}
