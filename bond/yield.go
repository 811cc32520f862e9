package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/bondval/bond/config"
)

const (
	yieldFloor   = 0.0
	yieldCeiling = 1.0
)

// YieldResult is the output of SolveYield.
type YieldResult struct {
	// Yield is the annual yield to maturity as a decimal.
	Yield float64
	// Iterations is the number of solver steps taken.
	Iterations int
}

// SolveYield finds the annual yield at which t is worth price. The YieldRate
// field of t is ignored.
//
// The solver uses Newton-Raphson with analytic first derivative and falls
// back to bisection inside the bracket [0, 1] when a step leaves it.
func SolveYield(t Terms, price float64) (YieldResult, error) {
	guess := t.CouponRate
	if guess <= yieldFloor || guess >= yieldCeiling {
		guess = 0.05
	}
	t = t.WithYield(guess)
	if err := t.Validate(); err != nil {
		return YieldResult{}, fmt.Errorf("SolveYield: %w", err)
	}
	if math.IsNaN(price) || price <= 0 {
		return YieldResult{}, fmt.Errorf("SolveYield: %w: price must be positive, got %v", ErrInvalidTerms, price)
	}

	hiPrice := closedFormPrice(t.WithYield(yieldFloor))
	loPrice := closedFormPrice(t.WithYield(yieldCeiling))
	if price > hiPrice || price < loPrice {
		return YieldResult{}, fmt.Errorf("SolveYield: %w: price %v outside [%v, %v] spanned by yields in [0, 1]",
			ErrInvalidTerms, price, loPrice, hiPrice)
	}

	cfg := config.GetConfig()
	tol := cfg.PriceTolerance * price
	s, err := BuildSchedule(t)
	if err != nil {
		return YieldResult{}, fmt.Errorf("SolveYield: %w", err)
	}

	lo, hi := yieldFloor, yieldCeiling
	y := guess
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		p, dPdy := priceAndDeriv(s, y, t.PeriodsPerYear)
		f := p - price

		if math.Abs(f) < tol {
			return YieldResult{Yield: y, Iterations: iter + 1}, nil
		}

		// Price falls as yield rises.
		if f > 0 {
			lo = y
		} else {
			hi = y
		}

		next := y - f/dPdy
		if math.Abs(dPdy) < cfg.DerivativeThreshold || next <= lo || next >= hi {
			next = 0.5 * (lo + hi)
		}
		if next == y {
			return YieldResult{Yield: y, Iterations: iter + 1}, nil
		}
		y = next
	}

	return YieldResult{Yield: y, Iterations: cfg.MaxIterations},
		fmt.Errorf("SolveYield: %w after %d iterations", ErrNoConvergence, cfg.MaxIterations)
}

// priceAndDeriv returns (price, dPrice/dy) for annual yield y:
//
//	r      = y / m
//	price  = Σ CF_i / (1+r)^i
//	dP/dy  = Σ −i · CF_i / (1+r)^(i+1) / m
func priceAndDeriv(s Schedule, y float64, m int) (float64, float64) {
	r := y / float64(m)
	var price, deriv float64
	for _, p := range s {
		i := float64(p.Period)
		amt := p.Amount()
		price += amt / math.Pow(1.0+r, i)
		deriv += -i * amt / math.Pow(1.0+r, i+1)
	}
	return price, deriv / float64(m)
}
