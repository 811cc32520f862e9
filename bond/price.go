package bond

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/meenmo/bondval/bond/config"
)

// Price returns the present value of t in closed form:
//
//	P = F/(1+r)^n + c·(1 − (1+r)^−n)/r
//
// with r the periodic yield, n the number of periods and c the periodic
// coupon. At r = 0 the annuity term is c·n.
func Price(t Terms) (float64, error) {
	if err := t.Validate(); err != nil {
		return 0, fmt.Errorf("Price: %w", err)
	}
	return closedFormPrice(t), nil
}

func closedFormPrice(t Terms) float64 {
	r := t.PeriodicRate()
	n := float64(t.TotalPeriods())
	c := t.PeriodicCoupon()
	if r == 0 {
		return t.FaceValue + c*n
	}
	logGrowth := n * math.Log1p(r)
	df := math.Exp(-logGrowth)
	// 1 − (1+r)^−n without cancellation for r close to zero.
	annuity := -math.Expm1(-logGrowth)
	return t.FaceValue*df + c*annuity/r
}

// PriceCurve prices t at every annual yield in yields, in order.
//
// Only the yield varies; every point must still be a valid yield in [0, 1].
func PriceCurve(t Terms, yields []float64) ([]float64, error) {
	out := make([]float64, len(yields))
	for i, y := range yields {
		p, err := Price(t.WithYield(y))
		if err != nil {
			return nil, fmt.Errorf("PriceCurve: point %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// PriceCurveParallel is PriceCurve fanned out over at most workers goroutines.
// A non-positive workers value means one goroutine per point.
func PriceCurveParallel(ctx context.Context, t Terms, yields []float64, workers int) ([]float64, error) {
	out := make([]float64, len(yields))
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, y := range yields {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := Price(t.WithYield(y))
			if err != nil {
				return fmt.Errorf("PriceCurveParallel: point %d: %w", i, err)
			}
			out[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// maxGridPoints bounds the size of a yield sweep.
const maxGridPoints = 1_000_000

// YieldGrid returns lo, lo+step, ... for every point strictly below hi.
func YieldGrid(lo, hi, step float64) ([]float64, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return nil, fmt.Errorf("YieldGrid: bounds must be finite, got [%v, %v)", lo, hi)
	}
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("YieldGrid: step must be positive and finite, got %v", step)
	}
	if !(lo < hi) {
		return nil, fmt.Errorf("YieldGrid: min (%v) must be below max (%v)", lo, hi)
	}

	count := math.Ceil((hi - lo) / step)
	if count > maxGridPoints {
		return nil, fmt.Errorf("YieldGrid: %.0f points exceeds the limit of %d", count, maxGridPoints)
	}
	n := int(count)
	grid := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y := lo + float64(i)*step
		if y >= hi {
			break
		}
		grid = append(grid, y)
	}
	return grid, nil
}

// PremiumToPar is the percent deviation of price from face value.
func PremiumToPar(price, face float64) float64 {
	if face == 0 {
		return math.NaN()
	}
	return (price - face) / face * 100.0
}

// Standing says whether a bond trades above, at or below par.
type Standing int

const (
	AtPar Standing = iota
	AtPremium
	AtDiscount
)

func (s Standing) String() string {
	switch s {
	case AtPremium:
		return "premium"
	case AtDiscount:
		return "discount"
	default:
		return "par"
	}
}

// Classify compares price with the face value of t.
func Classify(t Terms, price float64) Standing {
	tol := config.GetConfig().ParTolerance * math.Max(1.0, math.Abs(t.FaceValue))
	switch {
	case price-t.FaceValue > tol:
		return AtPremium
	case t.FaceValue-price > tol:
		return AtDiscount
	default:
		return AtPar
	}
}
