package bond

import (
	"errors"
	"fmt"
	"math"

	"github.com/meenmo/bondval/bond/config"
)

var (
	// ErrInvalidTerms reports an input outside its documented domain.
	ErrInvalidTerms = errors.New("invalid bond terms")
	// ErrDegenerateBond reports a bond whose cash flows have zero total
	// present value, so no duration can be defined.
	ErrDegenerateBond = errors.New("degenerate bond")
	// ErrNoConvergence reports that the yield solver ran out of iterations.
	ErrNoConvergence = errors.New("yield solver did not converge")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTerms, fmt.Sprintf(format, args...))
}

// Validate checks t against the domain every core function relies on.
//
// A zero face value passes; it is caught as ErrDegenerateBond where it matters.
func (t Terms) Validate() error {
	if math.IsNaN(t.FaceValue) || math.IsInf(t.FaceValue, 0) || t.FaceValue < 0 {
		return invalidf("face value must be a non-negative finite number, got %v", t.FaceValue)
	}
	if err := validateRate("coupon rate", t.CouponRate); err != nil {
		return err
	}
	if err := validateRate("yield", t.YieldRate); err != nil {
		return err
	}
	if t.MaturityYears < 1 {
		return invalidf("maturity must be at least 1 year, got %d", t.MaturityYears)
	}
	if t.PeriodsPerYear < 1 {
		return invalidf("periods per year must be positive, got %d", t.PeriodsPerYear)
	}
	if t.MaturityYears > math.MaxInt/t.PeriodsPerYear {
		return invalidf("maturity %d × %d periods per year overflows", t.MaturityYears, t.PeriodsPerYear)
	}
	n := t.TotalPeriods()
	if n < 1 {
		return invalidf("total periods must be positive, got %d", n)
	}
	if limit := config.GetConfig().MaxPeriods; n > limit {
		return invalidf("total periods %d exceeds the limit of %d", n, limit)
	}
	return nil
}

func validateRate(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return invalidf("%s must be in [0, 1], got %v", name, v)
	}
	return nil
}
