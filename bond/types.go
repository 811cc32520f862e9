package bond

import "math"

// Terms describes a plain fixed-coupon bond with simple periodic compounding.
//
// Rates are decimals (0.06 means 6%), not percent.
type Terms struct {
	FaceValue      float64
	CouponRate     float64 // annual coupon rate (APR)
	MaturityYears  int
	PeriodsPerYear int
	YieldRate      float64 // annual yield to maturity (APR)
}

// TotalPeriods is the number of coupon periods until maturity.
func (t Terms) TotalPeriods() int {
	return t.MaturityYears * t.PeriodsPerYear
}

// PeriodicRate is the yield per compounding period.
func (t Terms) PeriodicRate() float64 {
	return t.YieldRate / float64(t.PeriodsPerYear)
}

// PeriodicCoupon is the coupon paid every period, in currency units.
func (t Terms) PeriodicCoupon() float64 {
	return t.FaceValue * t.CouponRate / float64(t.PeriodsPerYear)
}

// WithYield returns a copy of t discounted at another annual yield.
func (t Terms) WithYield(y float64) Terms {
	t.YieldRate = y
	return t
}

// PeriodRecord is one row of a cash-flow schedule.
//
// PVFactor, PresentValue and WeightedPV stay zero until the schedule is
// passed through Discount.
type PeriodRecord struct {
	Period       int
	Coupon       float64
	Principal    float64
	PVFactor     float64
	PresentValue float64
	WeightedPV   float64
}

func (p PeriodRecord) Amount() float64 {
	return p.Coupon + p.Principal
}

// Schedule is the ordered sequence of per-period cash flows, period 1 first.
type Schedule []PeriodRecord

// Totals returns the sum of present values and of period-weighted present
// values.
func (s Schedule) Totals() (pv, weighted float64) {
	for _, p := range s {
		pv += p.PresentValue
		weighted += p.WeightedPV
	}
	return pv, weighted
}

// Duration holds the duration measures of a bond.
type Duration struct {
	MacaulayPeriods float64
	MacaulayYears   float64
	// ModifiedDuration is in periods; see ModifiedYears.
	ModifiedDuration float64
	PeriodsPerYear   int
}

// ModifiedYears expresses modified duration per unit change in annual yield.
func (d Duration) ModifiedYears() float64 {
	if d.PeriodsPerYear <= 0 {
		return math.NaN()
	}
	return d.ModifiedDuration / float64(d.PeriodsPerYear)
}

// Valuation is the headline result for one set of terms.
type Valuation struct {
	Price float64
	Duration
}
