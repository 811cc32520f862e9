package bond

import (
	"fmt"
	"math"
)

// BuildSchedule lays out the undiscounted cash flows of t: an identical coupon
// every period and the face value repaid with the last coupon.
func BuildSchedule(t Terms) (Schedule, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("BuildSchedule: %w", err)
	}

	n := t.TotalPeriods()
	coupon := t.PeriodicCoupon()
	s := make(Schedule, n)
	for i := range s {
		s[i] = PeriodRecord{Period: i + 1, Coupon: coupon}
	}
	s[n-1].Principal = t.FaceValue
	return s, nil
}

// Discount returns a copy of s with the present-value columns filled in at
// periodic rate r:
//
//	PVFactor_i   = (1+r)^-i
//	PV_i         = CF_i × PVFactor_i
//	WeightedPV_i = PV_i × i
func Discount(s Schedule, r float64) Schedule {
	out := make(Schedule, len(s))
	for i, p := range s {
		df := math.Pow(1.0+r, -float64(p.Period))
		p.PVFactor = df
		p.PresentValue = p.Amount() * df
		p.WeightedPV = p.PresentValue * float64(p.Period)
		out[i] = p
	}
	return out
}

// DiscountedSchedule builds the schedule for t and discounts it at t's
// periodic yield.
func DiscountedSchedule(t Terms) (Schedule, error) {
	s, err := BuildSchedule(t)
	if err != nil {
		return nil, err
	}
	return Discount(s, t.PeriodicRate()), nil
}
