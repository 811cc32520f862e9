package bond

import "fmt"

// Durations computes Macaulay and modified duration of t from a single
// discounting pass over its schedule.
//
//	Macaulay = Σ i·PV_i / Σ PV_i        (periods)
//	Modified = Macaulay / (1+r)         (periods)
func Durations(t Terms) (Duration, error) {
	s, err := DiscountedSchedule(t)
	if err != nil {
		return Duration{}, fmt.Errorf("Durations: %w", err)
	}
	return durationsFromSchedule(s, t)
}

func durationsFromSchedule(s Schedule, t Terms) (Duration, error) {
	pv, weighted := s.Totals()
	if pv == 0 {
		return Duration{}, fmt.Errorf("Durations: %w: total present value is zero (face %v, coupon %v)",
			ErrDegenerateBond, t.FaceValue, t.CouponRate)
	}

	macaulay := weighted / pv
	return Duration{
		MacaulayPeriods:  macaulay,
		MacaulayYears:    macaulay / float64(t.PeriodsPerYear),
		ModifiedDuration: macaulay / (1.0 + t.PeriodicRate()),
		PeriodsPerYear:   t.PeriodsPerYear,
	}, nil
}

// Value prices t and computes its durations.
//
// The headline price comes from the closed form; durations come from the
// discounted schedule.
func Value(t Terms) (Valuation, error) {
	s, err := DiscountedSchedule(t)
	if err != nil {
		return Valuation{}, fmt.Errorf("Value: %w", err)
	}
	d, err := durationsFromSchedule(s, t)
	if err != nil {
		return Valuation{}, err
	}
	return Valuation{Price: closedFormPrice(t), Duration: d}, nil
}

// EstimatePriceChange approximates the price move for an annual yield change
// dy using modified duration: ΔP ≈ −D_mod · dy · P.
func EstimatePriceChange(v Valuation, dy float64) float64 {
	return -v.ModifiedYears() * dy * v.Price
}

// DollarDuration is the price change for a one basis point rise in yield
// (DV01), reported as a positive number.
func DollarDuration(v Valuation) float64 {
	return v.ModifiedYears() * v.Price * 1e-4
}
