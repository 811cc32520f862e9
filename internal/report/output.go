package report

import (
	"github.com/meenmo/bondval/bond"
	"github.com/meenmo/bondval/utils"
)

// TermsJSON is the wire form of bond.Terms.
type TermsJSON struct {
	FaceValue      float64 `json:"face_value"`
	CouponRate     float64 `json:"coupon_rate"`
	MaturityYears  int     `json:"maturity_years"`
	PeriodsPerYear int     `json:"periods_per_year"`
	YieldRate      float64 `json:"yield_rate"`
}

func (t TermsJSON) Terms() bond.Terms {
	return bond.Terms{
		FaceValue:      t.FaceValue,
		CouponRate:     t.CouponRate,
		MaturityYears:  t.MaturityYears,
		PeriodsPerYear: t.PeriodsPerYear,
		YieldRate:      t.YieldRate,
	}
}

func FromTerms(t bond.Terms) TermsJSON {
	return TermsJSON{
		FaceValue:      t.FaceValue,
		CouponRate:     t.CouponRate,
		MaturityYears:  t.MaturityYears,
		PeriodsPerYear: t.PeriodsPerYear,
		YieldRate:      t.YieldRate,
	}
}

// ValuationOutput is the JSON result of a valuation.
type ValuationOutput struct {
	TaskID               string    `json:"task_id,omitempty"`
	Terms                TermsJSON `json:"terms"`
	Price                float64   `json:"price"`
	PremiumToParPct      *float64  `json:"premium_to_par_pct,omitempty"` // nil for zero face value
	Standing             string    `json:"standing"`
	MacaulayPeriods      float64   `json:"macaulay_duration_periods"`
	MacaulayYears        float64   `json:"macaulay_duration_years"`
	ModifiedPeriods      float64   `json:"modified_duration_periods"`
	ModifiedYears        float64   `json:"modified_duration_years"`
	DollarDuration       float64   `json:"dv01"`
	PriceChangeFor1PctUp float64   `json:"price_change_1pct_up"`
}

// NewValuationOutput rounds v to the given decimals for display.
func NewValuationOutput(t bond.Terms, v bond.Valuation, decimals uint32) ValuationOutput {
	r := func(x float64) float64 { return utils.RoundTo(x, decimals) }
	out := ValuationOutput{
		Terms:                FromTerms(t),
		Price:                r(v.Price),
		Standing:             bond.Classify(t, v.Price).String(),
		MacaulayPeriods:      r(v.MacaulayPeriods),
		MacaulayYears:        r(v.MacaulayYears),
		ModifiedPeriods:      r(v.ModifiedDuration),
		ModifiedYears:        r(v.ModifiedYears()),
		DollarDuration:       r(bond.DollarDuration(v)),
		PriceChangeFor1PctUp: r(bond.EstimatePriceChange(v, 0.01)),
	}
	if t.FaceValue != 0 {
		pct := r(bond.PremiumToPar(v.Price, t.FaceValue))
		out.PremiumToParPct = &pct
	}
	return out
}

// CurvePoint is one (yield, price) pair of a value-vs-yield curve.
type CurvePoint struct {
	Yield float64 `json:"yield"`
	Price float64 `json:"price"`
}

// CurveOutput is the JSON result of a curve sweep with the current point.
type CurveOutput struct {
	Terms   TermsJSON    `json:"terms"`
	Current CurvePoint   `json:"current"`
	Points  []CurvePoint `json:"points"`
}

// NewCurveOutput zips yields and prices; they must have equal length.
func NewCurveOutput(t bond.Terms, price float64, yields, prices []float64) CurveOutput {
	pts := make([]CurvePoint, len(yields))
	for i := range yields {
		pts[i] = CurvePoint{Yield: yields[i], Price: prices[i]}
	}
	return CurveOutput{
		Terms:   FromTerms(t),
		Current: CurvePoint{Yield: t.YieldRate, Price: price},
		Points:  pts,
	}
}

// ScheduleRow is the JSON form of a discounted PeriodRecord.
type ScheduleRow struct {
	Period       int     `json:"period"`
	Coupon       float64 `json:"coupon"`
	Principal    float64 `json:"principal"`
	Total        float64 `json:"total_cash_flow"`
	PVFactor     float64 `json:"pv_factor"`
	PresentValue float64 `json:"present_value"`
	WeightedPV   float64 `json:"weighted_pv"`
}

// ScheduleOutput is the JSON result of a schedule request.
type ScheduleOutput struct {
	Terms           TermsJSON     `json:"terms"`
	Rows            []ScheduleRow `json:"rows"`
	TotalPV         float64       `json:"total_pv"`
	TotalWeightedPV float64       `json:"total_weighted_pv"`
}

func NewScheduleOutput(t bond.Terms, s bond.Schedule) ScheduleOutput {
	rows := make([]ScheduleRow, len(s))
	for i, p := range s {
		rows[i] = ScheduleRow{
			Period:       p.Period,
			Coupon:       p.Coupon,
			Principal:    p.Principal,
			Total:        p.Amount(),
			PVFactor:     p.PVFactor,
			PresentValue: p.PresentValue,
			WeightedPV:   p.WeightedPV,
		}
	}
	pv, weighted := s.Totals()
	return ScheduleOutput{Terms: FromTerms(t), Rows: rows, TotalPV: pv, TotalWeightedPV: weighted}
}
