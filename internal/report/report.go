// Package report turns core results into rows, tables and messages for the
// command-line front end.
package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/meenmo/bondval/bond"
)

// Money formats v with thousands separators and two decimals, e.g. $1,234.50.
func Money(v float64) string {
	if v < 0 {
		return "-$" + humanize.FormatFloat("#,###.##", -v)
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Percent formats a decimal rate as a percentage, e.g. 0.06 -> 6.00%.
func Percent(rate float64, decimals int) string {
	return strconv.FormatFloat(rate*100, 'f', decimals, 64) + "%"
}

var scheduleHeaders = []string{
	"Period", "Coupon", "Principal", "Total Cash Flow", "PV Factor", "PV of Cash Flow", "Weighted PV",
}

// ScheduleRows renders a discounted schedule as string rows in table order.
func ScheduleRows(s bond.Schedule) [][]string {
	rows := make([][]string, 0, len(s))
	for _, p := range s {
		rows = append(rows, []string{
			strconv.Itoa(p.Period),
			Money(p.Coupon),
			Money(p.Principal),
			Money(p.Amount()),
			strconv.FormatFloat(p.PVFactor, 'f', 4, 64),
			Money(p.PresentValue),
			Money(p.WeightedPV),
		})
	}
	return rows
}

// ScheduleTable renders s with a closing totals row.
func ScheduleTable(s bond.Schedule) string {
	pv, weighted := s.Totals()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(scheduleHeaders...).
		Rows(ScheduleRows(s)...)
	t.Row("Total", "", "", "", "", Money(pv), Money(weighted))
	return t.String()
}

// Details lists the inputs the way a bond summary panel shows them.
func Details(t bond.Terms) [][2]string {
	return [][2]string{
		{"Face Value", Money(t.FaceValue)},
		{"Coupon Rate (APR)", Percent(t.CouponRate, 1)},
		{"Coupon Rate (Periodic)", Percent(t.CouponRate/float64(t.PeriodsPerYear), 4)},
		{"Maturity (Years)", fmt.Sprintf("%d years", t.MaturityYears)},
		{"Maturity (Periods)", fmt.Sprintf("%d periods", t.TotalPeriods())},
		{"YTM (APR)", Percent(t.YieldRate, 1)},
		{"YTM (Periodic)", Percent(t.PeriodicRate(), 4)},
		{"Compounding Frequency", fmt.Sprintf("%dx per year", t.PeriodsPerYear)},
	}
}

// DetailsTable renders Details as a two-column table.
func DetailsTable(t bond.Terms) string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Parameter", "Value")
	for _, d := range Details(t) {
		tbl.Row(d[0], d[1])
	}
	return tbl.String()
}

// UserMessage translates a core failure into text for the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, bond.ErrInvalidTerms):
		return "Invalid bond parameters: " + err.Error() + ". Please check your inputs and try again."
	case errors.Is(err, bond.ErrDegenerateBond):
		return "This bond has no cash flows with value, so duration is undefined. Use a positive face value or coupon."
	case errors.Is(err, bond.ErrNoConvergence):
		return "Could not find a yield for that price: " + err.Error()
	default:
		return "Error in calculations: " + err.Error()
	}
}
