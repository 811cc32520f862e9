package chart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vicanso/go-charts/v2"

	"github.com/meenmo/bondval/bond"
	"github.com/meenmo/bondval/internal/report"
)

// Options controls the rendered image.
type Options struct {
	Width  int
	Height int
}

// RenderPriceCurve draws bond value against yield as a PNG and marks the
// current (yield, price) point in the subtitle.
func RenderPriceCurve(t bond.Terms, price float64, yields, prices []float64, opts Options) ([]byte, error) {
	if len(yields) != len(prices) {
		return nil, fmt.Errorf("RenderPriceCurve: %d yields but %d prices", len(yields), len(prices))
	}
	if len(prices) < 2 {
		return nil, errors.New("RenderPriceCurve: not enough data points")
	}

	labels := make([]string, len(yields))
	yMin, yMax := prices[0], prices[0]
	for i, y := range yields {
		labels[i] = strconv.FormatFloat(y*100, 'f', 1, 64) + "%"
		if prices[i] < yMin {
			yMin = prices[i]
		}
		if prices[i] > yMax {
			yMax = prices[i]
		}
	}
	pad := (yMax - yMin) * 0.05
	yMin -= pad
	if yMin < 0 {
		yMin = 0
	}
	yMax += pad

	subtitle := fmt.Sprintf("current: YTM %s, value %s (%s)",
		report.Percent(t.YieldRate, 2), report.Money(price), bond.Classify(t, price))

	painter, err := charts.LineRender([][]float64{prices},
		charts.TitleTextOptionFunc("Bond Value vs Yield to Maturity", subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: 10}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: []string{"Bond Value"}}),
		charts.WidthOptionFunc(opts.Width),
		charts.HeightOptionFunc(opts.Height),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, fmt.Errorf("RenderPriceCurve: %w", err)
	}
	img, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("RenderPriceCurve: %w", err)
	}
	return img, nil
}
