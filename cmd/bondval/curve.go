package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meenmo/bondval/bond"
	"github.com/meenmo/bondval/internal/chart"
	"github.com/meenmo/bondval/internal/report"
)

func addCurveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("min", 0, "lowest yield of the sweep (default from config)")
	f.Float64("max", 0, "upper bound of the sweep, exclusive (default from config)")
	f.Float64("step", 0, "yield increment (default from config)")
	f.Int("workers", 0, "goroutines used to price the sweep (default from config)")
}

// priceCurve prices the sweep configured by flags and config, together with
// the headline price at the bond's own yield.
func (a *app) priceCurve(cmd *cobra.Command, t bond.Terms) (price float64, yields, prices []float64, err error) {
	c := a.cfg.Curve
	f := cmd.Flags()
	if f.Changed("min") {
		c.MinYield, _ = f.GetFloat64("min")
	}
	if f.Changed("max") {
		c.MaxYield, _ = f.GetFloat64("max")
	}
	if f.Changed("step") {
		c.Step, _ = f.GetFloat64("step")
	}
	if f.Changed("workers") {
		c.Workers, _ = f.GetInt("workers")
	}

	price, err = bond.Price(t)
	if err != nil {
		return 0, nil, nil, err
	}
	yields, err = bond.YieldGrid(c.MinYield, c.MaxYield, c.Step)
	if err != nil {
		return 0, nil, nil, err
	}
	if c.Workers > 0 {
		prices, err = bond.PriceCurveParallel(cmd.Context(), t, yields, c.Workers)
	} else {
		prices, err = bond.PriceCurve(t, yields)
	}
	if err != nil {
		return 0, nil, nil, err
	}
	a.log.WithField("points", len(yields)).WithField("workers", c.Workers).Debug("priced curve")
	return price, yields, prices, nil
}

func newCurveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Price the bond over a sweep of yields",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.termsFromFlags(cmd)
			price, yields, prices, err := a.priceCurve(cmd, t)
			if err != nil {
				return err
			}
			return writeJSON(a.stdout, report.NewCurveOutput(t, price, yields, prices))
		},
	}
	addTermsFlags(cmd)
	addCurveFlags(cmd)
	return cmd
}

func newChartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the value-vs-yield curve as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			t := a.termsFromFlags(cmd)
			price, yields, prices, err := a.priceCurve(cmd, t)
			if err != nil {
				return err
			}
			img, err := chart.RenderPriceCurve(t, price, yields, prices, chart.Options{
				Width:  a.cfg.Chart.Width,
				Height: a.cfg.Chart.Height,
			})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, img, 0o644); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			a.log.WithField("path", out).WithField("bytes", len(img)).Info("chart written")
			return nil
		},
	}
	addTermsFlags(cmd)
	addCurveFlags(cmd)
	cmd.Flags().String("out", "", "PNG output path")
	return cmd
}
