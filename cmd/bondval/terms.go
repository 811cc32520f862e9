package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondval/bond"
)

// addTermsFlags registers the five bond inputs. Unset flags fall back to the
// bond section of the configuration.
func addTermsFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("face", 0, "face (par) value")
	f.Float64("coupon", 0, "annual coupon rate as a decimal")
	f.Int("maturity", 0, "maturity in whole years")
	f.Int("frequency", 0, "coupon/compounding periods per year")
	f.Float64("ytm", 0, "annual yield to maturity as a decimal")
}

func (a *app) termsFromFlags(cmd *cobra.Command) bond.Terms {
	d := a.cfg.Bond
	t := bond.Terms{
		FaceValue:      d.FaceValue,
		CouponRate:     d.CouponRate,
		MaturityYears:  d.MaturityYears,
		PeriodsPerYear: d.PeriodsPerYear,
		YieldRate:      d.YieldRate,
	}

	f := cmd.Flags()
	if f.Changed("face") {
		t.FaceValue, _ = f.GetFloat64("face")
	}
	if f.Changed("coupon") {
		t.CouponRate, _ = f.GetFloat64("coupon")
	}
	if f.Changed("maturity") {
		t.MaturityYears, _ = f.GetInt("maturity")
	}
	if f.Changed("frequency") {
		t.PeriodsPerYear, _ = f.GetInt("frequency")
	}
	if f.Changed("ytm") {
		t.YieldRate, _ = f.GetFloat64("ytm")
	}

	a.log.WithFields(logrus.Fields{
		"face":      t.FaceValue,
		"coupon":    t.CouponRate,
		"maturity":  t.MaturityYears,
		"frequency": t.PeriodsPerYear,
		"ytm":       t.YieldRate,
	}).Debug("bond terms")
	return t
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func checkFormat(format string) error {
	switch format {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("unknown format %q (want json or text)", format)
	}
}
