package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/bondval/bond"
	"github.com/meenmo/bondval/internal/report"
)

func newValueCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Price the bond and compute Macaulay and modified duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format); err != nil {
				return err
			}
			t := a.termsFromFlags(cmd)
			v, err := bond.Value(t)
			if err != nil {
				return err
			}

			out := report.NewValuationOutput(t, v, 6)
			if format == "json" {
				return writeJSON(a.stdout, out)
			}

			fmt.Fprintln(a.stdout, report.DetailsTable(t))
			fmt.Fprintf(a.stdout, "Bond Value:                  %s (%s)\n", report.Money(v.Price), out.Standing)
			if out.PremiumToParPct != nil {
				fmt.Fprintf(a.stdout, "Deviation from par:          %.2f%%\n", *out.PremiumToParPct)
			}
			fmt.Fprintf(a.stdout, "Macaulay Duration (periods): %.2f\n", v.MacaulayPeriods)
			fmt.Fprintf(a.stdout, "Macaulay Duration (years):   %.2f\n", v.MacaulayYears)
			fmt.Fprintf(a.stdout, "Modified Duration:           %.2f\n", v.ModifiedYears())
			fmt.Fprintf(a.stdout, "Price change for +1%% YTM:    %s\n", report.Money(out.PriceChangeFor1PctUp))
			return nil
		},
	}
	addTermsFlags(cmd)
	cmd.Flags().String("format", "json", "output format: json or text")
	return cmd
}
