package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/bondval/bond"
	"github.com/meenmo/bondval/internal/report"
)

type yieldOutput struct {
	Terms      report.TermsJSON `json:"terms"`
	Price      float64          `json:"price"`
	Yield      float64          `json:"yield"`
	Iterations int              `json:"iterations"`
}

func newYieldCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "yield",
		Short: "Solve the yield to maturity that reproduces a price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("price") {
				return fmt.Errorf("--price is required")
			}
			price, _ := cmd.Flags().GetFloat64("price")
			t := a.termsFromFlags(cmd)

			res, err := bond.SolveYield(t, price)
			if err != nil {
				return err
			}
			t.YieldRate = res.Yield
			a.log.WithField("iterations", res.Iterations).Debug("yield solved")
			return writeJSON(a.stdout, yieldOutput{
				Terms:      report.FromTerms(t),
				Price:      price,
				Yield:      res.Yield,
				Iterations: res.Iterations,
			})
		},
	}
	addTermsFlags(cmd)
	cmd.Flags().Float64("price", 0, "observed dirty price in currency units")
	return cmd
}
