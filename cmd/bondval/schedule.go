package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meenmo/bondval/bond"
	"github.com/meenmo/bondval/internal/report"
)

func newScheduleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the discounted cash-flow schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			if err := checkFormat(format); err != nil {
				return err
			}
			t := a.termsFromFlags(cmd)
			s, err := bond.DiscountedSchedule(t)
			if err != nil {
				return err
			}
			if format == "json" {
				return writeJSON(a.stdout, report.NewScheduleOutput(t, s))
			}
			fmt.Fprintln(a.stdout, report.ScheduleTable(s))
			return nil
		},
	}
	addTermsFlags(cmd)
	cmd.Flags().String("format", "text", "output format: json or text")
	return cmd
}
