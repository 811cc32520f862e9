package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	solver "github.com/meenmo/bondval/bond/config"
	"github.com/meenmo/bondval/internal/config"
	"github.com/meenmo/bondval/internal/logging"
	"github.com/meenmo/bondval/internal/report"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// app carries what every subcommand needs once the root pre-run has loaded
// the configuration.
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// errReported marks a failure that has already been written to the output.
var errReported = errors.New("reported")

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errReported) {
			return 1
		}
		if a.log != nil {
			a.log.WithError(err).Error("command failed")
		}
		fmt.Fprintln(stderr, report.UserMessage(err))
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bondval",
		Short: "Fixed-coupon bond price, duration and cash-flow calculator",
		Long: `bondval values a plain fixed-coupon bond from face value, coupon rate,
maturity, yield to maturity and compounding frequency. Rates are decimals
(0.06 means 6%).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "config file path (default: ./config/bondval.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newVersionCmd(a),
		newValueCmd(a),
		newScheduleCmd(a),
		newCurveCmd(a),
		newChartCmd(a),
		newYieldCmd(a),
		newBatchCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	var err error
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		a.cfg, err = config.LoadFromFile(configFile)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		a.cfg.Logging.Level = lvl
	}
	a.log = logging.New(a.cfg.Logging, a.stderr)
	solver.SetConfig(a.cfg.SolverSettings())
	a.log.WithField("command", cmd.Name()).Debug("configuration loaded")
	return nil
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.stdout, "bondval %s (%s)\n", version, commit)
			return nil
		},
	}
}
