package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/meenmo/bondval/bond"
	"github.com/meenmo/bondval/internal/report"
)

type batchInput struct {
	TaskID string `json:"task_id,omitempty"`
	report.TermsJSON
}

type batchOutput struct {
	report.ValuationOutput
	Error string `json:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Value one bond or an array of bonds read as JSON",
		Long: `Read a JSON object or array of objects with face_value, coupon_rate,
maturity_years, periods_per_year and yield_rate, and write one valuation per
input. Inputs without a task_id get a generated one. Exits 1 if any input
failed; failed entries carry an error field.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("input")
			raw, err := readInput(a.stdin, strings.TrimSpace(path))
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			inputs, isArray, err := parseInputs(raw)
			if err != nil {
				return fmt.Errorf("parse JSON: %w", err)
			}

			hadError := false
			outputs := make([]batchOutput, 0, len(inputs))
			for _, in := range inputs {
				if in.TaskID == "" {
					in.TaskID = uuid.New().String()
				}
				out, err := process(in)
				if err != nil {
					hadError = true
					a.log.WithField("task_id", in.TaskID).WithError(err).Warn("batch task failed")
					out.Error = report.UserMessage(err)
				}
				outputs = append(outputs, out)
			}

			if isArray {
				err = writeJSON(a.stdout, outputs)
			} else {
				err = writeJSON(a.stdout, outputs[0])
			}
			if err != nil {
				return err
			}
			if hadError {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().String("input", "", "JSON input path (reads stdin if omitted)")
	return cmd
}

func process(in batchInput) (batchOutput, error) {
	t := in.Terms()
	v, err := bond.Value(t)
	if err != nil {
		return batchOutput{ValuationOutput: report.ValuationOutput{TaskID: in.TaskID, Terms: in.TermsJSON}}, err
	}
	out := report.NewValuationOutput(t, v, 6)
	out.TaskID = in.TaskID
	return batchOutput{ValuationOutput: out}, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func parseInputs(raw []byte) ([]batchInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []batchInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input batchInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []batchInput{input}, false, nil
}
