package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondval/internal/report"
)

var semiAnnualArgs = []string{"--face", "1000", "--coupon", "0.06", "--maturity", "5", "--frequency", "2", "--ytm", "0.08"}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestValue_JSON(t *testing.T) {
	code, out, errOut := runCLI(t, "", append([]string{"value"}, semiAnnualArgs...)...)
	require.Equal(t, 0, code, errOut)

	var got report.ValuationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.InDelta(t, 918.891042, got.Price, 1e-6)
	require.InDelta(t, 8.722916, got.MacaulayPeriods, 1e-6)
	require.InDelta(t, 4.361458, got.MacaulayYears, 1e-6)
	require.InDelta(t, 8.387419, got.ModifiedPeriods, 1e-6)
	require.Equal(t, "discount", got.Standing)
	require.NotNil(t, got.PremiumToParPct)
	require.InDelta(t, -8.110896, *got.PremiumToParPct, 1e-6)
}

func TestValue_Text(t *testing.T) {
	code, out, errOut := runCLI(t, "", append([]string{"value", "--format", "text"}, semiAnnualArgs...)...)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "$918.89")
	require.Contains(t, out, "Macaulay Duration (periods): 8.72")
	require.Contains(t, out, "Compounding Frequency")
}

func TestValue_DefaultsFromConfig(t *testing.T) {
	code, out, errOut := runCLI(t, "", "value")
	require.Equal(t, 0, code, errOut)

	var got report.ValuationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 1000.0, got.Terms.FaceValue)
	require.Equal(t, 2, got.Terms.PeriodsPerYear)
	require.InDelta(t, 918.891042, got.Price, 1e-6)
}

func TestValue_InvalidTerms(t *testing.T) {
	code, out, errOut := runCLI(t, "", "value", "--coupon", "1.5")
	require.Equal(t, 1, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "Invalid bond parameters")
}

func TestValue_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bondval.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bond:\n  coupon_rate: 0.08\n  maturity_years: 10\n  periods_per_year: 1\n  yield_rate: 0.08\n"), 0o644))

	code, out, errOut := runCLI(t, "", "value", "--config", path)
	require.Equal(t, 0, code, errOut)

	var got report.ValuationOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, 1000.0, got.Price)
	require.Equal(t, "par", got.Standing)
}

func TestSchedule(t *testing.T) {
	code, out, errOut := runCLI(t, "", append([]string{"schedule"}, semiAnnualArgs...)...)
	require.Equal(t, 0, code, errOut)
	require.Contains(t, out, "PV Factor")
	require.Contains(t, out, "$1,030.00")
	require.Contains(t, out, "$918.89")

	code, out, errOut = runCLI(t, "", append([]string{"schedule", "--format", "json"}, semiAnnualArgs...)...)
	require.Equal(t, 0, code, errOut)
	var got report.ScheduleOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Rows, 10)
	require.Equal(t, 1000.0, got.Rows[9].Principal)
	require.InDelta(t, 918.891042, got.TotalPV, 1e-6)
}

func TestSchedule_UnknownFormat(t *testing.T) {
	code, _, errOut := runCLI(t, "", "schedule", "--format", "xml")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "unknown format")
}

func TestCurve(t *testing.T) {
	for _, workers := range []string{"0", "3"} {
		code, out, errOut := runCLI(t, "", append([]string{"curve", "--min", "0", "--max", "0.1", "--step", "0.01", "--workers", workers}, semiAnnualArgs...)...)
		require.Equal(t, 0, code, errOut)

		var got report.CurveOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got.Points, 10)
		require.Equal(t, 0.0, got.Points[0].Yield)
		require.InDelta(t, 1300.0, got.Points[0].Price, 1e-9)
		require.Equal(t, 0.08, got.Current.Yield)
		require.InDelta(t, 918.891042, got.Current.Price, 1e-6)
		for i := 1; i < len(got.Points); i++ {
			require.Less(t, got.Points[i].Price, got.Points[i-1].Price)
		}
	}
}

func TestCurve_BadSweep(t *testing.T) {
	code, _, errOut := runCLI(t, "", "curve", "--step", "0")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "step must be positive")
}

func TestChart(t *testing.T) {
	out := filepath.Join(t.TempDir(), "curve.png")
	code, _, errOut := runCLI(t, "", append([]string{"chart", "--out", out, "--step", "0.01"}, semiAnnualArgs...)...)
	require.Equal(t, 0, code, errOut)

	img, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(img, []byte("\x89PNG")))
}

func TestChart_RequiresOut(t *testing.T) {
	code, _, errOut := runCLI(t, "", "chart")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "--out is required")
}

func TestYield(t *testing.T) {
	code, out, errOut := runCLI(t, "", "yield", "--face", "1000", "--coupon", "0.06", "--maturity", "5", "--frequency", "2", "--price", "918.8910422064494")
	require.Equal(t, 0, code, errOut)

	var got yieldOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.InDelta(t, 0.08, got.Yield, 1e-9)
	require.Positive(t, got.Iterations)
}

func TestYield_RequiresPrice(t *testing.T) {
	code, _, errOut := runCLI(t, "", "yield")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "--price is required")
}

func TestBatch_Array(t *testing.T) {
	input := `[
		{"task_id": "semi", "face_value": 1000, "coupon_rate": 0.06, "maturity_years": 5, "periods_per_year": 2, "yield_rate": 0.08},
		{"face_value": 1000, "coupon_rate": 0.08, "maturity_years": 10, "periods_per_year": 1, "yield_rate": 0.08},
		{"task_id": "bad", "face_value": 1000, "coupon_rate": 0.06, "maturity_years": 0, "periods_per_year": 2, "yield_rate": 0.08}
	]`
	code, out, _ := runCLI(t, input, "batch")
	require.Equal(t, 1, code)

	var got []batchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)

	require.Equal(t, "semi", got[0].TaskID)
	require.InDelta(t, 918.891042, got[0].Price, 1e-6)
	require.Empty(t, got[0].Error)

	require.Len(t, got[1].TaskID, 36)
	require.Equal(t, 1000.0, got[1].Price)

	require.Equal(t, "bad", got[2].TaskID)
	require.Contains(t, got[2].Error, "maturity")
}

func TestBatch_SingleObjectFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"task_id":"one","face_value":1000,"coupon_rate":0.06,"maturity_years":5,"periods_per_year":2,"yield_rate":0}`), 0o644))

	code, out, errOut := runCLI(t, "", "batch", "--input", path)
	require.Equal(t, 0, code, errOut)

	var got batchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "one", got.TaskID)
	require.Equal(t, 1300.0, got.Price)
}

func TestBatch_EmptyInput(t *testing.T) {
	code, _, errOut := runCLI(t, "  ", "batch")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "empty input")
}

func TestVersion(t *testing.T) {
	code, out, _ := runCLI(t, "", "version")
	require.Equal(t, 0, code)
	require.Contains(t, out, "bondval dev")
}

func TestCurve_TooManyPoints(t *testing.T) {
	code, _, errOut := runCLI(t, "", "curve", "--step", "1e-300")
	require.Equal(t, 1, code)
	require.Contains(t, errOut, "exceeds the limit")
}

func TestBatch_PeriodCountTooLarge(t *testing.T) {
	input := `{"task_id":"huge","face_value":1000,"coupon_rate":0.05,"maturity_years":8796093022208,"periods_per_year":1,"yield_rate":0.05}`
	code, out, _ := runCLI(t, input, "batch")
	require.Equal(t, 1, code)

	var got batchOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "huge", got.TaskID)
	require.Contains(t, got.Error, "exceeds the limit")
}
