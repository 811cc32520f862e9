package utils

import "testing"

func TestRoundTo(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in       float64
		decimals uint32
		want     float64
	}{
		{918.8910422064494, 2, 918.89},
		{999.9999999999998, 2, 1000},
		{-38.535620817, 2, -38.54},
		{8.7229157, 0, 9},
	}
	for _, tc := range cases {
		if got := RoundTo(tc.in, tc.decimals); got != tc.want {
			t.Fatalf("RoundTo(%v, %d): got %v want %v", tc.in, tc.decimals, got, tc.want)
		}
	}
}

func TestAlmostEqual(t *testing.T) {
	t.Parallel()

	if !AlmostEqual(1000, 1000+1e-7, 1e-9) {
		t.Fatalf("expected 1000 and 1000+1e-7 to agree at 1e-9 relative")
	}
	if AlmostEqual(1000, 1000.01, 1e-9) {
		t.Fatalf("expected 1000 and 1000.01 to differ at 1e-9 relative")
	}
	if !AlmostEqual(0, 1e-12, 1e-9) {
		t.Fatalf("expected absolute comparison below 1")
	}
}
