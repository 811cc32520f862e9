package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondval/bond"
)

func TestRenderPriceCurve(t *testing.T) {
	terms := bond.Terms{FaceValue: 1000, CouponRate: 0.06, MaturityYears: 5, PeriodsPerYear: 2, YieldRate: 0.08}
	yields, err := bond.YieldGrid(0.00001, 0.5, 0.01)
	require.NoError(t, err)
	prices, err := bond.PriceCurve(terms, yields)
	require.NoError(t, err)
	price, err := bond.Price(terms)
	require.NoError(t, err)

	img, err := RenderPriceCurve(terms, price, yields, prices, Options{Width: 640, Height: 400})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(img, []byte("\x89PNG")), "expected PNG output")
}

func TestRenderPriceCurve_Errors(t *testing.T) {
	terms := bond.Terms{FaceValue: 1000, CouponRate: 0.06, MaturityYears: 5, PeriodsPerYear: 2, YieldRate: 0.08}

	_, err := RenderPriceCurve(terms, 1000, []float64{0.01, 0.02}, []float64{1}, Options{Width: 640, Height: 400})
	require.Error(t, err)

	_, err = RenderPriceCurve(terms, 1000, []float64{0.01}, []float64{1}, Options{Width: 640, Height: 400})
	require.Error(t, err)
}
