package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit_TooShort(t *testing.T) {
	_, err := Fit([]float64{10, 20})
	assert.ErrorIs(t, err, ErrSeriesTooShort)
}

func TestFit_NonFinite(t *testing.T) {
	_, err := Fit([]float64{10, math.NaN(), 20})
	assert.Error(t, err)
}

func TestFit_ParametersStayInBounds(t *testing.T) {
	model, err := Fit([]float64{18, 25, 22, 31, 27, 24, 29, 33})
	require.NoError(t, err)
	assert.Less(t, math.Abs(model.AR), 1.0)
	assert.Less(t, math.Abs(model.MA), 1.0)
}

func TestFit_Deterministic(t *testing.T) {
	series := []float64{40, 52, 47, 61, 55, 58}
	m1, err := Fit(series)
	require.NoError(t, err)
	m2, err := Fit(series)
	require.NoError(t, err)
	assert.Equal(t, m1.Const, m2.Const)
	assert.Equal(t, m1.AR, m2.AR)
	assert.Equal(t, m1.MA, m2.MA)
	assert.Equal(t, m1.Forecast(4), m2.Forecast(4))
}

func TestForecast_TrendContinues(t *testing.T) {
	// A steadily rising series should project further rises.
	model, err := Fit([]float64{10, 20, 30, 40, 50, 60})
	require.NoError(t, err)
	out := model.Forecast(4)
	require.Len(t, out, 4)
	assert.Greater(t, out[0], 60.0)
	for i := 1; i < len(out); i++ {
		assert.Greater(t, out[i], out[i-1])
	}
}

func TestForecast_FiniteValues(t *testing.T) {
	model, err := Fit([]float64{70, 85, 90, 78, 95, 88})
	require.NoError(t, err)
	for _, v := range model.Forecast(4) {
		assert.False(t, math.IsNaN(v))
		assert.False(t, math.IsInf(v, 0))
	}
}
