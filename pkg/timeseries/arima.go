// Package timeseries implements the monthly demand series and the
// ARIMA(1,1,1) model used by the forecast engine. The fixed (1,1,1) order is
// a robust default for the short series this domain produces.
package timeseries

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// ErrSeriesTooShort is returned when fewer than three observations are
// available; differencing plus an ARMA(1,1) fit needs at least that.
var ErrSeriesTooShort = errors.New("timeseries: series too short to fit")

// boundPenalty keeps the minimizer inside the stationary/invertible region
// (|ar| < 1, |ma| < 1) without hard constraints.
const boundPenalty = 1e12

// Model is a fitted ARIMA(1,1,1): the once-differenced series follows
// w[t] = c + ar*w[t-1] + ma*e[t-1] + e[t].
type Model struct {
	Const float64
	AR    float64
	MA    float64

	lastLevel float64 // last observed value of the undifferenced series
	lastDiff  float64 // last observed difference
	lastResid float64 // residual at the final in-sample step
}

// Fit estimates ARIMA(1,1,1) parameters by minimizing the conditional sum of
// squares with Nelder-Mead from a fixed starting point, so the fit is
// deterministic for a given series. Returns an error on degenerate input or
// when the optimizer fails to produce finite parameters.
func Fit(series []float64) (*Model, error) {
	if len(series) < 3 {
		return nil, ErrSeriesTooShort
	}
	for _, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("timeseries: non-finite observation in series")
		}
	}

	diff := make([]float64, len(series)-1)
	var diffMean float64
	for i := range diff {
		diff[i] = series[i+1] - series[i]
		diffMean += diff[i]
	}
	diffMean /= float64(len(diff))

	css := func(x []float64) float64 {
		c, ar, ma := x[0], x[1], x[2]
		if math.Abs(ar) >= 1 || math.Abs(ma) >= 1 {
			return boundPenalty * (1 + math.Abs(ar) + math.Abs(ma))
		}
		sse := 0.0
		prevResid := 0.0
		for t := 1; t < len(diff); t++ {
			pred := c + ar*diff[t-1] + ma*prevResid
			resid := diff[t] - pred
			sse += resid * resid
			prevResid = resid
		}
		if math.IsNaN(sse) || math.IsInf(sse, 0) {
			return boundPenalty
		}
		return sse
	}

	problem := optimize.Problem{Func: css}
	start := []float64{diffMean, 0.1, 0.1}
	result, err := optimize.Minimize(problem, start, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("timeseries: minimize: %w", err)
	}
	c, ar, ma := result.X[0], result.X[1], result.X[2]
	if math.IsNaN(c) || math.IsNaN(ar) || math.IsNaN(ma) ||
		math.Abs(ar) >= 1 || math.Abs(ma) >= 1 || result.F >= boundPenalty {
		return nil, fmt.Errorf("timeseries: fit did not converge")
	}

	m := &Model{
		Const:     c,
		AR:        ar,
		MA:        ma,
		lastLevel: series[len(series)-1],
		lastDiff:  diff[len(diff)-1],
	}

	// Final in-sample residual, needed for the one-step-ahead MA term.
	prevResid := 0.0
	for t := 1; t < len(diff); t++ {
		pred := c + ar*diff[t-1] + ma*prevResid
		prevResid = diff[t] - pred
	}
	m.lastResid = prevResid

	return m, nil
}

// Forecast projects the next steps values of the undifferenced series.
// The MA term contributes only to the first step; future shocks have zero
// expectation. Differences are accumulated back onto the last observed level.
func (m *Model) Forecast(steps int) []float64 {
	out := make([]float64, 0, steps)
	level := m.lastLevel
	d := m.Const + m.AR*m.lastDiff + m.MA*m.lastResid
	for i := 0; i < steps; i++ {
		if i > 0 {
			d = m.Const + m.AR*d
		}
		level += d
		out = append(out, level)
	}
	return out
}
