package regression

import (
	"math"

	"github.com/arloliu/chartstats/stats"
)

// ComputeLinear fits y = intercept + slope*x by ordinary least squares.
//
// Only the first min(len(x), len(y)) pairs are used. Fewer than two pairs yield NaN
// for every statistic, empty residuals, and a predictor that returns NaN. With exactly
// two pairs AdjustedRSquared and StandardError are NaN. A zero spread in x yields a
// horizontal line through the mean of y.
func ComputeLinear(x, y []float64) LinearResult {
	x, y = pairs(x, y)
	n := len(x)
	if n < 2 {
		nan := math.NaN()
		return LinearResult{
			Slope:            nan,
			Intercept:        nan,
			RSquared:         nan,
			AdjustedRSquared: nan,
			StandardError:    nan,
			RMSE:             nan,
			Residuals:        []float64{},
			N:                n,
			predict:          undefinedPredictor,
		}
	}

	meanX := stats.Mean(x)
	meanY := stats.Mean(y)

	var sxx, sxy float64
	for i := range n {
		dx := x[i] - meanX
		sxx += dx * dx
		sxy += dx * (y[i] - meanY)
	}

	slope := 0.0
	if sxx > 0 {
		slope = sxy / sxx
	}
	intercept := meanY - slope*meanX
	predict := func(v float64) float64 { return intercept + slope*v }

	predicted := make([]float64, n)
	residuals := make([]float64, n)
	ssRes := 0.0
	for i := range n {
		predicted[i] = predict(x[i])
		residuals[i] = y[i] - predicted[i]
		ssRes += residuals[i] * residuals[i]
	}

	r2 := calculateRSquared(y, predicted)

	se := math.NaN()
	if n > 2 {
		se = math.Sqrt(ssRes / float64(n-2))
	}

	return LinearResult{
		Slope:            slope,
		Intercept:        intercept,
		RSquared:         r2,
		AdjustedRSquared: adjustedRSquared(r2, n, 1),
		StandardError:    se,
		RMSE:             calculateRMSE(y, predicted),
		Residuals:        residuals,
		N:                n,
		predict:          predict,
	}
}
