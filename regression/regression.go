package regression

import (
	"math"
	"slices"
)

// Compute fits the regression selected by settings and returns the unified result.
//
// Settings are resolved first, so zero fields take their defaults. Compute returns nil
// for TypeNone or when fewer than two (x, y) pairs are available. Only the first
// min(len(x), len(y)) pairs are used.
//
// Linear fits fill every field, including both bands. Polynomial and LOESS fits leave
// the bands empty and report NaN for AdjustedRSquared and StandardError. Curve holds
// LoessCurvePoints fitted points across the x range, or none when the fit failed.
func Compute(x, y []float64, settings Settings) *Result {
	s := settings.Resolve()
	x, y = pairs(x, y)
	n := len(x)
	if s.Type == TypeNone || n < 2 {
		return nil
	}

	res := &Result{
		Type:             s.Type,
		Coefficients:     []float64{},
		AdjustedRSquared: math.NaN(),
		StandardError:    math.NaN(),
		ConfidenceBand:   []BandPoint{},
		PredictionBand:   []BandPoint{},
		N:                n,
	}

	switch s.Type {
	case TypeLinear:
		fit := ComputeLinear(x, y)
		res.Coefficients = []float64{fit.Intercept, fit.Slope}
		res.RSquared = fit.RSquared
		res.AdjustedRSquared = fit.AdjustedRSquared
		res.StandardError = fit.StandardError
		res.RMSE = fit.RMSE
		res.ConfidenceBand = ComputeConfidenceBand(x, y, s.ConfidenceLevel)
		res.PredictionBand = ComputePredictionBand(x, y, s.ConfidenceLevel)
		res.predict = fit.predict
	case TypePolynomial:
		fit := ComputePolynomial(x, y, s.Degree)
		res.Coefficients = fit.Coefficients
		res.RSquared = fit.RSquared
		res.RMSE = fit.RMSE
		res.predict = fit.predict
		if len(fit.Coefficients) == 0 {
			res.Curve = []Point{}
		}
	case TypeLoess:
		fit := ComputeLoess(x, y, s.LoessBandwidth)
		predicted := make([]float64, n)
		for i, xi := range x {
			predicted[i] = fit.predict(xi)
		}
		res.RSquared = calculateRSquared(y, predicted)
		res.RMSE = calculateRMSE(y, predicted)
		res.Curve = fit.Curve
		res.predict = fit.predict
	}

	res.Equation = FormatEquation(res.Type, res.Coefficients)
	if res.Curve == nil {
		res.Curve = curve(x, LoessCurvePoints, res.predict)
	}

	return res
}

// Residuals returns y - ŷ for each of the first min(len(x), len(y)) pairs.
// It returns an empty slice for a nil result.
func (r *Result) Residuals(x, y []float64) []float64 {
	x, y = pairs(x, y)
	out := make([]float64, 0, len(x))
	if r == nil {
		return out
	}
	for i, xi := range x {
		out = append(out, y[i]-r.Predict(xi))
	}

	return out
}

// Clone returns a deep copy of the result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	c := *r
	c.Coefficients = slices.Clone(r.Coefficients)
	c.Curve = slices.Clone(r.Curve)
	c.ConfidenceBand = slices.Clone(r.ConfidenceBand)
	c.PredictionBand = slices.Clone(r.PredictionBand)

	return &c
}
