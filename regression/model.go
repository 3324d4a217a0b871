package regression

import (
	"fmt"
	"math"
)

// Point is one vertex of a fitted curve.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BandPoint is one vertex of a confidence or prediction band.
// Lower <= Y <= Upper always holds.
type BandPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// Predictor maps x to the fitted value ŷ.
type Predictor func(x float64) float64

func undefinedPredictor(float64) float64 { return math.NaN() }

// Result is the unified output of Compute.
//
// Coefficients are ordered from the constant term upwards, so a linear fit stores
// [intercept, slope]. LOESS fits have no coefficients. Polynomial and LOESS fits
// report NaN for AdjustedRSquared and StandardError and leave both bands empty.
//
// Predict is the only behaviour attached to a Result; it can be rebuilt from
// Coefficients with NewEstimator or Evaluate when a plain-data form is needed.
type Result struct {
	Type             Type        `json:"type"`
	Coefficients     []float64   `json:"coefficients"`
	RSquared         float64     `json:"rSquared"`
	AdjustedRSquared float64     `json:"adjustedRSquared"`
	StandardError    float64     `json:"standardError"`
	RMSE             float64     `json:"rmse"`
	Curve            []Point     `json:"curve"`
	ConfidenceBand   []BandPoint `json:"confidenceBand"`
	PredictionBand   []BandPoint `json:"predictionBand"`
	Equation         string      `json:"equation"`
	N                int         `json:"n"`

	predict Predictor
}

// Predict returns the fitted value at x, or NaN when the fit is undefined.
func (r *Result) Predict(x float64) float64 {
	if r == nil || r.predict == nil {
		return math.NaN()
	}

	return r.predict(x)
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r == nil {
		return "Result{nil}"
	}

	return fmt.Sprintf("Result{Type: %s, N: %d, R²: %.4f, RMSE: %.4f, Equation: %s}",
		r.Type, r.N, r.RSquared, r.RMSE, r.Equation)
}

// LinearResult is the output of ComputeLinear.
type LinearResult struct {
	Slope            float64   `json:"slope"`
	Intercept        float64   `json:"intercept"`
	RSquared         float64   `json:"rSquared"`
	AdjustedRSquared float64   `json:"adjustedRSquared"`
	StandardError    float64   `json:"standardError"`
	RMSE             float64   `json:"rmse"`
	Residuals        []float64 `json:"residuals"`
	N                int       `json:"n"`

	predict Predictor
}

// Predict returns intercept + slope*x, or NaN when the fit is undefined.
func (r LinearResult) Predict(x float64) float64 {
	if r.predict == nil {
		return math.NaN()
	}

	return r.predict(x)
}

// PolynomialResult is the output of ComputePolynomial.
type PolynomialResult struct {
	Degree       int       `json:"degree"`
	Coefficients []float64 `json:"coefficients"`
	RSquared     float64   `json:"rSquared"`
	RMSE         float64   `json:"rmse"`
	N            int       `json:"n"`

	predict Predictor
}

// Predict evaluates the polynomial at x, or returns NaN when the fit is undefined.
func (r PolynomialResult) Predict(x float64) float64 {
	if r.predict == nil {
		return math.NaN()
	}

	return r.predict(x)
}

// LoessResult is the output of ComputeLoess.
type LoessResult struct {
	// Curve holds LoessCurvePoints evenly spaced fitted points on [min x, max x].
	Curve []Point `json:"curve"`
	N     int     `json:"n"`

	predict Predictor
}

// Predict runs a local fit at x, or returns NaN for an empty sample.
func (r LoessResult) Predict(x float64) float64 {
	if r.predict == nil {
		return math.NaN()
	}

	return r.predict(x)
}
