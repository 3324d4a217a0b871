package regression

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// MaxStableDegree is the highest degree for which the normal equations stay well
// conditioned on typical chart data. Higher degrees are fitted but may lose precision.
const MaxStableDegree = 5

// ComputePolynomial fits y = c0 + c1*x + ... + cd*x^d by least squares.
//
// The normal equations (XᵀX)c = Xᵀy over the Vandermonde matrix X are solved with an
// LU factorization. Coefficients are ordered constant term first. When there are no
// more pairs than the degree, the degree is negative, or the system is singular, the
// result has empty coefficients, NaN statistics, and a predictor that returns NaN.
// An ill-conditioned but solvable system keeps its solution.
func ComputePolynomial(x, y []float64, degree int) PolynomialResult {
	x, y = pairs(x, y)
	n := len(x)

	failed := PolynomialResult{
		Degree:       degree,
		Coefficients: []float64{},
		RSquared:     math.NaN(),
		RMSE:         math.NaN(),
		N:            n,
		predict:      undefinedPredictor,
	}
	if degree < 0 || n <= degree {
		return failed
	}

	coeffs, ok := solveNormalEquations(x, y, degree)
	if !ok {
		return failed
	}

	predict := func(v float64) float64 { return Evaluate(coeffs, v) }
	predicted := make([]float64, n)
	for i, xi := range x {
		predicted[i] = predict(xi)
	}

	return PolynomialResult{
		Degree:       degree,
		Coefficients: coeffs,
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		N:            n,
		predict:      predict,
	}
}

func solveNormalEquations(x, y []float64, degree int) ([]float64, bool) {
	n := len(x)
	cols := degree + 1

	vander := mat.NewDense(n, cols, nil)
	for i, xi := range x {
		p := 1.0
		for j := range cols {
			vander.Set(i, j, p)
			p *= xi
		}
	}

	var xtx mat.Dense
	xtx.Mul(vander.T(), vander)

	var xty mat.VecDense
	xty.MulVec(vander.T(), mat.NewVecDense(n, slices.Clone(y)))

	var c mat.VecDense
	if err := c.SolveVec(&xtx, &xty); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, false
		}
	}

	coeffs := make([]float64, cols)
	for j := range cols {
		v := c.AtVec(j)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false
		}
		coeffs[j] = v
	}

	return coeffs, true
}
