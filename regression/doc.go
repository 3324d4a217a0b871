// Package regression fits trend lines through (x, y) samples for scatter and line charts.
//
// Three fits are available:
//
//   - **Linear**: ordinary least squares, y = b + m*x, with R², adjusted R², standard
//     error, RMSE, residuals, and Student-t confidence and prediction bands
//   - **Polynomial**: least squares on a Vandermonde basis solved through the normal
//     equations with gonum's LU factorization
//   - **LOESS**: locally weighted linear fits over the nearest fraction of points with
//     tricube weights
//
// # Basic Usage
//
//	settings, err := regression.NewSettings(regression.WithConfidenceLevel(0.9))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res := regression.Compute(x, y, settings)
//	if res == nil {
//	    return // fewer than two pairs, or regression disabled
//	}
//	fmt.Println(res.Equation, res.RSquared)
//	yHat := res.Predict(42)
//
// Results are plain data except for the fitted predictor behind Predict. Linear and
// polynomial fits can be rebuilt from their coefficients with NewEstimator or Evaluate.
//
// # Undefined Values
//
// Statistics that cannot be computed are NaN. Fits with too few points return empty
// coefficient, residual, curve, and band slices rather than nil.
//
// # Numerical Notes
//
// Polynomial fits above MaxStableDegree are allowed but the normal equations become
// ill conditioned for wide x ranges. A singular system yields empty coefficients.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. A Result may be read and
// its Predict method called from multiple goroutines.
package regression
