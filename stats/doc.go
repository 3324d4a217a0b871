// Package stats provides the numeric primitives shared by the chart engines.
//
// Every function is pure: inputs are never modified and results share no memory with
// them. Functions that have no meaningful value for their input (the mean of an empty
// sample, the variance of a single value) return the undefined sentinel, math.NaN(),
// rather than an error. Use IsUndefined to test for it.
//
// # Quantiles
//
// Quantile implements the linear interpolation definition used by R's quantile(type = 7)
// and numpy.percentile's default, so results can be cross-checked against either tool:
//
//	sorted := stats.Sorted([]float64{7, 1, 3, 9, 5})
//	q1 := stats.Quantile(sorted, 0.25) // 3
//
// # Distributions
//
// NormalCDF uses the Abramowitz and Stegun 7.1.26 rational approximation of erf and is
// accurate to about 1.5e-7. Probit inverts the standard normal CDF with a three-region
// rational approximation, and TCritical approximates Student's t quantiles with a
// four-term Cornish-Fisher expansion around Probit. The approximations are deterministic
// and match the values the rendering layer has always displayed.
package stats
