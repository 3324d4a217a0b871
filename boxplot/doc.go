// Package boxplot computes box-and-whisker statistics.
//
// Quartiles use the same linear interpolation as R's quantile(type = 7), so
// Compute([1..10]) yields Q1 = 3.25, Median = 5.5 and Q3 = 7.75, matching summary().
//
// Four whisker policies are supported:
//
//   - WhiskerTukey: whiskers snap to the most extreme samples inside the 1.5*IQR fences
//   - WhiskerMinMax: whiskers at the sample extremes, never any outliers
//   - WhiskerPercentile: whiskers at the p and 1-p quantiles, not snapped
//   - WhiskerStdDev: whiskers snap to the most extreme samples inside mean ± k*stddev
//
// Empty input is not an error: every scalar of the result is NaN and Outliers is empty.
package boxplot
