package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Undefined returns the sentinel used for values that cannot be computed.
func Undefined() float64 {
	return math.NaN()
}

// IsUndefined reports whether v is the undefined sentinel.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// Sum returns the sum of values, or 0 for an empty slice.
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Mean returns the arithmetic mean of values, or NaN for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return stat.Mean(values, nil)
}

// Min returns the smallest value, or NaN for an empty slice.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return floats.Min(values)
}

// Max returns the largest value, or NaN for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return floats.Max(values)
}

// Variance returns the variance of values with denominator n-ddof.
//
// ddof 0 gives the population variance and ddof 1 the sample variance. Any other ddof
// is treated as 1. The result is NaN when n <= ddof.
func Variance(values []float64, ddof int) float64 {
	if ddof != 0 {
		ddof = 1
	}
	if len(values) <= ddof {
		return math.NaN()
	}
	if ddof == 0 {
		return stat.PopVariance(values, nil)
	}

	return stat.Variance(values, nil)
}

// StandardDeviation returns the square root of Variance(values, ddof).
func StandardDeviation(values []float64, ddof int) float64 {
	return math.Sqrt(Variance(values, ddof))
}

// Sorted returns an ascending copy of values.
func Sorted(values []float64) []float64 {
	out := slices.Clone(values)
	if out == nil {
		out = []float64{}
	}
	slices.Sort(out)

	return out
}

// Quantile returns the p-quantile of an ascending slice using linear interpolation
// between the order statistics at floor and ceil of (n-1)*p.
//
// p <= 0 yields the minimum and p >= 1 the maximum. The result is NaN for an empty
// slice or a NaN p. The slice must already be sorted; see Sorted.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	idx := float64(n-1) * p
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}

	return sorted[lo] + (sorted[hi]-sorted[lo])*(idx-float64(lo))
}

// Median returns the 0.5-quantile of an ascending slice.
func Median(sorted []float64) float64 {
	return Quantile(sorted, 0.5)
}

// InterquartileRange returns Q3 - Q1 of an ascending slice.
func InterquartileRange(sorted []float64) float64 {
	return Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
}
