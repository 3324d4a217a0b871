// Package chartstats computes the statistics behind common data-visualization charts.
//
// The engines live in sub-packages and are pure functions over []float64 samples:
//
//   - boxplot: five-number summaries with Tukey, min-max, percentile, or standard
//     deviation whiskers, outliers, and grouped summaries
//   - histogram: bin-count rules (Sturges, Scott, Freedman-Diaconis, square root, fixed)
//     and equal-width binning with cumulative distributions
//   - kde: kernel density estimation and SVG violin outlines
//   - regression: linear, polynomial, and LOESS trend lines with confidence bands
//   - stats: the shared descriptive statistics and distribution approximations
//
// This package wraps each engine behind functional options so that callers can build
// settings and compute in one call.
//
// # Basic Usage
//
//	import "github.com/arloliu/chartstats"
//
//	box, err := chartstats.Boxplot(latencies, boxplot.WithWhiskerMethod(boxplot.WhiskerPercentile))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(box)
//
//	bins, _ := chartstats.Histogram(latencies, histogram.WithMethod(histogram.FreedmanDiaconis))
//	density, _ := chartstats.Density(latencies, kde.WithKernel(kde.Epanechnikov))
//	fit, _ := chartstats.Regress(x, y, regression.WithPolynomial(3))
//
// # Undefined Values
//
// Statistics that cannot be computed from the input, such as the mean of an empty
// sample, are NaN. Slices in results are never nil.
//
// # Caching
//
// Results are deterministic for equal inputs and settings. CacheKey fingerprints a sample
// set with xxHash64 for callers that memoize results in their own caches.
//
// # Thread Safety
//
// All functions are safe for concurrent use. Inputs are never modified.
package chartstats

import (
	"github.com/arloliu/chartstats/boxplot"
	"github.com/arloliu/chartstats/histogram"
	"github.com/arloliu/chartstats/internal/hash"
	"github.com/arloliu/chartstats/kde"
	"github.com/arloliu/chartstats/regression"
)

// Boxplot computes a box plot summary of values.
//
// Parameters:
//   - values: The sample. NaN values are not filtered.
//   - opts: Options applied on top of boxplot.DefaultSettings
//
// Returns:
//   - boxplot.Stats: The summary. An empty sample yields NaN statistics.
//   - error: Returns an error if an option value is invalid
//
// Example:
//
//	stats, err := chartstats.Boxplot(values, boxplot.WithWhiskerMethod(boxplot.WhiskerMinMax))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(stats.Median)
func Boxplot(values []float64, opts ...boxplot.Option) (boxplot.Stats, error) {
	settings, err := boxplot.NewSettings(opts...)
	if err != nil {
		return boxplot.Stats{}, err
	}

	return boxplot.Compute(values, settings), nil
}

// Histogram bins values into equal-width bins.
//
// An empty sample yields no bins. The error is non-nil only for invalid option values.
func Histogram(values []float64, opts ...histogram.Option) ([]histogram.Bin, error) {
	settings, err := histogram.NewSettings(opts...)
	if err != nil {
		return nil, err
	}

	return histogram.ComputeBins(values, settings), nil
}

// Density computes a kernel density estimate of values.
//
// An empty sample yields no points. The error is non-nil only for invalid option values.
func Density(values []float64, opts ...kde.Option) ([]kde.Point, error) {
	settings, err := kde.NewSettings(opts...)
	if err != nil {
		return nil, err
	}

	return kde.Compute(values, settings), nil
}

// Violin computes a density estimate of values and renders it as a violin outline.
func Violin(values []float64, violin kde.ViolinSettings, opts ...kde.Option) (kde.ViolinPath, error) {
	points, err := Density(values, opts...)
	if err != nil {
		return kde.ViolinPath{}, err
	}

	return kde.CreateViolinPath(points, violin), nil
}

// Regress fits a trend line through the (x, y) pairs.
//
// The fit defaults to linear with 95% bands. The result is nil when regression is
// disabled with regression.WithType(regression.TypeNone) or fewer than two pairs are
// available. The error is non-nil only for invalid option values.
func Regress(x, y []float64, opts ...regression.Option) (*regression.Result, error) {
	settings, err := regression.NewSettings(opts...)
	if err != nil {
		return nil, err
	}

	return regression.Compute(x, y, settings), nil
}

// CacheKey fingerprints an operation name and its samples with xxHash64.
//
// Equal names and samples always produce the same key. Changing the name, any value,
// or how values are split across samples changes the key. Settings are not part of the
// key; include them in the operation name when they vary.
//
// Example:
//
//	key := chartstats.CacheKey("kde:gaussian:silverman", values)
//	if cached, ok := cache[key]; ok {
//	    return cached
//	}
func CacheKey(operation string, samples ...[]float64) uint64 {
	return hash.Samples(operation, samples...)
}
