// Package histogram computes histogram bins for numeric samples.
//
// The number of bins is chosen by one of six rules (see BinMethod) and always lies in
// [MinBins, MaxBins]. ComputeBins then splits [min, max] into that many equal-width
// bins. All bins are half-open except the last, which is closed, so every sample,
// including the maximum, is counted exactly once:
//
//	bins := histogram.ComputeBins(values, histogram.Settings{Method: histogram.FreedmanDiaconis})
//	cdf := histogram.CumulativeDistribution(bins)
//
// Inputs are never modified.
package histogram
