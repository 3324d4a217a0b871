package histogram

import (
	"math"
	"slices"

	"github.com/arloliu/chartstats/internal/pool"
	"github.com/arloliu/chartstats/stats"
)

// Bin is one bar of a histogram.
//
// Every bin except the last covers [X0, X1); the last covers [X0, X1]. Frequency is
// Count / n and Density is Frequency / (X1 - X0).
type Bin struct {
	X0        float64 `json:"x0"`
	X1        float64 `json:"x1"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
	Density   float64 `json:"density"`
}

// CumulativeBin is the running frequency up to and including a bin.
type CumulativeBin struct {
	X0         float64 `json:"x0"`
	X1         float64 `json:"x1"`
	Cumulative float64 `json:"cumulative"`
}

// CalculateBinCount returns the number of bins the selected rule produces for values,
// clamped to [MinBins, MaxBins].
//
// Inputs with fewer than two values or zero range always yield one bin.
func CalculateBinCount(values []float64, settings Settings) int {
	n := len(values)
	if n <= 1 {
		return 1
	}
	minV, maxV := stats.Min(values), stats.Max(values)
	dataRange := maxV - minV
	if dataRange == 0 {
		return 1
	}
	settings = settings.Resolve()
	nf := float64(n)

	switch settings.Method {
	case Scott:
		h := 3.49 * stats.StandardDeviation(values, 1) * math.Cbrt(1/nf)
		return countForWidth(dataRange, h)
	case FreedmanDiaconis:
		sorted, cleanup := pool.GetFloat64Slice(n)
		defer cleanup()
		copy(sorted, values)
		slices.Sort(sorted)
		h := 2 * stats.InterquartileRange(sorted) * math.Cbrt(1/nf)

		return countForWidth(dataRange, h)
	case Sqrt:
		return clampCount(math.Ceil(math.Sqrt(nf)))
	case FixedCount:
		return clampCount(float64(settings.BinCount))
	case FixedWidth:
		if settings.BinWidth == 0 {
			return DefaultBinCount
		}

		return clampCount(math.Ceil(dataRange / settings.BinWidth))
	default:
		return clampCount(math.Ceil(math.Log2(nf) + 1))
	}
}

func countForWidth(dataRange, h float64) int {
	if !(h > 0) {
		return DefaultBinCount
	}

	return clampCount(math.Ceil(dataRange / h))
}

func clampCount(c float64) int {
	switch {
	case math.IsNaN(c) || c < MinBins:
		return MinBins
	case c > MaxBins:
		return MaxBins
	default:
		return int(c)
	}
}

// ComputeBins partitions [min, max] of values into CalculateBinCount equal-width bins
// and counts the samples in each.
//
// Adjacent bins share the exact same edge value and the sum of counts equals
// len(values). A zero-range input yields the single bin [v-0.5, v+0.5]. An empty input
// yields an empty slice.
func ComputeBins(values []float64, settings Settings) []Bin {
	n := len(values)
	if n == 0 {
		return []Bin{}
	}
	minV, maxV := stats.Min(values), stats.Max(values)
	if maxV == minV {
		return []Bin{{
			X0:        minV - 0.5,
			X1:        minV + 0.5,
			Count:     n,
			Frequency: 1,
			Density:   1,
		}}
	}

	k := CalculateBinCount(values, settings)
	width := (maxV - minV) / float64(k)

	edges := make([]float64, k+1)
	edges[0] = minV
	for i := 1; i < k; i++ {
		if math.IsInf(width, 0) {
			// max-min overflows; interpolate so every edge stays finite
			t := float64(i) / float64(k)
			edges[i] = minV*(1-t) + maxV*t
		} else {
			edges[i] = minV + float64(i)*width
		}
	}
	edges[k] = maxV

	counts := make([]int, k)
	for _, v := range values {
		counts[binIndex(edges, v, minV, width)]++
	}

	bins := make([]Bin, k)
	nf := float64(n)
	for i := range k {
		freq := float64(counts[i]) / nf
		bins[i] = Bin{
			X0:        edges[i],
			X1:        edges[i+1],
			Count:     counts[i],
			Frequency: freq,
			Density:   freq / (edges[i+1] - edges[i]),
		}
	}

	return bins
}

// binIndex locates the bin holding v. The arithmetic guess is corrected against the
// stored edges so rounding can never place a value on the wrong side of an edge.
func binIndex(edges []float64, v, minV, width float64) int {
	k := len(edges) - 1
	idx := 0
	if g := math.Floor((v - minV) / width); g > 0 {
		idx = int(math.Min(g, float64(k-1)))
	}
	for idx > 0 && v < edges[idx] {
		idx--
	}
	for idx < k-1 && v >= edges[idx+1] {
		idx++
	}

	return idx
}

// CumulativeDistribution returns the running sum of bin frequencies.
// The sequence is non-decreasing and ends at 1 up to floating-point error.
func CumulativeDistribution(bins []Bin) []CumulativeBin {
	out := make([]CumulativeBin, len(bins))
	sum := 0.0
	for i, b := range bins {
		sum += b.Frequency
		out[i] = CumulativeBin{X0: b.X0, X1: b.X1, Cumulative: sum}
	}

	return out
}
