package regression

import (
	"math"

	"github.com/arloliu/chartstats/stats"
)

// BandPoints is the number of evenly spaced points in a confidence or prediction band.
const BandPoints = 51

// ComputeConfidenceBand returns the band for the mean response of a linear fit:
//
//	ŷ ± t·SE·√(1/n + (x - x̄)²/Sxx)
//
// where t is the Student-t critical value for n-2 degrees of freedom at (1+level)/2.
// Fewer than three pairs or a zero spread in x yield an empty band. A level outside
// (0, 1) uses DefaultConfidenceLevel.
func ComputeConfidenceBand(x, y []float64, level float64) []BandPoint {
	return computeBand(x, y, level, false)
}

// ComputePredictionBand returns the band for a new observation of a linear fit:
//
//	ŷ ± t·SE·√(1 + 1/n + (x - x̄)²/Sxx)
//
// It is never narrower than the confidence band at the same level. Edge cases match
// ComputeConfidenceBand.
func ComputePredictionBand(x, y []float64, level float64) []BandPoint {
	return computeBand(x, y, level, true)
}

func computeBand(x, y []float64, level float64, prediction bool) []BandPoint {
	x, y = pairs(x, y)
	n := len(x)
	if n < 3 {
		return []BandPoint{}
	}
	if !(level > 0 && level < 1) {
		level = DefaultConfidenceLevel
	}

	meanX := stats.Mean(x)
	sxx := 0.0
	for _, xi := range x {
		sxx += (xi - meanX) * (xi - meanX)
	}
	if sxx == 0 {
		return []BandPoint{}
	}

	fit := ComputeLinear(x, y)
	t := stats.TCritical(float64(n-2), (1+level)/2)
	base := 1 / float64(n)
	if prediction {
		base++
	}

	grid := linspace(stats.Min(x), stats.Max(x), BandPoints)
	band := make([]BandPoint, len(grid))
	for i, gx := range grid {
		yv := fit.Predict(gx)
		half := t * fit.StandardError * math.Sqrt(base+(gx-meanX)*(gx-meanX)/sxx)
		band[i] = BandPoint{X: gx, Y: yv, Lower: yv - half, Upper: yv + half}
	}

	return band
}
