package regression

import (
	"math"

	"github.com/arloliu/chartstats/stats"
)

// pairs truncates x and y to their common length.
func pairs(x, y []float64) ([]float64, []float64) {
	n := min(len(x), len(y))

	return x[:n], y[:n]
}

// linspace returns count evenly spaced values on [lo, hi] with exact endpoints.
func linspace(lo, hi float64, count int) []float64 {
	out := make([]float64, count)
	if count == 1 {
		out[0] = lo
		return out
	}

	step := (hi - lo) / float64(count-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[count-1] = hi

	return out
}

// curve samples predict at count evenly spaced x values across the range of xs.
func curve(xs []float64, count int, predict Predictor) []Point {
	if len(xs) == 0 {
		return []Point{}
	}

	grid := linspace(stats.Min(xs), stats.Max(xs), count)
	out := make([]Point, len(grid))
	for i, gx := range grid {
		out[i] = Point{X: gx, Y: predict(gx)}
	}

	return out
}

// calculateRSquared calculates the coefficient of determination (R²).
//
// Formula: R² = 1 - (SS_res / SS_tot)
//   - SS_res: Sum of squares of residuals (observed - predicted)²
//   - SS_tot: Total sum of squares (observed - mean)²
//
// A constant response has no variance to explain and yields 0.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return math.NaN()
	}

	mean := stats.Mean(observed)
	ssTot := 0.0
	ssRes := 0.0

	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error.
//
// Formula: RMSE = √(Σ(observed - predicted)² / n)
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return math.NaN()
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

// adjustedRSquared corrects R² for the number of predictors p.
// It is undefined when n <= p+1.
func adjustedRSquared(r2 float64, n, p int) float64 {
	dof := n - p - 1
	if dof <= 0 || math.IsNaN(r2) {
		return math.NaN()
	}

	return 1 - (1-r2)*float64(n-1)/float64(dof)
}
