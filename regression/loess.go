package regression

import (
	"cmp"
	"math"
	"slices"

	"github.com/arloliu/chartstats/internal/pool"
)

const (
	// LoessCurvePoints is the number of evenly spaced points in a LOESS curve.
	LoessCurvePoints = 51
	// minLoessNeighbors is the smallest neighbourhood a local fit uses.
	minLoessNeighbors = 3
)

// ComputeLoess fits a locally weighted linear regression.
//
// Each local fit at x0 uses the k = max(3, floor(bandwidth*n)) nearest pairs, capped at n,
// weighted by the tricube kernel w = (1 - d³)³ on d = |x - x0| / max distance. A bandwidth
// outside (0, 1] uses DefaultLoessBandwidth. An empty sample yields an empty curve and a
// predictor that returns NaN.
//
// The returned predictor keeps its own copy of the sample.
func ComputeLoess(x, y []float64, bandwidth float64) LoessResult {
	x, y = pairs(x, y)
	n := len(x)
	if n == 0 {
		return LoessResult{Curve: []Point{}, predict: undefinedPredictor}
	}
	if !(bandwidth > 0 && bandwidth <= 1) {
		bandwidth = DefaultLoessBandwidth
	}

	k := max(minLoessNeighbors, int(math.Floor(bandwidth*float64(n))))
	k = min(k, n)

	xs := slices.Clone(x)
	ys := slices.Clone(y)
	predict := func(x0 float64) float64 {
		return localFit(xs, ys, k, x0)
	}

	return LoessResult{
		Curve:   curve(xs, LoessCurvePoints, predict),
		N:       n,
		predict: predict,
	}
}

// localFit evaluates the weighted linear fit of the k pairs nearest to x0.
func localFit(x, y []float64, k int, x0 float64) float64 {
	idx, release := pool.GetIntSlice(len(x))
	defer release()

	for i := range idx {
		idx[i] = i
	}
	slices.SortFunc(idx, func(a, b int) int {
		if c := cmp.Compare(math.Abs(x[a]-x0), math.Abs(x[b]-x0)); c != 0 {
			return c
		}

		return cmp.Compare(a, b)
	})
	near := idx[:k]

	maxDist := math.Abs(x[near[k-1]] - x0)

	var sw, swx, swy, swxx, swxy float64
	accumulate := func(uniform bool) {
		sw, swx, swy, swxx, swxy = 0, 0, 0, 0, 0
		for _, i := range near {
			w := 1.0
			if !uniform {
				w = tricube(math.Abs(x[i]-x0) / maxDist)
			}
			sw += w
			swx += w * x[i]
			swy += w * y[i]
			swxx += w * x[i] * x[i]
			swxy += w * x[i] * y[i]
		}
	}

	accumulate(maxDist == 0)
	if sw == 0 {
		accumulate(true)
	}

	denom := sw*swxx - swx*swx
	if math.Abs(denom) < 1e-12*math.Max(1, sw*swxx) {
		return swy / sw
	}

	slope := (sw*swxy - swx*swy) / denom
	intercept := (swy - slope*swx) / sw

	return intercept + slope*x0
}

func tricube(d float64) float64 {
	if d >= 1 {
		return 0
	}
	t := 1 - d*d*d

	return t * t * t
}
