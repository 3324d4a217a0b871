package boxplot

import (
	"fmt"
	"math"
	"slices"
	"sort"

	"github.com/arloliu/chartstats/stats"
)

// Stats is the summary a box plot renders for one sample set.
//
// For N > 0 the ordering LowerWhisker <= Q1 <= Median <= Q3 <= UpperWhisker holds and
// Outliers lists, in ascending order, the samples strictly outside the whiskers. For
// N == 0 every scalar is NaN and Outliers is empty.
type Stats struct {
	Min          float64   `json:"min"`
	Q1           float64   `json:"q1"`
	Median       float64   `json:"median"`
	Q3           float64   `json:"q3"`
	Max          float64   `json:"max"`
	IQR          float64   `json:"iqr"`
	LowerWhisker float64   `json:"lowerWhisker"`
	UpperWhisker float64   `json:"upperWhisker"`
	Outliers     []float64 `json:"outliers"`
	Mean         float64   `json:"mean"`
	N            int       `json:"n"`
}

// String returns a compact human-readable summary.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{N: %d, Whiskers: [%g, %g], Box: [%g, %g, %g], Outliers: %d}",
		s.N, s.LowerWhisker, s.UpperWhisker, s.Q1, s.Median, s.Q3, len(s.Outliers))
}

// Group is one category of a grouped box plot.
type Group struct {
	Category string
	Values   []float64
}

// GroupStats is the result for one Group.
type GroupStats struct {
	Category  string    `json:"category"`
	Stats     Stats     `json:"stats"`
	RawValues []float64 `json:"rawValues"`
}

func emptyStats() Stats {
	nan := math.NaN()

	return Stats{
		Min:          nan,
		Q1:           nan,
		Median:       nan,
		Q3:           nan,
		Max:          nan,
		IQR:          nan,
		LowerWhisker: nan,
		UpperWhisker: nan,
		Outliers:     []float64{},
		Mean:         nan,
	}
}

// Compute returns the box plot statistics of values under settings.
//
// values is not modified and may be in any order. Zero or out-of-range settings
// fields fall back to their defaults.
//
// Example:
//
//	s := boxplot.Compute([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, boxplot.DefaultSettings())
//	// s.Q1 == 3.25, s.Median == 5.5, s.Q3 == 7.75
func Compute(values []float64, settings Settings) Stats {
	if len(values) == 0 {
		return emptyStats()
	}
	settings = settings.Resolve()

	sorted := stats.Sorted(values)
	n := len(sorted)

	s := Stats{
		Min:    sorted[0],
		Q1:     stats.Quantile(sorted, 0.25),
		Median: stats.Quantile(sorted, 0.5),
		Q3:     stats.Quantile(sorted, 0.75),
		Max:    sorted[n-1],
		Mean:   stats.Mean(sorted),
		N:      n,
	}
	s.IQR = s.Q3 - s.Q1

	lower, upper := whiskers(sorted, s, settings)

	// Keep the box inside the whiskers even when no sample lies between a fence and
	// the quartile it bounds.
	s.LowerWhisker = math.Min(lower, s.Q1)
	s.UpperWhisker = math.Max(upper, s.Q3)

	s.Outliers = []float64{}
	if settings.WhiskerMethod != WhiskerMinMax {
		for _, v := range sorted {
			if v < s.LowerWhisker || v > s.UpperWhisker {
				s.Outliers = append(s.Outliers, v)
			}
		}
	}

	return s
}

// ComputeGrouped applies Compute to every group independently.
// RawValues in the result is a copy of the group's values.
func ComputeGrouped(groups []Group, settings Settings) []GroupStats {
	out := make([]GroupStats, len(groups))
	for i, g := range groups {
		raw := slices.Clone(g.Values)
		if raw == nil {
			raw = []float64{}
		}
		out[i] = GroupStats{
			Category:  g.Category,
			Stats:     Compute(g.Values, settings),
			RawValues: raw,
		}
	}

	return out
}

func whiskers(sorted []float64, s Stats, settings Settings) (lower, upper float64) {
	switch settings.WhiskerMethod {
	case WhiskerMinMax:
		return s.Min, s.Max
	case WhiskerPercentile:
		p := settings.WhiskerPercentile
		return stats.Quantile(sorted, p), stats.Quantile(sorted, 1-p)
	case WhiskerStdDev:
		sd := stats.StandardDeviation(sorted, 1)
		if math.IsNaN(sd) {
			sd = 0
		}
		lo := math.Max(s.Mean-settings.WhiskerStdDev*sd, s.Min)
		hi := math.Min(s.Mean+settings.WhiskerStdDev*sd, s.Max)

		return snapInward(sorted, lo, hi, s)
	default:
		lo := s.Q1 - TukeyFactor*s.IQR
		hi := s.Q3 + TukeyFactor*s.IQR

		return snapInward(sorted, lo, hi, s)
	}
}

// snapInward returns the smallest sample >= lo and the largest sample <= hi.
// When a fence excludes every sample the matching quartile is used.
func snapInward(sorted []float64, lo, hi float64, s Stats) (lower, upper float64) {
	n := len(sorted)

	i := sort.SearchFloat64s(sorted, lo)
	if i < n {
		lower = sorted[i]
	} else {
		lower = s.Q1
	}

	j := sort.Search(n, func(k int) bool { return sorted[k] > hi }) - 1
	if j >= 0 {
		upper = sorted[j]
	} else {
		upper = s.Q3
	}

	return lower, upper
}
