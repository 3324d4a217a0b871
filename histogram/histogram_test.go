package histogram

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sequence(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

func TestCalculateBinCount(t *testing.T) {
	hundred := sequence(100)

	tests := []struct {
		name     string
		values   []float64
		settings Settings
		want     int
	}{
		{"sturges", hundred, Settings{Method: Sturges}, 8},
		{"sqrt", hundred, Settings{Method: Sqrt}, 10},
		{"scott", hundred, Settings{Method: Scott}, 5},
		{"freedman-diaconis", hundred, Settings{Method: FreedmanDiaconis}, 5},
		{"fixed count", hundred, Settings{Method: FixedCount, BinCount: 7}, 7},
		{"fixed count default", hundred, Settings{Method: FixedCount}, DefaultBinCount},
		{"fixed count clamped", hundred, Settings{Method: FixedCount, BinCount: 500}, MaxBins},
		{"fixed width", hundred, Settings{Method: FixedWidth, BinWidth: 10}, 10},
		{"fixed width default", hundred, Settings{Method: FixedWidth}, DefaultBinCount},
		{"fixed width clamped", hundred, Settings{Method: FixedWidth, BinWidth: 0.01}, MaxBins},
		{"unknown method uses sturges", hundred, Settings{Method: BinMethod(99)}, 8},
		{"empty", nil, Settings{Method: Sqrt}, 1},
		{"single", []float64{3}, Settings{Method: Sqrt}, 1},
		{"zero range", []float64{2, 2, 2, 2}, Settings{Method: FixedCount, BinCount: 20}, 1},
		{"freedman-diaconis falls back when IQR is zero", []float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 2}, Settings{Method: FreedmanDiaconis}, DefaultBinCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CalculateBinCount(tt.values, tt.settings))
		})
	}
}

func TestCalculateBinCount_AlwaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for range 100 {
		values := make([]float64, r.Intn(5000))
		for i := range values {
			values[i] = r.NormFloat64() * 100
		}
		for m := range binMethodNames {
			c := CalculateBinCount(values, Settings{Method: m, BinWidth: r.Float64()})
			require.GreaterOrEqual(t, c, MinBins)
			require.LessOrEqual(t, c, MaxBins)
		}
	}
}

func TestComputeBins_Partition(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for range 100 {
		values := make([]float64, 1+r.Intn(500))
		for i := range values {
			values[i] = r.NormFloat64()*r.Float64()*50 + 3
		}
		for m := range binMethodNames {
			bins := ComputeBins(values, Settings{Method: m})
			require.NotEmpty(t, bins)

			total := 0
			freq := 0.0
			area := 0.0
			for i, b := range bins {
				require.Less(t, b.X0, b.X1)
				total += b.Count
				freq += b.Frequency
				area += b.Density * (b.X1 - b.X0)
				if i > 0 {
					require.Equal(t, bins[i-1].X1, b.X0, "bins must be contiguous")
					require.InEpsilon(t, bins[0].X1-bins[0].X0, b.X1-b.X0, 1e-9, "bins must be equal width")
				}
			}
			require.Equal(t, len(values), total)
			require.InDelta(t, 1, freq, 1e-9)
			require.InDelta(t, 1, area, 1e-9)
		}
	}
}

func TestComputeBins_Edges(t *testing.T) {
	bins := ComputeBins([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Settings{Method: FixedCount, BinCount: 5})
	require.Len(t, bins, 5)

	counts := make([]int, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	// [0,2) [2,4) [4,6) [6,8) [8,10]
	require.Equal(t, []int{2, 2, 2, 2, 3}, counts)
	require.Equal(t, 0.0, bins[0].X0)
	require.Equal(t, 10.0, bins[4].X1)
}

func TestComputeBins_Degenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		bins := ComputeBins(nil, DefaultSettings())
		require.NotNil(t, bins)
		require.Empty(t, bins)
	})

	t.Run("zero range", func(t *testing.T) {
		bins := ComputeBins([]float64{4, 4, 4}, DefaultSettings())
		require.Equal(t, []Bin{{X0: 3.5, X1: 4.5, Count: 3, Frequency: 1, Density: 1}}, bins)
	})

	t.Run("single value", func(t *testing.T) {
		bins := ComputeBins([]float64{-2}, DefaultSettings())
		require.Len(t, bins, 1)
		require.Equal(t, 1, bins[0].Count)
	})

	t.Run("range overflows float64", func(t *testing.T) {
		bins := ComputeBins([]float64{-1e308, 0, 1e308}, DefaultSettings())
		require.Len(t, bins, 3)
		require.Equal(t, -1e308, bins[0].X0)
		require.Equal(t, 1e308, bins[2].X1)

		for i, b := range bins {
			require.False(t, math.IsNaN(b.X0) || math.IsInf(b.X0, 0), "bin %d X0=%v", i, b.X0)
			require.False(t, math.IsNaN(b.X1) || math.IsInf(b.X1, 0), "bin %d X1=%v", i, b.X1)
			require.Less(t, b.X0, b.X1)
			require.False(t, math.IsNaN(b.Density), "bin %d", i)
			require.Equal(t, 1, b.Count)
			if i > 0 {
				require.Equal(t, bins[i-1].X1, b.X0)
			}
		}
	})
}

func TestComputeBins_DoesNotMutateInput(t *testing.T) {
	values := []float64{5, 3, 9, 1, 7, 2}
	before := append([]float64(nil), values...)
	ComputeBins(values, Settings{Method: FreedmanDiaconis})
	require.Equal(t, before, values)
}

func TestCumulativeDistribution(t *testing.T) {
	bins := ComputeBins(sequence(100), DefaultSettings())
	cdf := CumulativeDistribution(bins)

	require.Len(t, cdf, len(bins))
	for i := 1; i < len(cdf); i++ {
		require.GreaterOrEqual(t, cdf[i].Cumulative, cdf[i-1].Cumulative)
		require.Equal(t, bins[i].X1, cdf[i].X1)
	}
	require.InDelta(t, 1, cdf[len(cdf)-1].Cumulative, 1e-12)
	require.Empty(t, CumulativeDistribution(nil))
}

func TestDeterminism(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	values := make([]float64, 300)
	for i := range values {
		values[i] = r.ExpFloat64()
	}
	for m := range binMethodNames {
		a := ComputeBins(values, Settings{Method: m})
		b := ComputeBins(values, Settings{Method: m})
		require.Empty(t, cmp.Diff(a, b))
	}
}

func TestBinMethodFromString(t *testing.T) {
	for m, name := range binMethodNames {
		require.Equal(t, m, BinMethodFromString(name))
		require.Equal(t, name, m.String())
	}
	require.Equal(t, Sturges, BinMethodFromString("nope"))
}

func TestNewSettings(t *testing.T) {
	s, err := NewSettings(WithBinCount(12))
	require.NoError(t, err)
	require.Equal(t, FixedCount, s.Method)
	require.Equal(t, 12, s.BinCount)

	s, err = NewSettings(WithBinWidth(2.5))
	require.NoError(t, err)
	require.Equal(t, FixedWidth, s.Method)

	s, err = NewSettings(WithMethod(Scott))
	require.NoError(t, err)
	require.Equal(t, Scott, s.Method)

	_, err = NewSettings(WithBinCount(0))
	require.Error(t, err)
	_, err = NewSettings(WithBinWidth(-1))
	require.Error(t, err)
	_, err = NewSettings(WithMethod(BinMethod(-4)))
	require.Error(t, err)
}

func BenchmarkComputeBins(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	values := make([]float64, 10000)
	for i := range values {
		values[i] = r.NormFloat64()
	}
	b.ResetTimer()
	for b.Loop() {
		ComputeBins(values, Settings{Method: FreedmanDiaconis})
	}
}
