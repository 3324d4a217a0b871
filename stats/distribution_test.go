package stats

import (
	"math"
	"testing"

	moremath "github.com/aclements/go-moremath/stats"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestNormalPDF(t *testing.T) {
	require.InDelta(t, 1/math.Sqrt(2*math.Pi), NormalPDF(0), 1e-15)
	require.InDelta(t, NormalPDF(1.3), NormalPDF(-1.3), 1e-15)
	require.InDelta(t, moremath.StdNormal.PDF(0.7), NormalPDF(0.7), 1e-12)
}

func TestNormalCDF(t *testing.T) {
	require.Equal(t, 0.5, NormalCDF(0))
	require.Equal(t, 0.5, NormalCDF(math.Copysign(0, -1)))
	require.InDelta(t, 0.975, NormalCDF(1.959963984540054), 2e-7)
	require.True(t, IsUndefined(NormalCDF(math.NaN())))

	for x := -5.0; x <= 5.0; x += 0.25 {
		require.InDelta(t, moremath.StdNormal.CDF(x), NormalCDF(x), 2e-7, "x=%v", x)
		require.InDelta(t, 1, NormalCDF(x)+NormalCDF(-x), 1e-12, "symmetry at x=%v", x)
	}
}

func TestProbit(t *testing.T) {
	t.Run("boundaries", func(t *testing.T) {
		require.Equal(t, 0.0, Probit(0.5))
		require.True(t, math.IsInf(Probit(0), -1))
		require.True(t, math.IsInf(Probit(1), 1))
		require.True(t, IsUndefined(Probit(-0.1)))
		require.True(t, IsUndefined(Probit(1.1)))
		require.True(t, IsUndefined(Probit(math.NaN())))
	})

	t.Run("all three regions agree with exact inverse", func(t *testing.T) {
		for _, p := range []float64{1e-6, 0.001, 0.01, 0.02425, 0.1, 0.3, 0.7, 0.9, 0.975, 0.99, 0.999999} {
			require.InDelta(t, moremath.StdNormal.InvCDF(p), Probit(p), 1e-8, "p=%v", p)
		}
	})

	t.Run("continuous across region boundaries", func(t *testing.T) {
		for _, p := range []float64{probitLow, 1 - probitLow} {
			require.InDelta(t, Probit(p-1e-12), Probit(p+1e-12), 1e-8, "p=%v", p)
		}
	})

	t.Run("odd symmetry", func(t *testing.T) {
		for _, p := range []float64{0.001, 0.2, 0.4} {
			require.InDelta(t, -Probit(p), Probit(1-p), 1e-9)
		}
	})

	t.Run("round trip with NormalCDF", func(t *testing.T) {
		for x := -3.0; x <= 3.0; x += 0.5 {
			// NormalCDF carries ~1.5e-7 absolute error, amplified by 1/pdf in the tails.
			require.InDelta(t, x, Probit(NormalCDF(x)), 5e-5, "x=%v", x)
		}
	})
}

func TestTCritical(t *testing.T) {
	t.Run("invalid degrees of freedom", func(t *testing.T) {
		require.True(t, IsUndefined(TCritical(0, 0.975)))
		require.True(t, IsUndefined(TCritical(-3, 0.975)))
		require.True(t, IsUndefined(TCritical(math.NaN(), 0.975)))
	})

	t.Run("large df uses normal quantile", func(t *testing.T) {
		require.Equal(t, Probit(0.975), TCritical(30, 0.975))
		require.Equal(t, Probit(0.9), TCritical(1000, 0.9))
	})

	t.Run("median is zero", func(t *testing.T) {
		require.Equal(t, 0.0, TCritical(5, 0.5))
	})

	t.Run("within one percent of exact quantile", func(t *testing.T) {
		for _, df := range []float64{3, 4, 5, 8, 10, 15, 20, 29} {
			for _, p := range []float64{0.9, 0.95, 0.975, 0.995} {
				exact := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Quantile(p)
				got := TCritical(df, p)
				require.InEpsilon(t, exact, got, 0.01, "df=%v p=%v", df, p)
			}
		}
	})

	t.Run("heavier tails than normal", func(t *testing.T) {
		for df := 1.0; df < 30; df++ {
			require.Greater(t, TCritical(df, 0.975), Probit(0.975))
		}
	})
}
