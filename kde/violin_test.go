package kde

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateViolinPath(t *testing.T) {
	points := []Point{{0, 0}, {1, 2}, {2, 1}}

	path := CreateViolinPath(points, ViolinSettings{CenterX: 10, MaxWidth: 4})

	require.Equal(t, "M10.00,0.00L12.00,1.00L11.00,2.00", path.Right)
	require.Equal(t, "M10.00,0.00L8.00,1.00L9.00,2.00", path.Left)
	require.Equal(t, "M10.00,0.00L12.00,1.00L11.00,2.00L9.00,2.00L8.00,1.00L10.00,0.00Z", path.Combined)
}

func TestCreateViolinPath_YScale(t *testing.T) {
	points := []Point{{0, 1}, {10, 1}}
	path := CreateViolinPath(points, ViolinSettings{
		CenterX:  0,
		MaxWidth: 2,
		YScale:   func(v float64) float64 { return 100 - 5*v },
	})

	require.Equal(t, "M1.00,100.00L1.00,50.00", path.Right)
	require.Equal(t, "M-1.00,100.00L-1.00,50.00", path.Left)
}

func TestCreateViolinPath_Empty(t *testing.T) {
	require.Equal(t, ViolinPath{}, CreateViolinPath(nil, ViolinSettings{MaxWidth: 10}))

	// Every y is dropped by the scale.
	path := CreateViolinPath([]Point{{1, 1}}, ViolinSettings{YScale: func(float64) float64 { return math.NaN() }})
	require.Equal(t, ViolinPath{}, path)
}

func TestCreateViolinPath_FromDensity(t *testing.T) {
	points := Compute(bimodal(), Settings{Bandwidth: Fixed(0.5), Resolution: 20})
	path := CreateViolinPath(points, ViolinSettings{CenterX: 50, MaxWidth: 30})

	require.True(t, strings.HasPrefix(path.Combined, "M"))
	require.True(t, strings.HasSuffix(path.Combined, "Z"))
	require.Equal(t, len(points), strings.Count(path.Right, "M")+strings.Count(path.Right, "L"))
	require.Equal(t, 2*len(points), strings.Count(path.Combined, "M")+strings.Count(path.Combined, "L"))
	require.Contains(t, path.Right, "65.00", "peak reaches half the max width")
}
