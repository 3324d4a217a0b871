package kde

import (
	"fmt"
	"math"

	"github.com/arloliu/chartstats/internal/options"
	"github.com/arloliu/chartstats/stats"
)

const (
	// DefaultResolution is the default number of grid intervals.
	DefaultResolution = 100
	// MinBandwidth is the smallest bandwidth Compute uses.
	MinBandwidth = 0.001
	// gridPadding extends the grid this many bandwidths beyond the data.
	gridPadding = 3
)

// Point is the estimated density at X.
type Point struct {
	X       float64 `json:"x"`
	Density float64 `json:"density"`
}

// Settings controls Compute.
type Settings struct {
	Kernel    Kernel
	Bandwidth Bandwidth
	// Resolution is the number of grid intervals; the grid has Resolution+1 points.
	Resolution int
}

// DefaultSettings returns a Gaussian kernel with Silverman's bandwidth on a 100 interval grid.
func DefaultSettings() Settings {
	return Settings{
		Kernel:     Gaussian,
		Bandwidth:  Silverman(),
		Resolution: DefaultResolution,
	}
}

// Resolve returns a copy of s with unknown or invalid fields replaced by defaults.
func (s Settings) Resolve() Settings {
	if _, ok := kernelNames[s.Kernel]; !ok {
		s.Kernel = Gaussian
	}
	if _, ok := bandwidthMethodNames[s.Bandwidth.Method]; !ok {
		s.Bandwidth = Silverman()
	}
	if s.Resolution <= 0 {
		s.Resolution = DefaultResolution
	}

	return s
}

// Option configures Settings.
type Option = options.Option[*Settings]

// NewSettings builds Settings from DefaultSettings and opts.
func NewSettings(opts ...Option) (Settings, error) {
	return options.Build(DefaultSettings(), opts...)
}

// WithKernel sets the kernel.
func WithKernel(k Kernel) Option {
	return options.New(func(s *Settings) error {
		if _, ok := kernelNames[k]; !ok {
			return fmt.Errorf("unknown kernel: %d", int(k))
		}
		s.Kernel = k

		return nil
	})
}

// WithBandwidth sets the bandwidth rule or literal.
func WithBandwidth(bw Bandwidth) Option {
	return options.New(func(s *Settings) error {
		if _, ok := bandwidthMethodNames[bw.Method]; !ok {
			return fmt.Errorf("unknown bandwidth method: %d", int(bw.Method))
		}
		if bw.Method == BandwidthFixed && !(bw.Value > 0) {
			return fmt.Errorf("fixed bandwidth must be positive, got %v", bw.Value)
		}
		s.Bandwidth = bw

		return nil
	})
}

// WithResolution sets the number of grid intervals.
func WithResolution(n int) Option {
	return options.New(func(s *Settings) error {
		if n < 1 {
			return fmt.Errorf("resolution must be at least 1, got %d", n)
		}
		s.Resolution = n

		return nil
	})
}

// Compute evaluates the kernel density estimate of values on an evenly spaced grid.
//
// The grid has Resolution+1 points spanning [min-3h, max+3h], where h is the bandwidth
// floored at MinBandwidth. Empty input yields an empty slice.
func Compute(values []float64, settings Settings) []Point {
	n := len(values)
	if n == 0 {
		return []Point{}
	}
	settings = settings.Resolve()

	h := CalculateBandwidth(values, settings.Bandwidth)
	if !(h >= MinBandwidth) {
		h = MinBandwidth
	}
	kernel := settings.Kernel.Func()

	lo := stats.Min(values) - gridPadding*h
	hi := stats.Max(values) + gridPadding*h
	res := settings.Resolution
	step := (hi - lo) / float64(res)
	scale := 1 / (float64(n) * h)

	points := make([]Point, res+1)
	for i := range points {
		x := lo + float64(i)*step
		if i == res {
			x = hi
		}
		sum := 0.0
		for _, xi := range values {
			sum += kernel((x - xi) / h)
		}
		points[i] = Point{X: x, Density: sum * scale}
	}

	return points
}

// MaxDensity returns the largest density in points, or 0 for an empty slice.
func MaxDensity(points []Point) float64 {
	peak := 0.0
	for _, p := range points {
		if p.Density > peak {
			peak = p.Density
		}
	}

	return peak
}

// Normalize returns a copy of points with densities scaled so the peak is 1.
// When the peak is 0 the copy is unchanged.
func Normalize(points []Point) []Point {
	out := make([]Point, len(points))
	copy(out, points)

	peak := MaxDensity(points)
	if peak == 0 {
		return out
	}
	for i := range out {
		out[i].Density /= peak
	}

	return out
}

// PeakCount returns the number of local maxima of the density curve.
// A plateau counts once; a curve still rising at its last point has no peak there.
func PeakCount(points []Point) int {
	peaks := 0
	rising := false
	for i := 1; i < len(points); i++ {
		switch d, prev := points[i].Density, points[i-1].Density; {
		case d > prev:
			rising = true
		case d < prev:
			if rising {
				peaks++
			}
			rising = false
		}
	}

	return peaks
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
