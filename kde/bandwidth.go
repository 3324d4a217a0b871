package kde

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/arloliu/chartstats/internal/pool"
	"github.com/arloliu/chartstats/stats"
)

// BandwidthMethod selects how the smoothing bandwidth is obtained.
type BandwidthMethod int

const (
	// BandwidthSilverman is 0.9 * min(stddev, IQR/1.34) * n^(-1/5).
	BandwidthSilverman BandwidthMethod = iota
	// BandwidthScott is 3.49 * stddev * n^(-1/3).
	BandwidthScott
	// BandwidthFixed uses a caller supplied value.
	BandwidthFixed
)

var bandwidthMethodNames = map[BandwidthMethod]string{
	BandwidthSilverman: "silverman",
	BandwidthScott:     "scott",
	BandwidthFixed:     "fixed",
}

// String returns the literal name of the method.
func (m BandwidthMethod) String() string {
	if name, ok := bandwidthMethodNames[m]; ok {
		return name
	}

	return "unknown"
}

// Bandwidth is either an automatic rule or a literal value.
// The zero value is Silverman's rule.
type Bandwidth struct {
	Method BandwidthMethod
	// Value is the literal bandwidth when Method is BandwidthFixed.
	Value float64
}

// Silverman returns Silverman's rule of thumb.
func Silverman() Bandwidth { return Bandwidth{Method: BandwidthSilverman} }

// Scott returns Scott's rule.
func Scott() Bandwidth { return Bandwidth{Method: BandwidthScott} }

// Fixed returns the literal bandwidth h.
func Fixed(h float64) Bandwidth { return Bandwidth{Method: BandwidthFixed, Value: h} }

// String returns "silverman", "scott" or the literal value.
func (b Bandwidth) String() string {
	if b.Method == BandwidthFixed {
		return fmt.Sprintf("%g", b.Value)
	}

	return b.Method.String()
}

// BandwidthFromString parses "silverman", "scott" or a decimal literal.
// Anything else yields Silverman.
func BandwidthFromString(s string) Bandwidth {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silverman":
		return Silverman()
	case "scott":
		return Scott()
	}
	if h, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && h > 0 {
		return Fixed(h)
	}

	return Silverman()
}

// CalculateBandwidth returns the bandwidth bw selects for values.
//
// Empty input yields 1. Silverman's rule uses the smaller of the standard deviation and
// IQR/1.34; when one of them is zero the other is used. The result may be zero for
// constant input, Compute floors it at MinBandwidth.
func CalculateBandwidth(values []float64, bw Bandwidth) float64 {
	n := len(values)
	if n == 0 {
		return 1
	}

	switch bw.Method {
	case BandwidthFixed:
		return bw.Value
	case BandwidthScott:
		return 3.49 * sampleStdDev(values) * math.Cbrt(1/float64(n))
	default:
		sorted, cleanup := pool.GetFloat64Slice(n)
		defer cleanup()
		copy(sorted, values)
		slices.Sort(sorted)

		sd := sampleStdDev(values)
		iqr := stats.InterquartileRange(sorted) / 1.34

		spread := math.Min(sd, iqr)
		if spread == 0 {
			spread = math.Max(sd, iqr)
		}

		return 0.9 * spread * math.Pow(float64(n), -0.2)
	}
}

func sampleStdDev(values []float64) float64 {
	sd := stats.StandardDeviation(values, 1)
	if math.IsNaN(sd) {
		return 0
	}

	return sd
}
