package histogram

import (
	"fmt"
	"strings"

	"github.com/arloliu/chartstats/internal/options"
)

// BinMethod selects the rule used to choose the number of bins.
type BinMethod int

const (
	// Sturges uses ceil(log2(n) + 1) bins.
	Sturges BinMethod = iota
	// Scott uses bin width 3.49 * stddev * n^(-1/3).
	Scott
	// FreedmanDiaconis uses bin width 2 * IQR * n^(-1/3).
	FreedmanDiaconis
	// Sqrt uses ceil(sqrt(n)) bins.
	Sqrt
	// FixedCount uses Settings.BinCount bins.
	FixedCount
	// FixedWidth uses bins of Settings.BinWidth.
	FixedWidth
)

const (
	// MinBins and MaxBins bound every computed bin count.
	MinBins = 1
	MaxBins = 100
	// DefaultBinCount is used by FixedCount when no count is given, and by Scott and
	// FreedmanDiaconis when the spread estimate is zero.
	DefaultBinCount = 10
)

var binMethodNames = map[BinMethod]string{
	Sturges:          "sturges",
	Scott:            "scott",
	FreedmanDiaconis: "freedman-diaconis",
	Sqrt:             "sqrt",
	FixedCount:       "fixed-count",
	FixedWidth:       "fixed-width",
}

var binMethodFromString = map[string]BinMethod{
	"sturges":           Sturges,
	"scott":             Scott,
	"freedman-diaconis": FreedmanDiaconis,
	"sqrt":              Sqrt,
	"fixed-count":       FixedCount,
	"fixed-width":       FixedWidth,
}

// String returns the literal name of the method.
func (m BinMethod) String() string {
	if name, ok := binMethodNames[m]; ok {
		return name
	}

	return "unknown"
}

// BinMethodFromString maps a literal name to a BinMethod. Unknown names fall back to Sturges.
func BinMethodFromString(name string) BinMethod {
	if m, ok := binMethodFromString[strings.ToLower(name)]; ok {
		return m
	}

	return Sturges
}

// Settings controls CalculateBinCount and ComputeBins.
type Settings struct {
	// Method is the bin-count rule.
	Method BinMethod
	// BinCount is the number of bins for FixedCount.
	BinCount int
	// BinWidth is the bin width for FixedWidth. Zero means a tenth of the data range.
	BinWidth float64
}

// DefaultSettings returns Sturges' rule.
func DefaultSettings() Settings {
	return Settings{
		Method:   Sturges,
		BinCount: DefaultBinCount,
	}
}

// Resolve returns a copy of s with unknown or invalid fields replaced by defaults.
func (s Settings) Resolve() Settings {
	if _, ok := binMethodNames[s.Method]; !ok {
		s.Method = Sturges
	}
	if s.BinCount <= 0 {
		s.BinCount = DefaultBinCount
	}
	if !(s.BinWidth > 0) {
		s.BinWidth = 0
	}

	return s
}

// Option configures Settings.
type Option = options.Option[*Settings]

// NewSettings builds Settings from DefaultSettings and opts.
func NewSettings(opts ...Option) (Settings, error) {
	return options.Build(DefaultSettings(), opts...)
}

// WithMethod sets the bin-count rule.
func WithMethod(m BinMethod) Option {
	return options.New(func(s *Settings) error {
		if _, ok := binMethodNames[m]; !ok {
			return fmt.Errorf("unknown bin method: %d", int(m))
		}
		s.Method = m

		return nil
	})
}

// WithBinCount selects FixedCount with n bins.
func WithBinCount(n int) Option {
	return options.New(func(s *Settings) error {
		if n < MinBins {
			return fmt.Errorf("bin count must be at least %d, got %d", MinBins, n)
		}
		s.Method = FixedCount
		s.BinCount = n

		return nil
	})
}

// WithBinWidth selects FixedWidth with bins of width w.
func WithBinWidth(w float64) Option {
	return options.New(func(s *Settings) error {
		if !(w > 0) {
			return fmt.Errorf("bin width must be positive, got %v", w)
		}
		s.Method = FixedWidth
		s.BinWidth = w

		return nil
	})
}
