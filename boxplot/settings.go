package boxplot

import (
	"fmt"
	"strings"

	"github.com/arloliu/chartstats/internal/options"
)

// WhiskerMethod selects how whisker ends and outliers are derived.
type WhiskerMethod int

const (
	// WhiskerTukey places whiskers at the most extreme samples inside the
	// Q1 - 1.5*IQR and Q3 + 1.5*IQR fences.
	WhiskerTukey WhiskerMethod = iota
	// WhiskerMinMax places whiskers at the sample minimum and maximum.
	WhiskerMinMax
	// WhiskerPercentile places whiskers at the p and 1-p quantiles.
	WhiskerPercentile
	// WhiskerStdDev places whiskers at the most extreme samples within mean ± k*stddev.
	WhiskerStdDev
)

const (
	// DefaultWhiskerPercentile is the default tail probability for WhiskerPercentile.
	DefaultWhiskerPercentile = 0.05
	// DefaultWhiskerStdDev is the default multiplier for WhiskerStdDev.
	DefaultWhiskerStdDev = 2.0
	// TukeyFactor scales the IQR to obtain Tukey fences.
	TukeyFactor = 1.5
)

var whiskerMethodNames = map[WhiskerMethod]string{
	WhiskerTukey:      "tukey",
	WhiskerMinMax:     "minmax",
	WhiskerPercentile: "percentile",
	WhiskerStdDev:     "stddev",
}

var whiskerMethodFromString = map[string]WhiskerMethod{
	"tukey":      WhiskerTukey,
	"minmax":     WhiskerMinMax,
	"percentile": WhiskerPercentile,
	"stddev":     WhiskerStdDev,
}

// String returns the literal name of the method.
func (m WhiskerMethod) String() string {
	if name, ok := whiskerMethodNames[m]; ok {
		return name
	}

	return "unknown"
}

// WhiskerMethodFromString maps a literal name to a WhiskerMethod.
// Unknown names fall back to WhiskerTukey.
func WhiskerMethodFromString(name string) WhiskerMethod {
	if m, ok := whiskerMethodFromString[strings.ToLower(name)]; ok {
		return m
	}

	return WhiskerTukey
}

// Settings controls Compute.
type Settings struct {
	// WhiskerMethod selects the whisker policy.
	WhiskerMethod WhiskerMethod
	// WhiskerPercentile is the tail probability used by WhiskerPercentile.
	WhiskerPercentile float64
	// WhiskerStdDev is the standard deviation multiplier used by WhiskerStdDev.
	WhiskerStdDev float64
}

// DefaultSettings returns Tukey whiskers with the default percentile and stddev parameters.
func DefaultSettings() Settings {
	return Settings{
		WhiskerMethod:     WhiskerTukey,
		WhiskerPercentile: DefaultWhiskerPercentile,
		WhiskerStdDev:     DefaultWhiskerStdDev,
	}
}

// Resolve returns a copy of s with unknown or out-of-range fields replaced by defaults.
func (s Settings) Resolve() Settings {
	if _, ok := whiskerMethodNames[s.WhiskerMethod]; !ok {
		s.WhiskerMethod = WhiskerTukey
	}
	if !(s.WhiskerPercentile > 0 && s.WhiskerPercentile < 0.5) {
		s.WhiskerPercentile = DefaultWhiskerPercentile
	}
	if !(s.WhiskerStdDev > 0) {
		s.WhiskerStdDev = DefaultWhiskerStdDev
	}

	return s
}

// Option configures Settings.
type Option = options.Option[*Settings]

// NewSettings builds Settings from DefaultSettings and opts.
func NewSettings(opts ...Option) (Settings, error) {
	return options.Build(DefaultSettings(), opts...)
}

// WithWhiskerMethod sets the whisker policy.
func WithWhiskerMethod(m WhiskerMethod) Option {
	return options.New(func(s *Settings) error {
		if _, ok := whiskerMethodNames[m]; !ok {
			return fmt.Errorf("unknown whisker method: %d", int(m))
		}
		s.WhiskerMethod = m

		return nil
	})
}

// WithWhiskerPercentile selects WhiskerPercentile with tail probability p in (0, 0.5).
func WithWhiskerPercentile(p float64) Option {
	return options.New(func(s *Settings) error {
		if !(p > 0 && p < 0.5) {
			return fmt.Errorf("whisker percentile must be in (0, 0.5), got %v", p)
		}
		s.WhiskerMethod = WhiskerPercentile
		s.WhiskerPercentile = p

		return nil
	})
}

// WithWhiskerStdDev selects WhiskerStdDev with multiplier k > 0.
func WithWhiskerStdDev(k float64) Option {
	return options.New(func(s *Settings) error {
		if !(k > 0) {
			return fmt.Errorf("whisker stddev multiplier must be positive, got %v", k)
		}
		s.WhiskerMethod = WhiskerStdDev
		s.WhiskerStdDev = k

		return nil
	})
}
