package regression

import (
	"fmt"

	"github.com/arloliu/chartstats/internal/options"
)

const (
	// DefaultDegree is the default polynomial degree.
	DefaultDegree = 2
	// DefaultLoessBandwidth is the default fraction of points used by each local fit.
	DefaultLoessBandwidth = 0.3
	// DefaultConfidenceLevel is the default two-sided level of the bands.
	DefaultConfidenceLevel = 0.95
)

// Settings controls Compute.
type Settings struct {
	// Type selects the fit. TypeNone disables regression.
	Type Type
	// Degree is the polynomial degree for TypePolynomial.
	Degree int
	// LoessBandwidth is the neighbourhood fraction for TypeLoess, in (0, 1].
	LoessBandwidth float64
	// ConfidenceLevel is the two-sided level of the linear bands, in (0, 1).
	ConfidenceLevel float64
}

// DefaultSettings returns a linear fit with 95% bands.
func DefaultSettings() Settings {
	return Settings{
		Type:            TypeLinear,
		Degree:          DefaultDegree,
		LoessBandwidth:  DefaultLoessBandwidth,
		ConfidenceLevel: DefaultConfidenceLevel,
	}
}

// Resolve returns a copy of s with unknown or invalid fields replaced by defaults.
func (s Settings) Resolve() Settings {
	if _, ok := typeNames[s.Type]; !ok {
		s.Type = TypeNone
	}
	if s.Degree < 1 {
		s.Degree = DefaultDegree
	}
	if !(s.LoessBandwidth > 0 && s.LoessBandwidth <= 1) {
		s.LoessBandwidth = DefaultLoessBandwidth
	}
	if !(s.ConfidenceLevel > 0 && s.ConfidenceLevel < 1) {
		s.ConfidenceLevel = DefaultConfidenceLevel
	}

	return s
}

// Option is a functional option for Settings.
type Option = options.Option[*Settings]

// NewSettings builds Settings from DefaultSettings and opts.
func NewSettings(opts ...Option) (Settings, error) {
	return options.Build(DefaultSettings(), opts...)
}

// WithType sets the regression type.
func WithType(t Type) Option {
	return options.New(func(s *Settings) error {
		if _, ok := typeNames[t]; !ok {
			return fmt.Errorf("unknown regression type: %d", int(t))
		}
		s.Type = t

		return nil
	})
}

// WithPolynomial selects a polynomial fit of the given degree.
func WithPolynomial(degree int) Option {
	return options.New(func(s *Settings) error {
		if degree < 1 {
			return fmt.Errorf("polynomial degree must be at least 1, got %d", degree)
		}
		s.Type = TypePolynomial
		s.Degree = degree

		return nil
	})
}

// WithLoess selects a LOESS fit with the given neighbourhood fraction.
func WithLoess(bandwidth float64) Option {
	return options.New(func(s *Settings) error {
		if !(bandwidth > 0 && bandwidth <= 1) {
			return fmt.Errorf("loess bandwidth must be in (0, 1], got %v", bandwidth)
		}
		s.Type = TypeLoess
		s.LoessBandwidth = bandwidth

		return nil
	})
}

// WithConfidenceLevel sets the two-sided band level.
func WithConfidenceLevel(level float64) Option {
	return options.New(func(s *Settings) error {
		if !(level > 0 && level < 1) {
			return fmt.Errorf("confidence level must be in (0, 1), got %v", level)
		}
		s.ConfidenceLevel = level

		return nil
	})
}
