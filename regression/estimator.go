package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Type selects the regression fit.
type Type int

const (
	// TypeNone disables regression.
	TypeNone Type = iota
	// TypeLinear is ordinary least squares: y = b + m*x
	TypeLinear
	// TypePolynomial is least squares on a Vandermonde basis: y = c0 + c1*x + ... + cd*x^d
	TypePolynomial
	// TypeLoess is locally weighted linear regression with tricube weights.
	TypeLoess
)

// typeNames maps Type to their string representations.
var typeNames = map[Type]string{
	TypeNone:       "none",
	TypeLinear:     "linear",
	TypePolynomial: "polynomial",
	TypeLoess:      "loess",
}

// String returns the string representation of the regression type.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// MarshalText encodes the type as its name.
func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a type name. Unknown names decode to TypeNone.
func (t *Type) UnmarshalText(text []byte) error {
	*t = TypeFromString(string(text))

	return nil
}

// typeFromString maps string names to Type.
var typeFromString = map[string]Type{
	"none":       TypeNone,
	"linear":     TypeLinear,
	"polynomial": TypePolynomial,
	"loess":      TypeLoess,
}

// TypeFromString returns the Type for a given name. Unknown names map to TypeNone.
func TypeFromString(name string) Type {
	if t, exists := typeFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return t
	}

	return TypeNone
}

// Estimator evaluates a fitted model from its coefficients.
type Estimator interface {
	// Estimate returns the fitted value at x.
	Estimate(x float64) float64
	// Type returns the regression type.
	Type() Type
	// Coefficients returns the model coefficients, constant term first.
	Coefficients() []float64
	// SetCoefficients replaces the model coefficients.
	SetCoefficients(coeffs []float64) error
}

// LinearEstimator implements y = b + m*x.
type LinearEstimator struct {
	intercept, slope float64
	coeffs           []float64 // Cached coefficient slice to avoid allocations
}

// NewLinearEstimator creates a linear estimator.
func NewLinearEstimator(intercept, slope float64) *LinearEstimator {
	return &LinearEstimator{
		intercept: intercept,
		slope:     slope,
		coeffs:    make([]float64, 2),
	}
}

// Estimate returns intercept + slope*x.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.intercept + l.slope*x
}

// Type returns TypeLinear.
func (l *LinearEstimator) Type() Type {
	return TypeLinear
}

// Coefficients returns [intercept, slope].
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.intercept
	l.coeffs[1] = l.slope

	return l.coeffs
}

// SetCoefficients expects exactly 2 coefficients: [intercept, slope].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("linear model expects exactly 2 coefficients, got %d", len(coeffs))
	}
	l.intercept = coeffs[0]
	l.slope = coeffs[1]

	return nil
}

// PolynomialEstimator implements y = c0 + c1*x + ... + cd*x^d.
type PolynomialEstimator struct {
	coeffs []float64
}

// NewPolynomialEstimator creates a polynomial estimator. Coefficients are copied.
func NewPolynomialEstimator(coeffs ...float64) *PolynomialEstimator {
	return &PolynomialEstimator{coeffs: slices.Clone(coeffs)}
}

// Estimate evaluates the polynomial at x.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	return Evaluate(p.coeffs, x)
}

// Type returns TypePolynomial.
func (p *PolynomialEstimator) Type() Type {
	return TypePolynomial
}

// Coefficients returns the coefficients, constant term first.
func (p *PolynomialEstimator) Coefficients() []float64 {
	return p.coeffs
}

// Degree returns the polynomial degree, or -1 when no coefficients are set.
func (p *PolynomialEstimator) Degree() int {
	return len(p.coeffs) - 1
}

// SetCoefficients expects at least one coefficient.
func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) == 0 {
		return fmt.Errorf("polynomial model expects at least 1 coefficient, got 0")
	}
	p.coeffs = slices.Clone(coeffs)

	return nil
}

// Evaluate evaluates the polynomial with coefficients ordered constant term first
// using Horner's method. It returns NaN for an empty coefficient list.
func Evaluate(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return math.NaN()
	}

	y := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		y = y*x + coeffs[i]
	}

	return y
}

// NewEstimator creates an estimator from a regression type and its coefficients.
//
// Parameters:
//   - t: TypeLinear (expects 2 coefficients) or TypePolynomial (expects at least 1)
//   - coeffs: The model coefficients, constant term first, as stored in Result.Coefficients
//
// Returns:
//   - Estimator: The created estimator instance
//   - error: Returns an error if the type has no coefficient form or coefficients are invalid
//
// Example:
//
//	res := regression.Compute(x, y, regression.DefaultSettings())
//	est, err := regression.NewEstimator(res.Type, res.Coefficients)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := est.Estimate(12.5)
func NewEstimator(t Type, coeffs []float64) (Estimator, error) {
	var est Estimator
	switch t {
	case TypeLinear:
		est = NewLinearEstimator(0, 0)
	case TypePolynomial:
		est = &PolynomialEstimator{}
	default:
		return nil, fmt.Errorf("regression type %s has no coefficient form. Supported types: %s, %s",
			t, TypeLinear, TypePolynomial)
	}

	if err := est.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return est, nil
}
