package regression

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatEquation(t *testing.T) {
	tests := []struct {
		name   string
		typ    Type
		coeffs []float64
		want   string
	}{
		{"linear", TypeLinear, []float64{1, 2}, "y = 2x + 1"},
		{"linear negative intercept", TypeLinear, []float64{-1, 2}, "y = 2x - 1"},
		{"linear negative slope", TypeLinear, []float64{1, -2}, "y = -2x + 1"},
		{"linear fractional", TypeLinear, []float64{0.25, 1.0 / 3}, "y = 0.3333x + 0.25"},
		{"linear wrong arity", TypeLinear, []float64{1, 2, 3}, ""},
		{"quadratic", TypePolynomial, []float64{3, -1, 0.5}, "y = 0.5x² - 1x + 3"},
		{"cubic", TypePolynomial, []float64{0, 0, 0, 2}, "y = 2x³ + 0x² + 0x + 0"},
		{"constant", TypePolynomial, []float64{4}, "y = 4"},
		{"empty polynomial", TypePolynomial, []float64{}, ""},
		{"loess", TypeLoess, []float64{1, 2}, ""},
		{"none", TypeNone, []float64{1, 2}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatEquation(tt.typ, tt.coeffs))
		})
	}
}

func TestFormatEquation_MultiDigitPower(t *testing.T) {
	coeffs := make([]float64, 11)
	for i := range coeffs {
		coeffs[i] = 1
	}

	got := FormatEquation(TypePolynomial, coeffs)
	require.True(t, strings.HasPrefix(got, "y = 1x¹⁰ + 1x⁹ + "), got)
	require.True(t, strings.HasSuffix(got, " + 1x + 1"), got)
}
