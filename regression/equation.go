package regression

import (
	"math"
	"strconv"
	"strings"
)

var superscripts = [...]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// FormatEquation renders coefficients, constant term first, as a display equation.
//
// Linear fits render as "y = 2x + 1"; polynomials list terms from the highest power
// down, for example "y = 0.5x² - 1x + 3". Coefficients use up to four significant
// digits. Other types and empty coefficient lists yield "".
func FormatEquation(t Type, coeffs []float64) string {
	switch t {
	case TypeLinear:
		if len(coeffs) != 2 {
			return ""
		}
	case TypePolynomial:
		if len(coeffs) == 0 {
			return ""
		}
	default:
		return ""
	}

	var sb strings.Builder
	sb.WriteString("y = ")
	for power := len(coeffs) - 1; power >= 0; power-- {
		c := coeffs[power]
		first := power == len(coeffs)-1
		switch {
		case first && math.Signbit(c) && !math.IsNaN(c):
			sb.WriteString("-")
		case !first && math.Signbit(c) && !math.IsNaN(c):
			sb.WriteString(" - ")
		case !first:
			sb.WriteString(" + ")
		}
		if !math.IsNaN(c) {
			c = math.Abs(c)
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', 4, 64))
		writePower(&sb, power)
	}

	return sb.String()
}

func writePower(sb *strings.Builder, power int) {
	if power == 0 {
		return
	}
	sb.WriteByte('x')
	if power == 1 {
		return
	}
	for _, d := range strconv.Itoa(power) {
		sb.WriteString(superscripts[d-'0'])
	}
}
