package poly

import (
	"strconv"
	"strings"

	"github.com/algebralab/algebralab/internal/algebra/complexnum"
)

// FormatPolynomial renders coefficients (highest degree first) as
// "x^2 + (1 + 2i)x + 3". Zero terms are skipped, unit coefficients are
// implied, complex values and negative non-leading values are parenthesised.
// An all-zero or empty vector renders as "0".
func FormatPolynomial(coeffs []complexnum.Number, precision int) string {
	var parts []string
	for i, c := range coeffs {
		degree := len(coeffs) - 1 - i
		val := c.Format(precision)
		if val == "0" {
			continue
		}

		var term string
		switch {
		case degree > 0 && val == "1":
		case degree > 0 && val == "-1" && len(parts) == 0:
			term = "-"
		case !c.IsReal() || (strings.HasPrefix(val, "-") && len(parts) > 0):
			term = "(" + val + ")"
		default:
			term = val
		}
		if degree > 0 {
			term += Variable
		}
		if degree > 1 {
			term += "^" + strconv.Itoa(degree)
		}
		parts = append(parts, term)
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, " + ")
}

// FormatQuotient renders the quotient of a division result.
func (r DivisionResult) FormatQuotient(precision int) string {
	return FormatPolynomial(r.Quotient(), precision)
}
