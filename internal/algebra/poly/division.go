package poly

import (
	"math"

	"github.com/algebralab/algebralab/internal/algebra"
	"github.com/algebralab/algebralab/internal/algebra/complexnum"
)

// ExactTolerance bounds both parts of a remainder that counts as zero.
const ExactTolerance = 1e-10

// DivisionResult is the synthetic division table for dividing Coefficients
// by (x - Root).
//
//	QuotientAndRemainder[0] = Coefficients[0]
//	Multipliers[i]          = QuotientAndRemainder[i-1] * Root   (i ≥ 1)
//	QuotientAndRemainder[i] = Coefficients[i] + Multipliers[i]
//
// Multipliers[0] is a zero placeholder.
type DivisionResult struct {
	Coefficients         []complexnum.Number
	Multipliers          []complexnum.Number
	QuotientAndRemainder []complexnum.Number
	Root                 complexnum.Number
}

// SyntheticDivide divides the polynomial with the given coefficients (highest
// degree first) by (x - root). The input slice is not modified.
func SyntheticDivide(coeffs []complexnum.Number, root complexnum.Number) (DivisionResult, error) {
	n := len(coeffs)
	if n == 0 {
		return DivisionResult{}, algebra.ErrEmptyPolynomial
	}

	res := DivisionResult{
		Coefficients:         append([]complexnum.Number(nil), coeffs...),
		Multipliers:          make([]complexnum.Number, n),
		QuotientAndRemainder: make([]complexnum.Number, n),
		Root:                 root,
	}
	res.QuotientAndRemainder[0] = coeffs[0]
	for i := 1; i < n; i++ {
		res.Multipliers[i] = res.QuotientAndRemainder[i-1].Mul(root)
		res.QuotientAndRemainder[i] = coeffs[i].Add(res.Multipliers[i])
	}
	return res, nil
}

// Quotient returns the quotient coefficients (all but the last entry).
func (r DivisionResult) Quotient() []complexnum.Number {
	if len(r.QuotientAndRemainder) == 0 {
		return nil
	}
	return r.QuotientAndRemainder[:len(r.QuotientAndRemainder)-1]
}

// Remainder returns the last entry, which equals P(Root).
func (r DivisionResult) Remainder() complexnum.Number {
	if len(r.QuotientAndRemainder) == 0 {
		return complexnum.Zero
	}
	return r.QuotientAndRemainder[len(r.QuotientAndRemainder)-1]
}

// IsExact reports whether Root is a root of the dividend.
func (r DivisionResult) IsExact() bool {
	rem := r.Remainder()
	return math.Abs(rem.Re) <= ExactTolerance && math.Abs(rem.Im) <= ExactTolerance
}

// Rows returns the three table rows as formatted strings. The first
// multiplier cell is empty.
func (r DivisionResult) Rows(precision int) (coefficients, multipliers, results []string) {
	for i := range r.Coefficients {
		coefficients = append(coefficients, r.Coefficients[i].Format(precision))
		if i == 0 {
			multipliers = append(multipliers, "")
		} else {
			multipliers = append(multipliers, r.Multipliers[i].Format(precision))
		}
		results = append(results, r.QuotientAndRemainder[i].Format(precision))
	}
	return coefficients, multipliers, results
}

// Evaluate returns P(at) by Horner's scheme.
func Evaluate(coeffs []complexnum.Number, at complexnum.Number) complexnum.Number {
	acc := complexnum.Zero
	for _, c := range coeffs {
		acc = acc.Mul(at).Add(c)
	}
	return acc
}
