package expr

import (
	"strings"

	"github.com/algebralab/algebralab/internal/algebra/complexnum"
)

const (
	precSum   = 1
	precProd  = 2
	precNeg   = 3
	precPow   = 4
	precAtom  = 5
	numDigits = 10
)

// String prints n with the minimal parentheses needed to read it back:
// "d / (v * i)", "C * 9 / 5 + 32", "(a + b)^2".
func String(n Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func precedence(n Node) int {
	switch v := n.(type) {
	case Num:
		if v.Value < 0 {
			return precNeg
		}
	case Neg:
		return precNeg
	case Binary:
		switch v.Op {
		case '+', '-':
			return precSum
		case '*', '/':
			return precProd
		case '^':
			return precPow
		}
	}
	return precAtom
}

func write(sb *strings.Builder, n Node) {
	switch v := n.(type) {
	case Num:
		sb.WriteString(complexnum.FormatReal(v.Value, numDigits))
	case Var:
		sb.WriteString(v.Name)
	case Neg:
		sb.WriteByte('-')
		writeOperand(sb, v.X, precedence(v.X) < precNeg)
	case Call:
		sb.WriteString(v.Func)
		sb.WriteByte('(')
		write(sb, v.Arg)
		sb.WriteByte(')')
	case Binary:
		p := precedence(v)
		lp, rp := precedence(v.L), precedence(v.R)
		if v.Op == '^' {
			writeOperand(sb, v.L, lp <= precPow)
			sb.WriteByte('^')
			writeOperand(sb, v.R, rp < precPow)
			return
		}
		writeOperand(sb, v.L, lp < p)
		sb.WriteByte(' ')
		sb.WriteByte(v.Op)
		sb.WriteByte(' ')
		needR := rp < p || (rp == p && (v.Op == '-' || v.Op == '/')) || rp == precNeg
		writeOperand(sb, v.R, needR)
	}
}

func writeOperand(sb *strings.Builder, n Node, parens bool) {
	if parens {
		sb.WriteByte('(')
	}
	write(sb, n)
	if parens {
		sb.WriteByte(')')
	}
}
