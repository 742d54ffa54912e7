package expr

import (
	"fmt"
	"strconv"

	"github.com/algebralab/algebralab/internal/algebra"
)

// MaxInputLength bounds the accepted expression size.
const MaxInputLength = 4096

// Parser is a recursive-descent parser over the token stream of one input.
//
//	expr    := term (('+'|'-') term)*
//	term    := unary (('*'|'/') unary | power)*      adjacent factors multiply
//	unary   := ('-'|'+') unary | power
//	power   := postfix ('^' unary)?                  right associative
//	postfix := primary ('²'|'³')*
//	primary := number | ident | func '(' expr ')' | '(' expr ')' | '√' postfix
type Parser struct {
	input string
	lexer *Lexer
	cur   Token
	peek  Token
}

// Parse parses input into a tree.
func Parse(input string) (Node, error) {
	if len(input) > MaxInputLength {
		return nil, algebra.NewParseError(input[:32]+"...", "", "input too long")
	}
	p := &Parser{input: input, lexer: NewLexer(input)}
	p.next()
	p.next()

	if p.cur.Type == TokenEOF {
		return nil, algebra.NewParseError(input, "", "empty expression")
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch p.cur.Type {
	case TokenEOF:
		return n, nil
	case TokenIllegal:
		return nil, p.errorf("illegal character %q", p.cur.Value)
	default:
		return nil, p.errorf("unexpected %q", p.cur.Value)
	}
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(input string) Node {
	n, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return n
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) errorf(reason string, args ...interface{}) error {
	if len(args) > 0 {
		reason = fmt.Sprintf(reason, args...)
	}
	return &algebra.ParseError{Input: p.input, Position: p.cur.Position, Reason: reason}
}

func (p *Parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == TokenPlus || p.cur.Type == TokenMinus {
		op := byte('+')
		if p.cur.Type == TokenMinus {
			op = '-'
		}
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary{Op: op, L: left, R: right}
	}
	return left, nil
}

func (p *Parser) parseTerm() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.cur.Type == TokenStar || p.cur.Type == TokenSlash:
			op := byte('*')
			if p.cur.Type == TokenSlash {
				op = '/'
			}
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: op, L: left, R: right}
		case startsPrimary(p.cur.Type):
			right, err := p.parsePower()
			if err != nil {
				return nil, err
			}
			left = Binary{Op: '*', L: left, R: right}
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseUnary() (Node, error) {
	switch p.cur.Type {
	case TokenMinus:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg{X: x}, nil
	case TokenPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (Node, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != TokenCaret {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return Binary{Op: '^', L: base, R: exp}, nil
}

func (p *Parser) parsePostfix() (Node, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case TokenSquare:
			n = Binary{Op: '^', L: n, R: Num{Value: 2}}
		case TokenCube:
			n = Binary{Op: '^', L: n, R: Num{Value: 3}}
		default:
			return n, nil
		}
		p.next()
	}
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.cur
	switch tok.Type {
	case TokenNumber:
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, p.errorf("invalid number %q", tok.Value)
		}
		p.next()
		return Num{Value: v}, nil

	case TokenIdent:
		p.next()
		if Functions[tok.Value] && p.cur.Type == TokenLeftParen {
			p.next()
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if err := p.expectClose(); err != nil {
				return nil, err
			}
			return Call{Func: tok.Value, Arg: arg}, nil
		}
		return Var{Name: tok.Value}, nil

	case TokenLeftParen:
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectClose(); err != nil {
			return nil, err
		}
		return n, nil

	case TokenRoot:
		p.next()
		arg, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		return Call{Func: "sqrt", Arg: arg}, nil

	case TokenEOF:
		return nil, p.errorf("unexpected end of expression")
	case TokenIllegal:
		return nil, p.errorf("illegal character %q", tok.Value)
	default:
		return nil, p.errorf("unexpected %q", tok.Value)
	}
}

func (p *Parser) expectClose() error {
	switch p.cur.Type {
	case TokenRightParen:
		p.next()
		return nil
	case TokenEOF:
		return p.errorf("missing closing parenthesis")
	default:
		return p.errorf("expected ')', got %q", p.cur.Value)
	}
}

func startsPrimary(tt TokenType) bool {
	switch tt {
	case TokenNumber, TokenIdent, TokenLeftParen, TokenRoot:
		return true
	}
	return false
}
