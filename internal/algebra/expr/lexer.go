package expr

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal

	TokenNumber // 12, 1.5, .5
	TokenIdent  // x, pi, sqrt, π

	TokenPlus   // +
	TokenMinus  // - or U+2212
	TokenStar   // * × ·
	TokenSlash  // / ÷
	TokenCaret  // ^
	TokenEquals // =
	TokenComma  // ,

	TokenLeftParen  // (
	TokenRightParen // )

	TokenRoot   // √
	TokenSquare // ²
	TokenCube   // ³
)

var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIllegal:    "ILLEGAL",
	TokenNumber:     "NUMBER",
	TokenIdent:      "IDENT",
	TokenPlus:       "PLUS",
	TokenMinus:      "MINUS",
	TokenStar:       "STAR",
	TokenSlash:      "SLASH",
	TokenCaret:      "CARET",
	TokenEquals:     "EQUALS",
	TokenComma:      "COMMA",
	TokenLeftParen:  "LEFT_PAREN",
	TokenRightParen: "RIGHT_PAREN",
	TokenRoot:       "ROOT",
	TokenSquare:     "SQUARE",
	TokenCube:       "CUBE",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its byte offset in the input
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// Lexer splits an expression into tokens. It works on runes so that the
// symbols printed by textbooks (π, √, ², ×, ÷, −) are accepted as typed.
type Lexer struct {
	input    string
	position int  // offset of ch
	readPos  int  // offset after ch
	ch       rune // 0 at end of input
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position
	var tt TokenType

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Position: pos}
	case '+':
		tt = TokenPlus
	case '-', '−':
		tt = TokenMinus
	case '*', '×', '·':
		tt = TokenStar
	case '/', '÷':
		tt = TokenSlash
	case '^':
		tt = TokenCaret
	case '=':
		tt = TokenEquals
	case ',':
		tt = TokenComma
	case '(':
		tt = TokenLeftParen
	case ')':
		tt = TokenRightParen
	case '√':
		tt = TokenRoot
	case '²':
		tt = TokenSquare
	case '³':
		tt = TokenCube
	default:
		switch {
		case isDigit(l.ch) || (l.ch == '.' && isDigit(l.peekChar())):
			return Token{Type: TokenNumber, Value: l.readNumber(), Position: pos}
		case isLetter(l.ch):
			return Token{Type: TokenIdent, Value: l.readIdentifier(), Position: pos}
		default:
			tt = TokenIllegal
		}
	}

	tok := Token{Type: tt, Value: string(l.ch), Position: pos}
	l.readChar()
	return tok
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		switch tok.Type {
		case TokenEOF:
			return tokens, nil
		case TokenIllegal:
			return tokens, fmt.Errorf("illegal character %q at position %d", tok.Value, tok.Position)
		}
	}
}

func (l *Lexer) readChar() {
	l.position = l.readPos
	if l.readPos >= len(l.input) {
		l.ch = 0
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.readPos += w
}

func (l *Lexer) peekChar() rune {
	if l.readPos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPos:])
	return r
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	// 1e-3, 2.5E2; "2e" and "2ex" stay a product with the constant e
	if (l.ch == 'e' || l.ch == 'E') && l.exponentFollows() {
		l.readChar()
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return l.input[start:l.position]
}

// exponentFollows reports whether the e at the current position starts an
// exponent: a digit follows, optionally after one sign.
func (l *Lexer) exponentFollows() bool {
	i := l.readPos
	if i < len(l.input) && (l.input[i] == '+' || l.input[i] == '-') {
		i++
	}
	return i < len(l.input) && isDigit(rune(l.input[i]))
}

func (l *Lexer) skipWhitespace() {
	for unicode.IsSpace(l.ch) {
		l.readChar()
	}
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
