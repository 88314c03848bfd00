package logic

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenType defines the kinds of token produced by the lexer.
type TokenType int

const (
	TokenIdent  TokenType = iota // symbol name
	TokenNot                     // ¬ ! ~
	TokenAnd                     // ∧ & &&
	TokenOr                      // ∨ | ||
	TokenImplies                 // => -> →
	TokenIff                     // <=> ↔ ⇔
	TokenLParen                  // '('
	TokenRParen                  // ')'
	TokenEOF                     // end of input
)

func (t TokenType) String() string {
	switch t {
	case TokenIdent:
		return "identifier"
	case TokenNot:
		return "'¬'"
	case TokenAnd:
		return "'∧'"
	case TokenOr:
		return "'∨'"
	case TokenImplies:
		return "'=>'"
	case TokenIff:
		return "'<=>'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	case TokenEOF:
		return "end of input"
	default:
		return "?"
	}
}

// Token is a single lexical token with its byte offset in the input.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// operators, longest spelling first so "<=>" wins over "=>" and "&&" over "&"
var operators = []struct {
	text string
	typ  TokenType
}{
	{"<=>", TokenIff},
	{"=>", TokenImplies},
	{"->", TokenImplies},
	{"&&", TokenAnd},
	{"||", TokenOr},
	{"↔", TokenIff},
	{"⇔", TokenIff},
	{"→", TokenImplies},
	{"∧", TokenAnd},
	{"∨", TokenOr},
	{"¬", TokenNot},
	{"&", TokenAnd},
	{"|", TokenOr},
	{"!", TokenNot},
	{"~", TokenNot},
	{"(", TokenLParen},
	{")", TokenRParen},
}

// Lexer scans a formula and produces tokens.
type Lexer struct {
	input    string
	position int
	tokens   []Token
}

// NewLexer returns a lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		tokens: make([]Token, 0),
	}
}

// Tokenize processes the entire input. The final token is always TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		switch {
		case unicode.IsSpace(r):
			l.position += size

		case isIdentStart(r):
			l.lexIdent()

		default:
			if !l.lexOperator() {
				return nil, &ParseError{Pos: l.position, Msg: "unexpected character " + string(r)}
			}
		}
	}

	l.tokens = append(l.tokens, Token{Type: TokenEOF, Position: l.position})
	return l.tokens, nil
}

func (l *Lexer) lexIdent() {
	start := l.position
	for l.position < len(l.input) {
		r, size := utf8.DecodeRuneInString(l.input[l.position:])
		if !isIdentStart(r) && !unicode.IsDigit(r) {
			break
		}
		l.position += size
	}
	l.tokens = append(l.tokens, Token{Type: TokenIdent, Value: l.input[start:l.position], Position: start})
}

func (l *Lexer) lexOperator() bool {
	rest := l.input[l.position:]
	for _, op := range operators {
		if strings.HasPrefix(rest, op.text) {
			l.tokens = append(l.tokens, Token{Type: op.typ, Value: op.text, Position: l.position})
			l.position += len(op.text)
			return true
		}
	}
	return false
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
