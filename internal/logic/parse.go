package logic

// Parse reads a formula and builds the corresponding sentence.
//
// Grammar, loosest binding first:
//
//	bicond  ::= implies { ('<=>' | '↔' | '⇔') implies }
//	implies ::= or [ ('=>' | '->' | '→') implies ]
//	or      ::= and { ('∨' | '|' | '||') and }
//	and     ::= not { ('∧' | '&' | '&&') not }
//	not     ::= ('¬' | '!' | '~') not | atom
//	atom    ::= ident | '(' bicond ')'
//
// A chain of the same connective at one level becomes a single n-ary And
// or Or; parenthesized groups stay nested. Implication is right associative
// and biconditional left associative.
func Parse(input string) (Sentence, error) {
	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		return nil, err
	}
	p := NewParser(tokens)
	s, err := p.parseBicond()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, &ParseError{Pos: tok.Position, Msg: "unexpected " + tok.Type.String()}
	}
	return s, nil
}

// MustParse is like Parse but panics on error.
func MustParse(input string) Sentence {
	s, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return s
}

// Parser consumes tokens produced by the lexer and builds sentences.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a parser over tokens, which must end with TokenEOF.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.current]
	if tok.Type != TokenEOF {
		p.current++
	}
	return tok
}

func (p *Parser) accept(t TokenType) bool {
	if p.peek().Type == t {
		p.next()
		return true
	}
	return false
}

func (p *Parser) parseBicond() (Sentence, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.accept(TokenIff) {
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = &Biconditional{Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseImplies() (Sentence, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.accept(TokenImplies) {
		return left, nil
	}
	right, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return &Implication{Antecedent: left, Consequent: right}, nil
}

func (p *Parser) parseOr() (Sentence, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenOr {
		return first, nil
	}
	or := &Or{Disjuncts: []Sentence{first}}
	for p.accept(TokenOr) {
		d, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		or.Disjuncts = append(or.Disjuncts, d)
	}
	return or, nil
}

func (p *Parser) parseAnd() (Sentence, error) {
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.peek().Type != TokenAnd {
		return first, nil
	}
	and := &And{Conjuncts: []Sentence{first}}
	for p.accept(TokenAnd) {
		c, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		and.Conjuncts = append(and.Conjuncts, c)
	}
	return and, nil
}

func (p *Parser) parseNot() (Sentence, error) {
	if p.accept(TokenNot) {
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &Not{Operand: operand}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Sentence, error) {
	tok := p.next()
	switch tok.Type {
	case TokenIdent:
		return NewSymbol(tok.Value), nil
	case TokenLParen:
		inner, err := p.parseBicond()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.Type != TokenRParen {
			return nil, &ParseError{Pos: closing.Position, Msg: "expected ')', found " + closing.Type.String()}
		}
		return inner, nil
	default:
		return nil, &ParseError{Pos: tok.Position, Msg: "expected symbol or '(', found " + tok.Type.String()}
	}
}
