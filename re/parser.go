package re

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// parser is a hand-rolled recursive-descent parser over the token stream
// produced by tokenize. Grammar, tightest-binding rule first:
//
//	Plus   = Concat ('+' Concat)*
//	Concat = Star+
//	Star   = Atom '*'*
//	Atom   = Char | Lambda | '(' Plus ')'
//
// Concat is a sequence of one or more Star productions rather than a binary
// rule so that "abc" parses as a single left-associated Concat chain without
// needing lookahead beyond one token.
type parser struct {
	tokens []lexer.Token
	pos    int
}

// FromExpressionString parses expr under the concrete syntax and returns
// its RE tree. expr must consist of alphanumeric atoms, the literal lambda
// symbol, '*', '+', '(' and ')', and ASCII spaces (ignored); other
// whitespace characters are rejected.
func FromExpressionString(expr string) (*RE, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	result, err := p.parsePlus()
	if err != nil {
		return nil, err
	}
	if !p.at(lexer.EOF) {
		return nil, &ParseError{Pos: p.peek().Pos, Got: p.peek().Value, Expected: "end of expression"}
	}
	return result, nil
}

func (p *parser) peek() lexer.Token { return p.tokens[p.pos] }

func (p *parser) at(tokenType lexer.TokenType) bool { return p.peek().Type == tokenType }

func (p *parser) atName(name string) bool { return p.peek().Type == lexerDef.Symbols()[name] }

func (p *parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *parser) parsePlus() (*RE, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.atName(tokenPlus) {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = Plus(left, right)
	}
	return left, nil
}

func (p *parser) parseConcat() (*RE, error) {
	left, err := p.parseStar()
	if err != nil {
		return nil, err
	}
	for p.startsAtom() {
		right, err := p.parseStar()
		if err != nil {
			return nil, err
		}
		left = Concat(left, right)
	}
	return left, nil
}

func (p *parser) parseStar() (*RE, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.atName(tokenStar) {
		p.advance()
		atom = Star(atom)
	}
	return atom, nil
}

func (p *parser) startsAtom() bool {
	return p.atName(tokenChar) || p.atName(tokenLambda) || p.atName(tokenLParen)
}

func (p *parser) parseAtom() (*RE, error) {
	switch {
	case p.atName(tokenChar):
		tok := p.advance()
		return Char(tok.Value[0]), nil
	case p.atName(tokenLambda):
		p.advance()
		return Empty(), nil
	case p.atName(tokenLParen):
		p.advance()
		inner, err := p.parsePlus()
		if err != nil {
			return nil, err
		}
		if !p.atName(tokenRParen) {
			return nil, &ParseError{Pos: p.peek().Pos, Got: p.peek().Value, Expected: "')'"}
		}
		p.advance()
		return inner, nil
	default:
		tok := p.peek()
		return nil, &ParseError{Pos: tok.Pos, Got: tok.Value, Expected: "an atom"}
	}
}
