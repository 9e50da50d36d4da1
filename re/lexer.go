package re

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token kinds, matched in order by lexerDef. Runs of ASCII spaces are elided.
const (
	tokenLParen  = "LParen"
	tokenRParen  = "RParen"
	tokenStar    = "Star"
	tokenPlus    = "Plus"
	tokenLambda  = "Lambda"
	tokenChar    = "Char"
	tokenIllegal = "Illegal"
)

// lexerDef tokenizes the concrete syntax: parentheses, the two postfix/infix
// operators, the literal lambda symbol, and single alphanumeric atoms.
var lexerDef = lexer.MustSimple([]lexer.SimpleRule{
	{Name: tokenLParen, Pattern: `\(`},
	{Name: tokenRParen, Pattern: `\)`},
	{Name: tokenStar, Pattern: `\*`},
	{Name: tokenPlus, Pattern: `\+`},
	{Name: tokenLambda, Pattern: `λ`},
	{Name: tokenChar, Pattern: `[A-Za-z0-9]`},
	{Name: "whitespace", Pattern: ` +`},
	{Name: tokenIllegal, Pattern: `.`},
})

// tokenize runs lexerDef over expr and drops space tokens, returning
// the remaining tokens including the trailing EOF.
func tokenize(expr string) ([]lexer.Token, error) {
	lx, err := lexerDef.Lex("", strings.NewReader(expr))
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lx)
	if err != nil {
		return nil, err
	}
	out := tokens[:0]
	for _, tok := range tokens {
		if tok.Type == lexerDef.Symbols()["whitespace"] {
			continue
		}
		out = append(out, tok)
	}
	return out, nil
}
