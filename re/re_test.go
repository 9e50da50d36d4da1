package re_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cantor-lang/refa/re"
)

func TestSmartConstructorsAbsorbEmpty(t *testing.T) {
	a := re.Char('a')
	assert.Same(t, a, re.Concat(re.Empty(), a))
	assert.Same(t, a, re.Concat(a, re.Empty()))
}

func TestStringRendersPrecedence(t *testing.T) {
	a, b, c := re.Char('a'), re.Char('b'), re.Char('c')

	assert.Equal(t, "a+b", re.Plus(a, b).String())
	assert.Equal(t, "ab", re.Concat(a, b).String())
	assert.Equal(t, "(a+b)c", re.Concat(re.Plus(a, b), c).String())
	assert.Equal(t, "a*", re.Star(a).String())
	assert.Equal(t, "(a+b)*", re.Star(re.Plus(a, b)).String())
	assert.Equal(t, "(ab)*", re.Star(re.Concat(a, b)).String())
	assert.Equal(t, "λ", re.Empty().String())
}

func TestToLatexEscapesStar(t *testing.T) {
	got := re.Star(re.Char('a')).ToLatex()
	assert.Contains(t, got, "a^*")
	assert.Contains(t, got, "\\documentclass{article}")
}

func TestToLatexEscapesLambda(t *testing.T) {
	got := re.Empty().ToLatex()
	assert.Contains(t, got, "\\lambda")
}
