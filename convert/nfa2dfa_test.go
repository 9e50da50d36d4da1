package convert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/convert"
	"github.com/cantor-lang/refa/equiv"
)

func TestNfa2DfaIsIsomorphicToExpected(t *testing.T) {
	input := automaton.MustCreate(
		[]string{"A", "B", "C", "D", "E"},
		"A",
		[]string{"B", "D"},
		[]automaton.Edge{
			{From: "A", To: "B", Letter: automaton.Char('a')},
			{From: "A", To: "E", Letter: automaton.Char('a')},
			{From: "A", To: "E", Letter: automaton.Char('b')},
			{From: "B", To: "C", Letter: automaton.Char('a')},
			{From: "B", To: "C", Letter: automaton.Char('b')},
			{From: "B", To: "E", Letter: automaton.Char('b')},
			{From: "C", To: "B", Letter: automaton.Char('b')},
			{From: "C", To: "D", Letter: automaton.Char('b')},
			{From: "E", To: "C", Letter: automaton.Char('a')},
			{From: "E", To: "D", Letter: automaton.Char('b')},
		},
	)

	expected := automaton.MustCreate(
		[]string{"A", "B", "C", "D", "E", "BE", "CE", "BD", "CDE"},
		"A",
		[]string{"B", "D", "BE", "BD", "CDE"},
		[]automaton.Edge{
			{From: "A", To: "BE", Letter: automaton.Char('a')},
			{From: "A", To: "E", Letter: automaton.Char('b')},
			{From: "B", To: "C", Letter: automaton.Char('a')},
			{From: "B", To: "CE", Letter: automaton.Char('b')},
			{From: "C", To: "BD", Letter: automaton.Char('b')},
			{From: "E", To: "C", Letter: automaton.Char('a')},
			{From: "E", To: "D", Letter: automaton.Char('b')},
			{From: "BE", To: "C", Letter: automaton.Char('a')},
			{From: "BE", To: "CDE", Letter: automaton.Char('b')},
			{From: "CE", To: "C", Letter: automaton.Char('a')},
			{From: "CE", To: "BD", Letter: automaton.Char('b')},
			{From: "BD", To: "C", Letter: automaton.Char('a')},
			{From: "BD", To: "CE", Letter: automaton.Char('b')},
			{From: "CDE", To: "C", Letter: automaton.Char('a')},
			{From: "CDE", To: "BD", Letter: automaton.Char('b')},
		},
	)

	observed, err := convert.Nfa2Dfa(input)
	require.NoError(t, err)
	require.True(t, observed.IsDeterministic())

	ok, err := equiv.IsIsomorphic(expected, observed)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestNfa2DfaShortCircuitsWhenAlreadyDeterministic(t *testing.T) {
	fa := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		[]string{"B"},
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Char('a')}},
	)
	out, err := convert.Nfa2Dfa(fa)
	require.NoError(t, err)
	require.Same(t, fa, out)
}

func TestNfa2DfaRejectsLambda(t *testing.T) {
	fa := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		nil,
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Lambda}},
	)
	_, err := convert.Nfa2Dfa(fa)
	require.Error(t, err)
}
