package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantor-lang/refa/automaton"
)

func TestCreateValidatesNames(t *testing.T) {
	_, err := automaton.Create([]string{"A", "b-c"}, "A", nil, nil)
	require.Error(t, err)
}

func TestCreateValidatesUnknownReferences(t *testing.T) {
	_, err := automaton.Create([]string{"A"}, "B", nil, nil)
	require.Error(t, err)

	_, err = automaton.Create([]string{"A"}, "A", []string{"B"}, nil)
	require.Error(t, err)

	_, err = automaton.Create([]string{"A"}, "A", nil, []automaton.Edge{{From: "A", To: "B", Letter: automaton.Char('a')}})
	require.Error(t, err)
}

func TestStringDump(t *testing.T) {
	fa := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		[]string{"B"},
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Char('a')}},
	)

	want := "States: A, B\nStart State: A\nAccepting States: B\nEdges:\n\tFrom A via a to B"
	assert.Equal(t, want, fa.String())
}

func TestStringDumpNoAcceptingOrEdges(t *testing.T) {
	fa := automaton.MustCreate([]string{"A"}, "A", nil, nil)

	want := "States: A\nStart State: A\nAccepting States: NONE\nEdges:"
	assert.Equal(t, want, fa.String())
}

func TestHasLambdaAndIsDeterministic(t *testing.T) {
	det := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		[]string{"B"},
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Char('a')}},
	)
	assert.False(t, det.HasLambda())
	assert.True(t, det.IsDeterministic())

	withLambda := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		[]string{"B"},
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Lambda}},
	)
	assert.True(t, withLambda.HasLambda())
	assert.False(t, withLambda.IsDeterministic())

	nondet := automaton.MustCreate(
		[]string{"A", "B", "C"},
		"A",
		nil,
		[]automaton.Edge{
			{From: "A", To: "B", Letter: automaton.Char('a')},
			{From: "A", To: "C", Letter: automaton.Char('a')},
		},
	)
	assert.False(t, nondet.IsDeterministic())
}

func TestParallelEdgesAreIdempotent(t *testing.T) {
	fa := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		nil,
		[]automaton.Edge{
			{From: "A", To: "B", Letter: automaton.Char('a')},
			{From: "A", To: "B", Letter: automaton.Char('a')},
		},
	)
	assert.Len(t, fa.Edges(), 1)
}

func TestAlphabetIgnoresLambda(t *testing.T) {
	fa := automaton.MustCreate(
		[]string{"A", "B", "C"},
		"A",
		nil,
		[]automaton.Edge{
			{From: "A", To: "B", Letter: automaton.Char('a')},
			{From: "B", To: "C", Letter: automaton.Lambda},
		},
	)
	require.Len(t, fa.Alphabet(), 1)
	assert.Equal(t, byte('a'), fa.Alphabet()[0].Byte())
}
