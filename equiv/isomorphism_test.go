package equiv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/equiv"
)

func TestIsIsomorphicUnderRenaming(t *testing.T) {
	dfa1 := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		[]string{"B"},
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Char('a')}},
	)
	dfa2 := automaton.MustCreate(
		[]string{"X", "Y"},
		"X",
		[]string{"Y"},
		[]automaton.Edge{{From: "X", To: "Y", Letter: automaton.Char('a')}},
	)

	ok, err := equiv.IsIsomorphic(dfa1, dfa2)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsIsomorphicDetectsDifferentAcceptance(t *testing.T) {
	dfa1 := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		[]string{"B"},
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Char('a')}},
	)
	dfa2 := automaton.MustCreate(
		[]string{"X", "Y"},
		"X",
		nil,
		[]automaton.Edge{{From: "X", To: "Y", Letter: automaton.Char('a')}},
	)

	ok, err := equiv.IsIsomorphic(dfa1, dfa2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsIsomorphicRejectsNonDeterministic(t *testing.T) {
	nondet := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		nil,
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Lambda}},
	)
	det := automaton.MustCreate([]string{"A"}, "A", nil, nil)

	_, err := equiv.IsIsomorphic(nondet, det)
	require.Error(t, err)
}
