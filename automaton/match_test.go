package automaton_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cantor-lang/refa/automaton"
)

// mod6DFA builds the 6-state DFA from spec.md S4: states 0..5, transition
// i -b-> (2i+b) mod 6, accepting {1,5} ("x is 1 or 5 mod 6").
func mod6DFA(t *testing.T) *automaton.FA {
	states := make([]string, 6)
	for i := range states {
		states[i] = strconv.Itoa(i)
	}

	var edges []automaton.Edge
	for i := 0; i < 6; i++ {
		for _, b := range []byte{'0', '1'} {
			d := (2*i + int(b-'0')) % 6
			edges = append(edges, automaton.Edge{From: strconv.Itoa(i), To: strconv.Itoa(d), Letter: automaton.Char(b)})
		}
	}

	fa, err := automaton.Create(states, "0", []string{"1", "5"}, edges)
	require.NoError(t, err)
	return fa
}

func TestMatchesMod6(t *testing.T) {
	fa := mod6DFA(t)

	for w := 0; w < 60; w++ {
		bin := strconv.FormatInt(int64(w), 2)
		for len(bin) < 8 {
			bin = "0" + bin
		}

		got, err := automaton.Matches(fa, bin)
		require.NoError(t, err)

		want := w%6 == 1 || w%6 == 5
		require.Equalf(t, want, got, "w=%d bin=%s", w, bin)
	}
}

func TestMatchesRequiresDeterministic(t *testing.T) {
	fa := automaton.MustCreate(
		[]string{"A", "B"},
		"A",
		nil,
		[]automaton.Edge{{From: "A", To: "B", Letter: automaton.Lambda}},
	)
	_, err := automaton.Matches(fa, "a")
	require.Error(t, err)
}
