// Package equiv implements structural and language comparison between
// automata: isomorphism (same graph shape up to renaming) and language
// equivalence (same accepted language, regardless of shape).
package equiv

import (
	"github.com/cantor-lang/refa/automaton"
)

// IsIsomorphic compares the parts of dfa1 and dfa2 reachable from their
// start states: it walks both in lock-step BFS from their start states,
// requiring agreement at every step on acceptance, on whether a state has
// already been visited, and on the sorted set of outgoing letters, queuing
// the corresponding destinations in the same order. States unreachable from
// the start are not inspected, and when both states of a pair have already
// been visited the pair is accepted without checking that they were visited
// together. Both dfa1 and dfa2 must be deterministic.
func IsIsomorphic(dfa1, dfa2 *automaton.FA) (bool, error) {
	if !dfa1.IsDeterministic() || !dfa2.IsDeterministic() {
		return false, wrapf("isisomorphic", ErrNotDeterministic)
	}

	visited1 := make(map[string]struct{})
	visited2 := make(map[string]struct{})

	queue1 := []string{dfa1.Start()}
	queue2 := []string{dfa2.Start()}

	for len(queue1) > 0 {
		cur1, cur2 := queue1[0], queue2[0]
		queue1, queue2 = queue1[1:], queue2[1:]

		if dfa1.IsAccepting(cur1) != dfa2.IsAccepting(cur2) {
			return false, nil
		}

		_, isVisited1 := visited1[cur1]
		_, isVisited2 := visited2[cur2]
		if isVisited1 != isVisited2 {
			return false, nil
		}
		if isVisited1 {
			continue
		}
		visited1[cur1] = struct{}{}
		visited2[cur2] = struct{}{}

		// OutgoingLetters returns letters sorted by the same comparator for
		// both automata, so a direct element-wise comparison is enough.
		letters1 := dfa1.OutgoingLetters(cur1)
		letters2 := dfa2.OutgoingLetters(cur2)
		if len(letters1) != len(letters2) {
			return false, nil
		}
		for i := range letters1 {
			if letters1[i] != letters2[i] {
				return false, nil
			}
		}

		for _, l := range letters1 {
			queue1 = append(queue1, dfa1.TransitionOn(cur1, l)[0])
		}
		for _, l := range letters2 {
			queue2 = append(queue2, dfa2.TransitionOn(cur2, l)[0])
		}
	}

	return true, nil
}
