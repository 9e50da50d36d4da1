package convert

import (
	"sort"
	"strings"

	"github.com/cantor-lang/refa/automaton"
)

// Nfa2Dfa runs subset construction starting from {start}. Composite DFA
// states are named "{" + sorted,comma-joined original names + "}"; this also
// prunes states unreachable from the start, since the worklist only ever
// visits what BFS from the start reaches. a must have no λ edges. a is
// returned unchanged if it is already deterministic.
func Nfa2Dfa(a *automaton.FA) (*automaton.FA, error) {
	if a.HasLambda() {
		return nil, wrapf("nfa2dfa", ErrHasLambda)
	}
	if a.IsDeterministic() {
		return a, nil
	}

	dfaStates := make(map[string]struct{})
	var dfaAccepting []string
	var dfaEdges []automaton.Edge

	type pending struct{ set map[string]struct{} }
	queue := []pending{{set: map[string]struct{}{a.Start(): {}}}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		name := setName(cur.set)
		if _, seen := dfaStates[name]; seen {
			continue
		}
		dfaStates[name] = struct{}{}

		for s := range cur.set {
			if a.IsAccepting(s) {
				dfaAccepting = append(dfaAccepting, name)
				break
			}
		}

		transitions := make(map[automaton.Letter]map[string]struct{})
		for s := range cur.set {
			for _, letter := range a.OutgoingLetters(s) {
				if transitions[letter] == nil {
					transitions[letter] = make(map[string]struct{})
				}
				for end := range a.SuccDirectOn(s, letter) {
					transitions[letter][end] = struct{}{}
				}
			}
		}

		letters := make([]automaton.Letter, 0, len(transitions))
		for l := range transitions {
			letters = append(letters, l)
		}
		sort.Slice(letters, func(i, j int) bool { return letters[i].Less(letters[j]) })

		for _, letter := range letters {
			ends := transitions[letter]
			dfaEdges = append(dfaEdges, automaton.Edge{From: name, To: setName(ends), Letter: letter})
			queue = append(queue, pending{set: ends})
		}
	}

	states := make([]string, 0, len(dfaStates))
	for s := range dfaStates {
		states = append(states, s)
	}

	return automaton.NewInternal(states, setName(map[string]struct{}{a.Start(): {}}), dfaAccepting, dfaEdges)
}

func setName(set map[string]struct{}) string {
	members := make([]string, 0, len(set))
	for s := range set {
		members = append(members, s)
	}
	sort.Strings(members)
	return "{" + strings.Join(members, ",") + "}"
}
