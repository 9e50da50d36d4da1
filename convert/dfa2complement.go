package convert

import "github.com/cantor-lang/refa/automaton"

// Dfa2Complement flips acceptance against the alphabet actually observed on
// a's edges. If a isn't total over that alphabet, a fresh "$EMPTY" sink
// absorbs every missing transition first, so the complement can legitimately
// include it; letters that never appear on any edge never gain complement
// edges into the sink, since totality is judged against the observed
// alphabet, not a caller-declared one.
func Dfa2Complement(a *automaton.FA) (*automaton.FA, error) {
	if !a.IsDeterministic() {
		return nil, wrapf("dfa2complement", ErrNotDeterministic)
	}

	alphabet := a.Alphabet()
	states := a.States()
	edges := a.Edges()

	total := len(edges) == len(states)*len(alphabet)

	if !total {
		states = append(states, "$EMPTY")
		for _, letter := range alphabet {
			transitioning := make(map[string]struct{})
			for _, s := range a.States() {
				if len(a.TransitionOn(s, letter)) > 0 {
					transitioning[s] = struct{}{}
				}
			}
			for _, s := range states {
				if _, ok := transitioning[s]; !ok {
					edges = append(edges, automaton.Edge{From: s, To: "$EMPTY", Letter: letter})
				}
			}
		}
	}

	accepting := a.Accepting()
	acceptSet := toSet(accepting)
	var complementAccepting []string
	for _, s := range states {
		if _, ok := acceptSet[s]; !ok {
			complementAccepting = append(complementAccepting, s)
		}
	}

	return automaton.NewInternal(states, a.Start(), complementAccepting, edges)
}
