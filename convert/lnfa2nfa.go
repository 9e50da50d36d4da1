package convert

import "github.com/cantor-lang/refa/automaton"

// Lnfa2Nfa eliminates λ edges: a state is accepting in the result if it can
// reach an original accepting state via λ moves, and for every non-λ edge
// (x,y,c) an edge (u,v,c) is added for every u that can reach x via λ moves
// and every v reachable from y via λ moves. a is returned unchanged if it
// already has no λ edges.
func Lnfa2Nfa(a *automaton.FA) (*automaton.FA, error) {
	if !a.HasLambda() {
		return a, nil
	}

	nfaAccepting := make(map[string]struct{})
	for _, accept := range a.Accepting() {
		for s := range a.PredClosureOn(accept, automaton.Lambda) {
			nfaAccepting[s] = struct{}{}
		}
	}

	edgeSet := make(map[automaton.Edge]struct{})
	for _, e := range a.Edges() {
		if e.Letter.IsLambda() {
			continue
		}
		for start := range a.PredClosureOn(e.From, automaton.Lambda) {
			for end := range a.SuccClosureOn(e.To, automaton.Lambda) {
				edgeSet[automaton.Edge{From: start, To: end, Letter: e.Letter}] = struct{}{}
			}
		}
	}

	edges := make([]automaton.Edge, 0, len(edgeSet))
	for e := range edgeSet {
		edges = append(edges, e)
	}

	accepting := make([]string, 0, len(nfaAccepting))
	for s := range nfaAccepting {
		accepting = append(accepting, s)
	}

	return automaton.NewInternal(a.States(), a.Start(), accepting, edges)
}
