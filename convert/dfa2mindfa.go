package convert

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cantor-lang/refa/automaton"
)

// Dfa2MinDfa partition-refines a into its Myhill-Nerode minimal DFA. Only
// states reachable from the start participate, so unreachable states are
// pruned as a side effect of minimization.
func Dfa2MinDfa(a *automaton.FA) (*automaton.FA, error) {
	if !a.IsDeterministic() {
		return nil, wrapf("dfa2mindfa", ErrNotDeterministic)
	}

	classOf := equivalenceClasses(a)

	members := make(map[int][]string)
	for state, class := range classOf {
		members[class] = append(members[class], state)
	}

	classNames := make(map[int]string, len(members))
	for class, states := range members {
		classNames[class] = setName(toSet(states))
	}

	var minStates []string
	var minStart string
	var minAccepting []string
	var minEdges []automaton.Edge

	for class, states := range members {
		name := classNames[class]
		minStates = append(minStates, name)

		sort.Strings(states)
		representative := states[0]

		for _, s := range states {
			if s == a.Start() {
				minStart = name
			}
		}
		if a.IsAccepting(representative) {
			minAccepting = append(minAccepting, name)
		}

		for _, letter := range a.OutgoingLetters(representative) {
			ends := a.TransitionOn(representative, letter)
			if len(ends) == 0 {
				continue
			}
			endClass := classOf[ends[0]]
			minEdges = append(minEdges, automaton.Edge{From: name, To: classNames[endClass], Letter: letter})
		}
	}

	return automaton.NewInternal(minStates, minStart, minAccepting, minEdges)
}

// equivalenceClasses computes the Myhill-Nerode partition of a's reachable
// states by round-based refinement: start by separating accepting from
// non-accepting, then repeatedly split classes whose members disagree on
// (letter -> destination class) until the class count stops growing.
func equivalenceClasses(a *automaton.FA) map[string]int {
	reachable := a.SuccClosure(a.Start())

	classOf := make(map[string]int, len(reachable))
	for s := range reachable {
		if a.IsAccepting(s) {
			classOf[s] = 1
		} else {
			classOf[s] = 0
		}
	}
	numClasses := 2

	for {
		type signature struct {
			accepting bool
			trans     string
		}
		groups := make(map[signature][]string)

		for s := range reachable {
			var parts []string
			for _, letter := range a.OutgoingLetters(s) {
				ends := a.TransitionOn(s, letter)
				if len(ends) == 0 {
					continue
				}
				parts = append(parts, letter.String()+"->"+strconv.Itoa(classOf[ends[0]]))
			}
			sort.Strings(parts)
			sig := signature{accepting: a.IsAccepting(s), trans: strings.Join(parts, ",")}
			groups[sig] = append(groups[sig], s)
		}

		if len(groups) == numClasses {
			return classOf
		}
		numClasses = len(groups)

		sigs := make([]signature, 0, len(groups))
		for sig := range groups {
			sigs = append(sigs, sig)
		}
		sort.Slice(sigs, func(i, j int) bool {
			if sigs[i].accepting != sigs[j].accepting {
				return sigs[j].accepting
			}
			return sigs[i].trans < sigs[j].trans
		})

		for idx, sig := range sigs {
			for _, s := range groups[sig] {
				classOf[s] = idx
			}
		}
	}
}

func toSet(states []string) map[string]struct{} {
	out := make(map[string]struct{}, len(states))
	for _, s := range states {
		out[s] = struct{}{}
	}
	return out
}
