package convert

import (
	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/re"
)

// Re2Lnfa builds a λNFA recognizing expr's language via Thompson
// construction, then compresses state names to a stable, readable
// namespace ("A","B",... or "0","1",... past 26 states).
func Re2Lnfa(expr *re.RE) (*automaton.FA, error) {
	b := newBuilder("START")
	accepting := b.addRe("START", expr)

	states := make([]string, 0, len(b.states))
	for s := range b.states {
		states = append(states, s)
	}

	cStates, cStart, cAccepting, cEdges := compressNames(states, "START", []string{accepting}, b.edges)
	return automaton.NewInternal(cStates, cStart, cAccepting, cEdges)
}
