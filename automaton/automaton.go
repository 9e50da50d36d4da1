package automaton

import (
	"regexp"
	"sort"
	"strings"
)

// State names callers may use with Create must match this charset. Internal
// builders (Thompson construction, subset construction, minimization,
// generalized-NFA elimination) introduce names with '-', '{', '}', ',', '$'
// that callers must never feed back into Create.
var nameCharset = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Edge is a transition (start, end, letter). Parallel edges with the same
// letter are idempotent because FA stores its edge set deduplicated.
type Edge struct {
	From, To string
	Letter   Letter
}

// FA is an immutable finite automaton (Q, q0, F, E). Every transformation in
// this module produces a new FA rather than mutating an existing one.
type FA struct {
	states    map[string]struct{}
	start     string
	accepting map[string]struct{}
	edges     []Edge

	trans    map[string]map[Letter]map[string]struct{}
	invTrans map[string]map[Letter]map[string]struct{}
}

// Create validates states, start, accepting and edges and returns the
// corresponding FA. State names must match [A-Za-z0-9_]+; everything else
// that the internal builders produce goes through NewInternal instead.
func Create(states []string, start string, accepting []string, edges []Edge) (*FA, error) {
	for _, s := range states {
		if !nameCharset.MatchString(s) {
			return nil, wrapf("create", ErrInvalidName)
		}
	}
	return newFA(states, start, accepting, edges)
}

// newFA builds an FA without checking the name charset, for internal
// builders that legitimately need '-', '{', '}', ',' or '$' in names.
func newFA(states []string, start string, accepting []string, edges []Edge) (*FA, error) {
	stateSet := make(map[string]struct{}, len(states))
	for _, s := range states {
		stateSet[s] = struct{}{}
	}

	if _, ok := stateSet[start]; !ok {
		return nil, wrapf("create", ErrUnknownState)
	}

	acceptSet := make(map[string]struct{}, len(accepting))
	for _, a := range accepting {
		if _, ok := stateSet[a]; !ok {
			return nil, wrapf("create", ErrUnknownState)
		}
		acceptSet[a] = struct{}{}
	}

	trans := make(map[string]map[Letter]map[string]struct{})
	invTrans := make(map[string]map[Letter]map[string]struct{})
	dedup := make(map[Edge]struct{}, len(edges))
	uniqueEdges := make([]Edge, 0, len(edges))

	for _, e := range edges {
		if _, ok := stateSet[e.From]; !ok {
			return nil, wrapf("create", ErrUnknownState)
		}
		if _, ok := stateSet[e.To]; !ok {
			return nil, wrapf("create", ErrUnknownState)
		}
		if _, seen := dedup[e]; seen {
			continue
		}
		dedup[e] = struct{}{}
		uniqueEdges = append(uniqueEdges, e)

		if trans[e.From] == nil {
			trans[e.From] = make(map[Letter]map[string]struct{})
		}
		if trans[e.From][e.Letter] == nil {
			trans[e.From][e.Letter] = make(map[string]struct{})
		}
		trans[e.From][e.Letter][e.To] = struct{}{}

		if invTrans[e.To] == nil {
			invTrans[e.To] = make(map[Letter]map[string]struct{})
		}
		if invTrans[e.To][e.Letter] == nil {
			invTrans[e.To][e.Letter] = make(map[string]struct{})
		}
		invTrans[e.To][e.Letter][e.From] = struct{}{}
	}

	return &FA{
		states:    stateSet,
		start:     start,
		accepting: acceptSet,
		edges:     uniqueEdges,
		trans:     trans,
		invTrans:  invTrans,
	}, nil
}

// NewInternal builds an FA without checking the name charset. It exists for
// the sibling packages (convert, equiv, render) whose algorithms legitimately
// introduce names outside the public namespace ('-', '{', '}', ',', '$');
// library callers should use Create instead.
func NewInternal(states []string, start string, accepting []string, edges []Edge) (*FA, error) {
	return newFA(states, start, accepting, edges)
}

// MustCreate is Create but panics on error; handy for literal test fixtures.
func MustCreate(states []string, start string, accepting []string, edges []Edge) *FA {
	fa, err := Create(states, start, accepting, edges)
	if err != nil {
		panic(err)
	}
	return fa
}

// States returns the automaton's states, sorted.
func (a *FA) States() []string {
	out := make([]string, 0, len(a.states))
	for s := range a.states {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Start returns the start state.
func (a *FA) Start() string { return a.start }

// Accepting returns the accepting states, sorted.
func (a *FA) Accepting() []string {
	out := make([]string, 0, len(a.accepting))
	for s := range a.accepting {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// IsAccepting reports whether s is an accepting state.
func (a *FA) IsAccepting(s string) bool {
	_, ok := a.accepting[s]
	return ok
}

// HasState reports whether s is one of the automaton's declared states.
func (a *FA) HasState(s string) bool {
	_, ok := a.states[s]
	return ok
}

// Edges returns a copy of the automaton's edge set, in no particular order.
func (a *FA) Edges() []Edge {
	out := make([]Edge, len(a.edges))
	copy(out, a.edges)
	return out
}

// HasLambda reports whether any edge carries the absent letter.
func (a *FA) HasLambda() bool {
	for _, e := range a.edges {
		if e.Letter.IsLambda() {
			return true
		}
	}
	return false
}

// IsDeterministic reports whether a has no lambda edges and at most one
// transition per (state, letter) pair.
func (a *FA) IsDeterministic() bool {
	for _, byLetter := range a.trans {
		for letter, ends := range byLetter {
			if letter.IsLambda() {
				return false
			}
			if len(ends) > 1 {
				return false
			}
		}
	}
	return true
}

// TransitionOn returns the (possibly empty) set of states reachable from s
// directly via letter, sorted.
func (a *FA) TransitionOn(s string, letter Letter) []string {
	ends := a.trans[s][letter]
	out := make([]string, 0, len(ends))
	for e := range ends {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// OutgoingLetters returns the distinct letters s has outgoing edges for,
// sorted with lambda first.
func (a *FA) OutgoingLetters(s string) []Letter {
	byLetter := a.trans[s]
	out := make([]Letter, 0, len(byLetter))
	for l := range byLetter {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Alphabet returns the distinct non-lambda letters appearing on any edge,
// sorted. dfa2complement uses exactly this set, not a caller-declared one
// (spec note: an unused intended letter never gains a complement edge).
func (a *FA) Alphabet() []Letter {
	seen := make(map[Letter]struct{})
	for _, e := range a.edges {
		if !e.Letter.IsLambda() {
			seen[e.Letter] = struct{}{}
		}
	}
	out := make([]Letter, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func sortedJoin(items []string, sep string) string {
	cp := make([]string, len(items))
	copy(cp, items)
	sort.Strings(cp)
	return strings.Join(cp, sep)
}

// String renders the automaton as the four-line dump spec.md §6 specifies:
// States, Start State, Accepting States, and one tab-indented "From s via l
// to e" line per edge.
func (a *FA) String() string {
	var b strings.Builder

	b.WriteString("States: ")
	b.WriteString(sortedJoin(a.States(), ", "))
	b.WriteByte('\n')

	b.WriteString("Start State: ")
	b.WriteString(a.start)
	b.WriteByte('\n')

	b.WriteString("Accepting States: ")
	if len(a.accepting) == 0 {
		b.WriteString("NONE")
	} else {
		b.WriteString(sortedJoin(a.Accepting(), ", "))
	}
	b.WriteByte('\n')

	b.WriteString("Edges:")
	lines := make([]string, 0, len(a.edges))
	for _, e := range a.edges {
		lines = append(lines, "From "+e.From+" via "+e.Letter.String()+" to "+e.To)
	}
	sort.Strings(lines)
	for _, l := range lines {
		b.WriteByte('\n')
		b.WriteByte('\t')
		b.WriteString(l)
	}

	return b.String()
}
