// Package convert implements the automaton-pipeline transformations:
// re→λNFA→NFA→DFA→minDFA, the reverse DFA→RE direction, and complementation.
package convert

import (
	"sort"
	"strconv"

	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/re"
)

// builder is a mutable scratch automaton used only during Thompson
// construction. Every other package in this module works with immutable
// *automaton.FA values; builder is the one deliberate exception, confined to
// this file.
type builder struct {
	states map[string]struct{}
	edges  []automaton.Edge
}

func newBuilder(start string) *builder {
	return &builder{states: map[string]struct{}{start: {}}}
}

func (b *builder) addState(name string) {
	b.states[name] = struct{}{}
}

func (b *builder) addEdge(from, to string, letter automaton.Letter) {
	b.edges = append(b.edges, automaton.Edge{From: from, To: to, Letter: letter})
}

// addRe inserts re's fragment starting at root and returns the state where
// it terminates, for easy chaining.
func (b *builder) addRe(root string, expr *re.RE) string {
	switch expr.Kind() {
	case re.KindEmpty:
		return b.addEmpty(root)
	case re.KindChar:
		return b.addChar(root, expr.Char())
	case re.KindConcat:
		l, r := expr.Operands()
		return b.addConcat(root, l, r)
	case re.KindPlus:
		l, r := expr.Operands()
		return b.addPlus(root, l, r)
	default:
		return b.addStar(root, expr.Inner())
	}
}

func (b *builder) addEmpty(root string) string {
	next := root + "-c"
	b.addState(next)
	b.addEdge(root, next, automaton.Lambda)
	return next
}

func (b *builder) addChar(root string, c byte) string {
	next := root + "-c"
	b.addState(next)
	b.addEdge(root, next, automaton.Char(c))
	return next
}

func (b *builder) addConcat(root string, l, r *re.RE) string {
	mid := b.addRe(root, l)
	return b.addRe(mid, r)
}

func (b *builder) addPlus(root string, l, r *re.RE) string {
	branch1 := root + "-b0"
	branch2 := root + "-b1"
	b.addState(branch1)
	b.addState(branch2)
	b.addEdge(root, branch1, automaton.Lambda)
	b.addEdge(root, branch2, automaton.Lambda)

	end1 := b.addRe(branch1, l)
	end2 := b.addRe(branch2, r)

	combine := root + "-c"
	b.addState(combine)
	b.addEdge(end1, combine, automaton.Lambda)
	b.addEdge(end2, combine, automaton.Lambda)
	return combine
}

func (b *builder) addStar(root string, inner *re.RE) string {
	next := b.addRe(root, inner)
	b.addEdge(root, next, automaton.Lambda)
	b.addEdge(next, root, automaton.Lambda)
	return next
}

// compressNames renames states to "A".."Z" (or "0","1",... past 26 states)
// in lexicographic order of the original names, for stable and readable
// downstream names.
func compressNames(states []string, start string, accepting []string, edges []automaton.Edge) ([]string, string, []string, []automaton.Edge) {
	sorted := make([]string, len(states))
	copy(sorted, states)
	sort.Strings(sorted)

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	rename := make(map[string]string, len(sorted))
	for i, s := range sorted {
		if len(sorted) > len(alphabet) {
			rename[s] = strconv.Itoa(i)
		} else {
			rename[s] = string(alphabet[i])
		}
	}

	newStates := make([]string, len(sorted))
	for i, s := range sorted {
		newStates[i] = rename[s]
	}

	newAccepting := make([]string, len(accepting))
	for i, s := range accepting {
		newAccepting[i] = rename[s]
	}

	newEdges := make([]automaton.Edge, len(edges))
	for i, e := range edges {
		newEdges[i] = automaton.Edge{From: rename[e.From], To: rename[e.To], Letter: e.Letter}
	}

	return newStates, rename[start], newAccepting, newEdges
}
