package equiv

import (
	"github.com/cantor-lang/refa/automaton"
	"github.com/cantor-lang/refa/convert"
)

// LanguageEquivalent reports whether fa1 and fa2 accept the same language:
// each is normalized through Lnfa2Nfa -> Nfa2Dfa -> Dfa2MinDfa, then the two
// minimal DFAs are compared with IsIsomorphic.
func LanguageEquivalent(fa1, fa2 *automaton.FA) (bool, error) {
	dfa1, err := normalize(fa1)
	if err != nil {
		return false, err
	}
	dfa2, err := normalize(fa2)
	if err != nil {
		return false, err
	}
	return IsIsomorphic(dfa1, dfa2)
}

func normalize(a *automaton.FA) (*automaton.FA, error) {
	nfa, err := convert.Lnfa2Nfa(a)
	if err != nil {
		return nil, err
	}
	dfa, err := convert.Nfa2Dfa(nfa)
	if err != nil {
		return nil, err
	}
	return convert.Dfa2MinDfa(dfa)
}
