package automaton

// Matches walks a from q0 consuming word one character at a time, failing
// fast the moment a transition is missing. It requires a (the DFA requires
// no lambda edges and at most one transition per (state, letter)) as
// precondition; callers that might hand it a non-deterministic automaton
// should check IsDeterministic first.
func Matches(a *FA, word string) (bool, error) {
	if !a.IsDeterministic() {
		return false, wrapf("matches", ErrNotDeterministic)
	}

	state := a.start
	for i := 0; i < len(word); i++ {
		ends := a.trans[state][Char(word[i])]
		if len(ends) == 0 {
			return false, nil
		}
		for e := range ends {
			state = e
		}
	}
	return a.IsAccepting(state), nil
}
