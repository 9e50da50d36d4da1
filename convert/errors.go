package convert

import "errors"

// ErrHasLambda indicates Nfa2Dfa was handed an automaton that still has
// lambda edges.
var ErrHasLambda = errors.New("convert: nfa2dfa requires a lambda-free automaton")

// ErrNotDeterministic indicates Dfa2MinDfa or Dfa2Complement was handed
// something that isn't a DFA.
var ErrNotDeterministic = errors.New("convert: operation requires a deterministic automaton")

func wrapf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
