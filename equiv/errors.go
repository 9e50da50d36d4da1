package equiv

import "errors"

// ErrNotDeterministic indicates IsIsomorphic was handed an automaton that
// isn't a DFA.
var ErrNotDeterministic = errors.New("equiv: operation requires a deterministic automaton")

func wrapf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
