// Package automaton implements the finite-automaton data model: states,
// edges, derived transition tables, and the reachability/matching utilities
// built on top of them.
//
// Error policy follows katalvlaran/lvlath's builder package: sentinels are
// package-level vars, never stringified with dynamic data at the definition
// site; call sites wrap with fmt.Errorf("%s: %w", ...) so errors.Is keeps
// working across the wrap.
package automaton

import "errors"

// ErrUnknownState indicates create was given an edge, a start state, or an
// accepting state that refers to a state not present in the state set.
var ErrUnknownState = errors.New("automaton: reference to unknown state")

// ErrInvalidName indicates a state name does not match [A-Za-z0-9_]+, the
// only names Create accepts from callers. Internal builders may still
// produce names outside that charset via NewInternal.
var ErrInvalidName = errors.New("automaton: state name must be alphanumeric or underscore")

// ErrNotDeterministic indicates Matches was called on an automaton that
// either has lambda edges or has more than one transition for some
// (state, letter) pair. Minimization, complement and isomorphism report the
// same condition with their own packages' sentinels.
var ErrNotDeterministic = errors.New("automaton: operation requires a deterministic automaton")

// ErrHasLambda indicates nfa2dfa-shaped code was handed an automaton that
// still has lambda edges.
var ErrHasLambda = errors.New("automaton: operation requires an automaton without lambda edges")

func wrapf(op string, err error) error {
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }
