package re

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// ErrUnexpectedToken is the sentinel wrapped by every ParseError, so callers
// can test for a syntax failure with errors.Is without inspecting position
// or token text.
var ErrUnexpectedToken = errors.New("re: unexpected token")

// ParseError reports a concrete-syntax failure with its source position.
type ParseError struct {
	Pos      lexer.Position
	Got      string
	Expected string
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("re: %s: unexpected %q", e.Pos, e.Got)
	}
	return fmt.Sprintf("re: %s: expected %s, got %q", e.Pos, e.Expected, e.Got)
}

func (e *ParseError) Unwrap() error { return ErrUnexpectedToken }
