package bibstr

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownMacro     = errors.New("unknown macro")
	ErrCyclicMacro      = errors.New("cyclic macro definition")
	ErrMalformedLiteral = errors.New("malformed bibtex literal")
	ErrDuplicateMacro   = errors.New("macro already defined")
	ErrEmptyNodes       = errors.New("compound string needs at least one node")
)

// MacroError reports a failure to resolve a macro key.
type MacroError struct {
	Err error
	Key string
}

func (e *MacroError) Unwrap() error {
	return e.Err
}

func (e *MacroError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err.Error(), e.Key)
}

// ParseError reports where a BibTeX literal could not be tokenized.
type ParseError struct {
	Err error
	Pos int
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Pos)
}

func malformed(pos int, format string, args ...any) error {
	return &ParseError{
		Err: fmt.Errorf("%w: %s", ErrMalformedLiteral, fmt.Sprintf(format, args...)),
		Pos: pos,
	}
}
