package wkt

import (
	"fmt"

	"github.com/arloliu/geog/errs"
)

// ParseError describes why WKT text could not be parsed.
//
// Err is one of the errs sentinels, possibly wrapped with detail, so callers
// match it with errors.Is.
type ParseError struct {
	// Pos is the byte offset of the offending token.
	Pos int
	// Expected describes what the parser was looking for, if anything.
	Expected string
	// Found describes the offending token.
	Found string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Expected != "" {
		return fmt.Sprintf("wkt: %v: expected %s but found %s at offset %d", e.Err, e.Expected, e.Found, e.Pos)
	}

	return fmt.Sprintf("wkt: %v: %s at offset %d", e.Err, e.Found, e.Pos)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// unexpected builds the error for tok appearing where expected was required,
// picking the sentinel from the token kind.
func unexpected(tok Token, expected string) *ParseError {
	err := errs.ErrUnexpectedToken
	if tok.Kind == TokenEOF {
		err = errs.ErrUnexpectedEOF
	} else if tok.Kind == TokenEOL {
		err = errs.ErrUnexpectedEOL
	}

	return &ParseError{Pos: tok.Pos, Expected: expected, Found: tok.String(), Err: err}
}

func failAt(tok Token, err error) *ParseError {
	return &ParseError{Pos: tok.Pos, Found: tok.String(), Err: err}
}
