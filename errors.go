package cgt

import (
	"errors"
	"fmt"
)

// Categories of line errors. A *ParseError wraps exactly one of them.
var (
	ErrIncorrectNumberOfFields = errors.New("incorrect number of fields")
	ErrInvalidKind             = errors.New("invalid kind")
	ErrInvalidDate             = errors.New("invalid date")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidPrice            = errors.New("invalid price")
	ErrInvalidExpenses         = errors.New("invalid expenses")
)

// ParseError reports a line that could not be parsed into a Transaction.
type ParseError struct {
	Err        error  // Err is one of the Err* categories above.
	Line       string // Line is the raw offending line.
	LineNumber int    // LineNumber is 1-based in the ParseAll input, 0 for ParseLine.
	Cause      error  // Cause is the underlying parse error, if any.
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v: %q", e.Err, e.Line)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if e.LineNumber > 0 {
		msg = fmt.Sprintf("line %d: %s", e.LineNumber, msg)
	}
	return msg
}

// Unwrap returns the error category so that errors.Is(err, ErrInvalidKind) works.
func (e *ParseError) Unwrap() error { return e.Err }

func lineError(category error, line string, cause error) *ParseError {
	return &ParseError{Err: category, Line: line, Cause: cause}
}
