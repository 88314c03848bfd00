package logic

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSentence is returned when a value that should be a Sentence is not one.
	ErrNotSentence = errors.New("must be a logical sentence")

	// ErrNotInModel is matched by every *LookupError.
	ErrNotInModel = errors.New("variable not in model")

	// ErrTooManySymbols is returned by a Checker whose symbol limit is exceeded.
	ErrTooManySymbols = errors.New("too many symbols")
)

// LookupError reports a symbol that has no assignment in the model
// it is evaluated against.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("variable %s not in model", e.Name)
}

func (e *LookupError) Unwrap() error {
	return ErrNotInModel
}

// ParseError reports a syntax error in a formula, with the byte offset
// at which it was detected.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}
