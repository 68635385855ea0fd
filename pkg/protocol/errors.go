package protocol

import (
	"errors"
	"fmt"
)

// ErrNoEligiblePlayers is returned when a pot line lists no players after the value
var ErrNoEligiblePlayers = errors.New("pot has no eligible players")

// ErrNotFinite is returned for NaN and infinite amounts
var ErrNotFinite = errors.New("amount must be finite")

// ErrNotDecimal is returned for hexadecimal or digit-grouped amounts
var ErrNotDecimal = errors.New("amount must be written in decimal")

// ErrEmptyToken is returned when a field has an empty value between separators
var ErrEmptyToken = errors.New("empty value")

// TruncatedInputError is returned when the input ends before every line was read
type TruncatedInputError struct {
	Field string
	// Line is the 1-based line number that was expected
	Line int
}

func (t TruncatedInputError) Error() string {
	return fmt.Sprintf("input ended before line %d (%s)", t.Line, t.Field)
}

// FormatError is returned when a token does not have the expected shape
type FormatError struct {
	Field string
	Line  int
	Token string
	Err   error
}

func (f FormatError) Error() string {
	return fmt.Sprintf("line %d (%s): invalid value %q: %v", f.Line, f.Field, f.Token, f.Err)
}

// Unwrap returns the underlying parse error
func (f FormatError) Unwrap() error {
	return f.Err
}

// ValidationError is returned when well-formed values break a cross-field rule
type ValidationError struct {
	Field  string
	Reason string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

func newValidationError(field, format string, a ...interface{}) ValidationError {
	return ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, a...),
	}
}
