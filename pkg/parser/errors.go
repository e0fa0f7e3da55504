package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying why a node rejected a line.
var (
	// ErrFieldCount reports a structural error: the tokenized field count
	// does not match the expected arity.
	ErrFieldCount = errors.New("wrong number of fields")

	// ErrUnterminatedQuote reports a quoted span with no closing quote.
	// It is treated as a structural error.
	ErrUnterminatedQuote = errors.New("unterminated quoted field")

	// ErrNoColumns is returned by the sniffing factory when no column
	// layout can be inferred from the input file.
	ErrNoColumns = errors.New("could not sniff any columns")
)

// ValueError reports a field whose raw text could not be converted by its
// value parser.
type ValueError struct {
	Raw string
	Msg string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%q %s", e.Raw, e.Msg)
}

// ParseError is the fatal classification: a chain was exhausted without a
// skip-eligible outcome. It carries the failing line's position and raw
// text.
type ParseError struct {
	Index int
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line # %d: %s: %v", e.Index, e.Raw, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}
