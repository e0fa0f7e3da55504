package parser

import (
	"errors"
	"fmt"
)

// LineParser validates and converts one physical line into a fixed-arity
// record, possibly consuming further physical lines to repair it.
type LineParser interface {
	// Parse attempts to produce a record for line. A result with nil
	// Values is a skip; an error is fatal and aborts the whole run.
	Parse(line *Line) (*ParsedLine, error)

	// ValueParsers returns the per-column converters. Their number is the
	// parser's arity and never changes after construction.
	ValueParsers() []ValueParser
}

// AttemptFunc is one node's strategy for turning a line and its tokens
// into record values. fields holds the tokens of line.Raw produced by
// Split (nil when tokenization itself failed); a strategy is free to
// ignore them and read further physical lines from line.Source instead.
//
// A strategy must leave the source positioned exactly after the lines it
// consumed. Lines consumed by a failing strategy stay consumed.
type AttemptFunc func(node *Node, line *Line, fields []string) ([]string, error)

// Node is one element of a line-parser chain. Nodes are ordered by
// decreasing specificity: the entry node assumes well-formed input, later
// nodes encode increasingly specific repairs for known failure shapes.
// Each node owns its successor; chains are built once and never mutated.
type Node struct {
	parsers []ValueParser
	opts    Options
	skip    bool
	next    *Node
	attempt AttemptFunc
}

// NewNode builds a chain node.
//
// When skip is true the node resolves its own failures by skipping the
// line; skip takes precedence over delegation to next. A nil attempt uses
// the default strategy: arity check plus per-column conversion of the
// current line only.
func NewNode(parsers []ValueParser, opts Options, skip bool, next *Node, attempt AttemptFunc) *Node {
	if attempt == nil {
		attempt = defaultAttempt
	}
	return &Node{parsers: parsers, opts: opts, skip: skip, next: next, attempt: attempt}
}

// ValueParsers returns the node's per-column converters.
func (n *Node) ValueParsers() []ValueParser {
	return n.parsers
}

// Options returns the shared parsing options.
func (n *Node) Options() Options {
	return n.opts
}

// Next returns the node delegated to on failure, or nil.
func (n *Node) Next() *Node {
	return n.next
}

// Parse tokenizes line and runs the node's failure policy: attempt, then
// skip, delegate or escalate.
func (n *Node) Parse(line *Line) (*ParsedLine, error) {
	fields, err := Split(line.Raw, n.opts)
	if err != nil {
		return n.fail(line, nil, err)
	}
	return n.parse(line, fields)
}

func (n *Node) parse(line *Line, fields []string) (*ParsedLine, error) {
	values, err := n.attempt(n, line, fields)
	if err != nil {
		return n.fail(line, fields, err)
	}
	return &ParsedLine{Line: *line, Values: values}, nil
}

// fail resolves a structural or value error. Skip wins over delegation;
// with neither configured the error escalates as fatal.
func (n *Node) fail(line *Line, fields []string, err error) (*ParsedLine, error) {
	if n.skip {
		return &ParsedLine{Line: *line}, nil
	}

	if n.next != nil {
		// The next node receives the original line and its tokens; its
		// strategy may reinterpret how many physical lines make up the
		// record.
		return n.next.parse(line, fields)
	}

	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return nil, err
	}
	return nil, &ParseError{Index: line.Index, Raw: line.Raw, Err: err}
}

// defaultAttempt validates arity and converts each field in column order.
func defaultAttempt(n *Node, line *Line, fields []string) ([]string, error) {
	if len(fields) != len(n.parsers) {
		return nil, fmt.Errorf("expected %d fields, got %d: %w", len(n.parsers), len(fields), ErrFieldCount)
	}

	values := make([]string, 0, len(fields))
	for i, p := range n.parsers {
		value, err := p.Parse(fields[i])
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		values = append(values, value)
	}

	return values, nil
}
