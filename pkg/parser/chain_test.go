package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/csvmend/csvmend/pkg/textio"
)

func fourColumnParsers() []ValueParser {
	return []ValueParser{
		&NumberParser{},
		&StringParser{},
		&NumberParser{},
		&NumberParser{},
	}
}

// countingAttempt records whether a node's strategy ran.
func countingAttempt(calls *int, err error) AttemptFunc {
	return func(n *Node, line *Line, fields []string) ([]string, error) {
		*calls++
		if err != nil {
			return nil, err
		}
		return defaultAttempt(n, line, fields)
	}
}

func TestNode_Parse_WellFormedLineNeverDelegates(t *testing.T) {
	opts := DefaultOptions()
	nextCalls := 0
	next := NewNode(fourColumnParsers(), opts, false, nil, countingAttempt(&nextCalls, nil))
	entry := NewNode(fourColumnParsers(), opts, false, next, nil)

	line := &Line{Index: 2, Raw: `1,Kirsty Jacobson,23,"10,000"`}
	parsed, err := entry.Parse(line)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"1", "Kirsty Jacobson", "23", "10,000"}
	if diff := cmp.Diff(want, parsed.Values); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if len(parsed.Values) != len(entry.ValueParsers()) {
		t.Errorf("record arity = %d, want %d", len(parsed.Values), len(entry.ValueParsers()))
	}
	if nextCalls != 0 {
		t.Errorf("next node invoked %d times for a well-formed line, want 0", nextCalls)
	}
}

func TestNode_Parse_SkipOnFailure(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "arity mismatch", raw: "1,John"},
		{name: "value error", raw: "one,John,23,42"},
		{name: "unterminated quote", raw: `1,"John,23,42`},
		{name: "blank line", raw: ""},
	}

	opts := DefaultOptions()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := NewNode(fourColumnParsers(), opts, true, nil, nil)
			parsed, err := node.Parse(&Line{Index: 7, Raw: tt.raw})
			if err != nil {
				t.Fatalf("Parse() error = %v, want skip", err)
			}
			if !parsed.Skipped() {
				t.Errorf("Parse() produced values %v, want skip", parsed.Values)
			}
			if parsed.Index != 7 || parsed.Raw != tt.raw {
				t.Errorf("skip kept (%d, %q), want original (7, %q)", parsed.Index, parsed.Raw, tt.raw)
			}
		})
	}
}

// A node configured with both skip and next resolves failures by
// skipping; the next node must never run.
func TestNode_Parse_SkipWinsOverDelegation(t *testing.T) {
	opts := DefaultOptions()
	nextCalls := 0
	next := NewNode(fourColumnParsers(), opts, false, nil, countingAttempt(&nextCalls, nil))
	entry := NewNode(fourColumnParsers(), opts, true, next, nil)

	parsed, err := entry.Parse(&Line{Index: 3, Raw: "too,short"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !parsed.Skipped() {
		t.Errorf("Parse() = %v, want skip", parsed.Values)
	}
	if nextCalls != 0 {
		t.Errorf("next node invoked %d times, want 0 (skip wins)", nextCalls)
	}
}

func TestNode_Parse_DelegatesDownTheChain(t *testing.T) {
	opts := DefaultOptions()

	repairCalls := 0
	repair := NewNode(fourColumnParsers(), opts, false, nil,
		func(n *Node, line *Line, fields []string) ([]string, error) {
			repairCalls++
			if len(fields) != 2 {
				return nil, fmt.Errorf("expected 2 fields, got %d: %w", len(fields), ErrFieldCount)
			}
			return []string{fields[0], fields[1], "0", "0"}, nil
		})
	entry := NewNode(fourColumnParsers(), opts, false, repair, nil)

	parsed, err := entry.Parse(&Line{Index: 4, Raw: "2,John"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if repairCalls != 1 {
		t.Errorf("repair node invoked %d times, want 1", repairCalls)
	}

	want := []string{"2", "John", "0", "0"}
	if diff := cmp.Diff(want, parsed.Values); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestNode_Parse_FatalCarriesLinePosition(t *testing.T) {
	opts := DefaultOptions()
	node := NewNode(fourColumnParsers(), opts, false, nil, nil)

	raw := "not,a,record"
	_, err := node.Parse(&Line{Index: 42, Raw: raw})

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Parse() error = %v, want *ParseError", err)
	}
	if parseErr.Index != 42 {
		t.Errorf("ParseError.Index = %d, want 42", parseErr.Index)
	}
	if parseErr.Raw != raw {
		t.Errorf("ParseError.Raw = %q, want %q", parseErr.Raw, raw)
	}
	if !errors.Is(err, ErrFieldCount) {
		t.Errorf("errors.Is(err, ErrFieldCount) = false, want true")
	}
}

// A repair strategy may pull further physical lines from the source; the
// source must end up positioned exactly after the lines it consumed.
func TestNode_Parse_RepairConsumesFurtherLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	content := "2,J\nohn Doe,35,40\n1,Full Record,23,50\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	reader, err := textio.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reader.Close()

	opts := DefaultOptions()
	repair := NewNode(fourColumnParsers(), opts, false, nil,
		func(n *Node, line *Line, fields []string) ([]string, error) {
			if len(fields) != 2 {
				return nil, fmt.Errorf("expected 2 fields, got %d: %w", len(fields), ErrFieldCount)
			}
			nextRaw, err := line.Source.ReadLine()
			if err != nil {
				return nil, err
			}
			nextFields, err := Split(nextRaw, n.Options())
			if err != nil {
				return nil, err
			}
			if len(nextFields) != 3 {
				return nil, fmt.Errorf("expected 3 fields, got %d: %w", len(nextFields), ErrFieldCount)
			}
			return []string{fields[0], fields[1] + nextFields[0], nextFields[1], nextFields[2]}, nil
		})
	entry := NewNode(fourColumnParsers(), opts, false, repair, nil)

	raw, err := reader.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := entry.Parse(&Line{Index: reader.Index(), Raw: raw, Source: reader})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := []string{"2", "John Doe", "35", "40"}
	if diff := cmp.Diff(want, parsed.Values); diff != "" {
		t.Errorf("repaired record mismatch (-want +got):\n%s", diff)
	}
	if reader.Index() != 2 {
		t.Errorf("reader index after repair = %d, want 2", reader.Index())
	}

	// The next logical record starts cleanly on line 3.
	raw, err = reader.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err = entry.Parse(&Line{Index: reader.Index(), Raw: raw, Source: reader})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want = []string{"1", "Full Record", "23", "50"}
	if diff := cmp.Diff(want, parsed.Values); diff != "" {
		t.Errorf("following record mismatch (-want +got):\n%s", diff)
	}
}
