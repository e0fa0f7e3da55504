package parser

import "github.com/csvmend/csvmend/pkg/textio"

// Line is one physical line handed to the parser chain.
//
// Source is the live reader the line came from. A repair strategy may pull
// further physical lines from it while handling this one; every line it
// pulls is consumed for good, system-wide.
type Line struct {
	// Index is the 1-based position of the line in the input file.
	Index int

	// Raw is the line content without its trailing line break.
	Raw string

	// Source is the reader that produced the line.
	Source *textio.LineReader
}

// ParsedLine is the outcome of running one line through the chain.
type ParsedLine struct {
	Line

	// Header marks a leading line passed through verbatim.
	Header bool

	// Values holds the converted record, one value per column. Nil means
	// the line was skipped (or is a header).
	Values []string
}

// Skipped reports whether the line was classified as a non-fatal skip.
func (p *ParsedLine) Skipped() bool {
	return !p.Header && p.Values == nil
}
