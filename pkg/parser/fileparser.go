package parser

import (
	"context"

	"github.com/csvmend/csvmend/pkg/textio"
)

// FileParser drives a line-parser chain over one input file.
type FileParser struct {
	entry LineParser
	opts  Options
}

// NewFileParser creates a file parser with entry as the first chain node
// invoked per logical record.
func NewFileParser(entry LineParser, opts Options) *FileParser {
	return &FileParser{entry: entry, opts: opts}
}

// LineParser returns the chain entry node.
func (p *FileParser) LineParser() LineParser {
	return p.entry
}

// Options returns the parser's options.
func (p *FileParser) Options() Options {
	return p.opts
}

// Parse opens path and returns a RecordSource yielding one ParsedLine per
// header line, logical record or skip. The caller owns the source and
// must close it.
func (p *FileParser) Parse(path string) (*RecordSource, error) {
	reader, err := textio.Open(path)
	if err != nil {
		return nil, err
	}

	return &RecordSource{
		reader:      reader,
		parser:      p.entry,
		headerLines: p.opts.HeaderLines,
	}, nil
}

// RecordSource iterates the logical records a chain produces over one
// file. It is safe for sequential use only; the underlying reader is
// exclusively owned by the source.
type RecordSource struct {
	reader      *textio.LineReader
	parser      LineParser
	headerLines int
}

// Next returns the next parsed line. It returns io.EOF once the file is
// exhausted. Each call consumes at least one physical line; repair nodes
// may consume several, and the next call starts cleanly after them.
func (s *RecordSource) Next(ctx context.Context) (*ParsedLine, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw, err := s.reader.ReadLine()
	if err != nil {
		return nil, err
	}

	line := &Line{Index: s.reader.Index(), Raw: raw, Source: s.reader}

	if line.Index <= s.headerLines {
		return &ParsedLine{Line: *line, Header: true}, nil
	}

	return s.parser.Parse(line)
}

// LinesRead returns the number of physical lines consumed so far,
// including lines pulled by repair nodes.
func (s *RecordSource) LinesRead() int {
	return s.reader.Index()
}

// Close releases the underlying reader.
func (s *RecordSource) Close() error {
	return s.reader.Close()
}
