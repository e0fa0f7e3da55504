package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/csvmend/csvmend/pkg/textio"
)

// FileParserFactory assembles a file parser for one file shape. Callers
// needing custom repair supply their own implementation returning a chain
// of specialized nodes; how such an implementation is located is the CLI
// layer's business, the engine only ever sees the constructed value.
type FileParserFactory interface {
	Create(path string, opts Options) (*FileParser, error)
}

// DefaultFactory sniffs column types from the first data line and builds
// a strict one-line-per-record chain: a single node with one value parser
// per column and skipping behavior taken from opts.
type DefaultFactory struct{}

// Create infers the column layout of the file at path.
func (DefaultFactory) Create(path string, opts Options) (*FileParser, error) {
	reader, err := textio.Open(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	for i := 0; i < opts.HeaderLines; i++ {
		if _, err := reader.ReadLine(); err != nil {
			return nil, sniffErr(path, err)
		}
	}

	first, err := reader.ReadLine()
	if err != nil {
		return nil, sniffErr(path, err)
	}

	fields, err := Split(first, opts)
	if err != nil {
		return nil, fmt.Errorf("sniffing %s: %w", path, err)
	}

	parsers := SniffValueParsers(fields)
	if len(parsers) == 0 {
		return nil, fmt.Errorf("sniffing %s: %w", path, ErrNoColumns)
	}

	node := NewNode(parsers, opts, opts.SkipIncorrectLines, nil, nil)
	return NewFileParser(node, opts), nil
}

// SniffValueParsers infers a converter per field: numeric-looking fields
// get a NumberParser, everything else a StringParser.
func SniffValueParsers(fields []string) []ValueParser {
	number := &NumberParser{}
	str := &StringParser{}

	parsers := make([]ValueParser, 0, len(fields))
	for _, field := range fields {
		if _, err := number.Parse(field); err == nil {
			parsers = append(parsers, number)
		} else {
			parsers = append(parsers, str)
		}
	}

	return parsers
}

func sniffErr(path string, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("sniffing %s: %w", path, ErrNoColumns)
	}
	return err
}
