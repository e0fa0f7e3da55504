package processor

import (
	"fmt"
	"strings"

	"github.com/csvmend/csvmend/pkg/parser"
)

// LineProcessor renders one parsed line as an output row.
type LineProcessor struct {
	processors []ValueProcessor
	opts       parser.Options
	skip       bool
}

// NewLineProcessor creates a line processor. The processor count fixes the
// expected record arity; when skip is true records of a different arity
// are dropped instead of failing the run.
func NewLineProcessor(processors []ValueProcessor, opts parser.Options, skip bool) *LineProcessor {
	return &LineProcessor{processors: processors, opts: opts, skip: skip}
}

// ValueProcessors returns the per-column processors.
func (p *LineProcessor) ValueProcessors() []ValueProcessor {
	return p.processors
}

// Process renders line as an output row. Header lines pass through
// verbatim. ok is false when the line produced no row.
func (p *LineProcessor) Process(line *parser.ParsedLine) (row string, ok bool, err error) {
	if line.Header {
		return line.Raw, true, nil
	}

	if len(line.Values) != len(p.processors) {
		if p.skip {
			return "", false, nil
		}
		return "", false, &parser.ParseError{
			Index: line.Index,
			Raw:   line.Raw,
			Err:   fmt.Errorf("expected %d values, got %d: %w", len(p.processors), len(line.Values), parser.ErrFieldCount),
		}
	}

	quote := string(p.opts.Quote)
	values := make([]string, 0, len(p.processors))
	for i, proc := range p.processors {
		value, err := proc.Process(line.Values[i])
		if err != nil {
			return "", false, fmt.Errorf("field %d: %w", i+1, err)
		}

		// Double embedded quotes so the row round-trips through Split.
		value = strings.ReplaceAll(value, quote, quote+quote)
		values = append(values, quote+value+quote)
	}

	return strings.Join(values, string(p.opts.Delimiter)), true, nil
}
