package processor

import (
	"io"

	"github.com/csvmend/csvmend/pkg/parser"
)

// Factory creates file processors wired to a parser factory.
type Factory struct {
	// ParserFactory builds the parser chain. Nil means the sniffing
	// default factory.
	ParserFactory parser.FileParserFactory

	// Diag receives skip diagnostics. Nil means stderr.
	Diag io.Writer
}

// Create builds a file processor for inputPath: the parser chain comes
// from the parser factory, with one echo processor per output column.
func (f *Factory) Create(inputPath string, opts parser.Options) (*FileProcessor, error) {
	parserFactory := f.ParserFactory
	if parserFactory == nil {
		parserFactory = parser.DefaultFactory{}
	}

	fileParser, err := parserFactory.Create(inputPath, opts)
	if err != nil {
		return nil, err
	}

	arity := len(fileParser.LineParser().ValueParsers())
	processors := make([]ValueProcessor, arity)
	for i := range processors {
		processors[i] = EchoProcessor{}
	}

	line := NewLineProcessor(processors, opts, opts.SkipIncorrectLines)
	return NewFileProcessor(fileParser, line, f.Diag), nil
}
