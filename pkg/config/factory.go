package config

import (
	"fmt"

	"github.com/csvmend/csvmend/pkg/parser"
)

// NewFactory returns the parser factory a configuration describes: a
// declarative column chain when columns are present, first-line sniffing
// otherwise.
func NewFactory(cfg *Config) parser.FileParserFactory {
	if len(cfg.Columns) == 0 {
		return parser.DefaultFactory{}
	}
	return &columnsFactory{cfg: cfg}
}

// columnsFactory builds a strict one-line-per-record chain from declared
// columns.
type columnsFactory struct {
	cfg *Config
}

func (f *columnsFactory) Create(path string, opts parser.Options) (*parser.FileParser, error) {
	parsers := make([]parser.ValueParser, 0, len(f.cfg.Columns))
	for i := range f.cfg.Columns {
		vp, err := f.cfg.Columns[i].ValueParser()
		if err != nil {
			return nil, err
		}
		parsers = append(parsers, vp)
	}

	node := parser.NewNode(parsers, opts, opts.SkipIncorrectLines, nil, nil)
	return parser.NewFileParser(node, opts), nil
}

// ValueParser builds the converter the column declares.
func (c *ColumnConfig) ValueParser() (parser.ValueParser, error) {
	switch c.Type {
	case "", ColumnString:
		return &parser.StringParser{Strip: c.Strip}, nil
	case ColumnNumber:
		return &parser.NumberParser{Pattern: c.compiledPattern, Default: c.Default}, nil
	case ColumnDate:
		return &parser.DateParser{InputLayout: c.InputLayout, OutputLayout: c.OutputLayout}, nil
	case ColumnEcho:
		return parser.EchoParser{}, nil
	default:
		return nil, fmt.Errorf("unknown column type %q", c.Type)
	}
}
