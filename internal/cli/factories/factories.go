// Package factories resolves parser factories named on the command line.
//
// The parsing engine only ever receives a constructed FileParserFactory
// value; locating one - whether from the built-in registry or from an
// externally supplied plugin file - happens entirely in this layer.
package factories

import (
	"fmt"
	"plugin"
	"sort"

	"github.com/csvmend/csvmend/pkg/parser"
)

// registry holds the built-in factories selectable by name.
var registry = map[string]parser.FileParserFactory{
	"default": parser.DefaultFactory{},
}

// Register adds a named factory. Later registrations win.
func Register(name string, factory parser.FileParserFactory) {
	registry[name] = factory
}

// Lookup returns the factory registered under name.
func Lookup(name string) (parser.FileParserFactory, error) {
	if factory, ok := registry[name]; ok {
		return factory, nil
	}
	return nil, fmt.Errorf("unknown parser factory %q (available: %v)", name, Names())
}

// Names returns the registered factory names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFromFile loads a FileParserFactory from a Go plugin built with
// -buildmode=plugin. The plugin must export a symbol named ParserFactory
// that implements (or points to) parser.FileParserFactory.
func LoadFromFile(path string) (parser.FileParserFactory, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening parser factory plugin %s: %w", path, err)
	}

	sym, err := p.Lookup("ParserFactory")
	if err != nil {
		return nil, fmt.Errorf("loading parser factory from %s: %w", path, err)
	}

	// Exported plugin variables surface as pointers to their type.
	switch factory := sym.(type) {
	case parser.FileParserFactory:
		return factory, nil
	case *parser.FileParserFactory:
		return *factory, nil
	default:
		return nil, fmt.Errorf("%s: symbol ParserFactory does not implement FileParserFactory", path)
	}
}
