// Package config provides configuration loading and validation for csvmend.
package config

import (
	"regexp"

	"github.com/csvmend/csvmend/pkg/parser"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Delimiter is the single character separating fields.
	Delimiter string `yaml:"delimiter"`

	// Quote is the single character enclosing fields.
	Quote string `yaml:"quote"`

	// HeaderLines is the number of leading lines copied verbatim.
	HeaderLines int `yaml:"header_lines"`

	// SkipIncorrectLines reports unparseable lines instead of aborting.
	SkipIncorrectLines bool `yaml:"skip_incorrect_lines"`

	// Columns optionally declares the output columns. When absent the
	// column layout is sniffed from the first data line.
	Columns []ColumnConfig `yaml:"columns,omitempty"`
}

// Column types accepted in a configuration file.
const (
	ColumnNumber = "number"
	ColumnString = "string"
	ColumnDate   = "date"
	ColumnEcho   = "echo"
)

// ColumnConfig declares one output column.
type ColumnConfig struct {
	Name string `yaml:"name"`

	// Type is one of number, string, date or echo. Empty means string.
	Type string `yaml:"type"`

	// Pattern overrides the numeric pattern for number columns.
	Pattern string `yaml:"pattern,omitempty"`

	// Default is substituted when a number column fails to match.
	Default string `yaml:"default,omitempty"`

	// Strip lists symbols removed from string columns.
	Strip []string `yaml:"strip,omitempty"`

	// InputLayout and OutputLayout are Go time layouts for date columns.
	InputLayout  string `yaml:"input_layout,omitempty"`
	OutputLayout string `yaml:"output_layout,omitempty"`

	// compiledPattern is populated during validation.
	compiledPattern *regexp.Regexp
}

// CompiledPattern returns the pre-compiled numeric pattern, or nil when
// the column declares none.
func (c *ColumnConfig) CompiledPattern() *regexp.Regexp {
	return c.compiledPattern
}

// Options converts the configuration to parser options.
func (c *Config) Options() parser.Options {
	opts := parser.DefaultOptions()
	opts.HeaderLines = c.HeaderLines
	opts.SkipIncorrectLines = c.SkipIncorrectLines

	if c.Delimiter != "" {
		opts.Delimiter = []rune(c.Delimiter)[0]
	}
	if c.Quote != "" {
		opts.Quote = []rune(c.Quote)[0]
	}

	return opts
}
