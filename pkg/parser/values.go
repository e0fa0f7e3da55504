package parser

import (
	"regexp"
	"strings"
	"time"
)

// ValueParser converts one raw field string into its cleaned value.
// Implementations are stateless and reusable across lines; the chain
// treats them polymorphically through this single method.
type ValueParser interface {
	Parse(raw string) (string, error)
}

// defaultNumberPattern accepts values beginning with digits, which keeps
// grouped amounts like "10,000" and decimals like "0.1" parseable.
var defaultNumberPattern = regexp.MustCompile(`^\d+`)

// NumberParser validates numeric fields against a pattern.
// The zero value uses the default integer pattern and no default value.
type NumberParser struct {
	// Pattern overrides the default numeric pattern when non-nil.
	Pattern *regexp.Regexp

	// Default is substituted when the raw text does not match. When empty
	// a mismatch is a *ValueError.
	Default string
}

func (p *NumberParser) Parse(raw string) (string, error) {
	pattern := p.Pattern
	if pattern == nil {
		pattern = defaultNumberPattern
	}

	if pattern.MatchString(raw) {
		return raw, nil
	}

	if p.Default != "" {
		return p.Default, nil
	}

	return "", &ValueError{Raw: raw, Msg: "is not a number"}
}

// StringParser cleans free-text fields by dropping unwanted symbols and
// trimming surrounding space. The zero value strips backslashes.
type StringParser struct {
	// Strip lists symbols removed from the value. Nil means backslashes.
	Strip []string
}

func (p *StringParser) Parse(raw string) (string, error) {
	strip := p.Strip
	if strip == nil {
		strip = []string{`\`}
	}

	for _, symbol := range strip {
		raw = strings.ReplaceAll(raw, symbol, "")
	}

	return strings.TrimSpace(raw), nil
}

// DateParser normalizes date fields from an input layout to an output
// layout. The zero value reads and writes ISO dates (2006-01-02).
type DateParser struct {
	// InputLayout is the Go time layout the raw value is parsed with.
	InputLayout string

	// OutputLayout is the layout the value is rendered with. Empty means
	// same as InputLayout.
	OutputLayout string
}

func (p *DateParser) Parse(raw string) (string, error) {
	input := p.InputLayout
	if input == "" {
		input = "2006-01-02"
	}

	output := p.OutputLayout
	if output == "" {
		output = input
	}

	t, err := time.Parse(input, strings.TrimSpace(raw))
	if err != nil {
		return "", &ValueError{Raw: raw, Msg: "is not a date"}
	}

	return t.Format(output), nil
}

// EchoParser returns the raw value unchanged.
type EchoParser struct{}

func (EchoParser) Parse(raw string) (string, error) {
	return raw, nil
}
