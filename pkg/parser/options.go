// Package parser implements the recovery parsing engine: a tokenizer,
// typed value parsers, and a chain of line parsers that can pull further
// physical lines from the input to reconstruct one logical record.
package parser

// Options is the shared, read-only parsing configuration threaded through
// every chain node.
type Options struct {
	// HeaderLines is the number of leading lines passed through verbatim.
	HeaderLines int

	// Delimiter separates fields outside quoted spans.
	Delimiter rune

	// Quote delimits spans in which the delimiter loses its meaning.
	Quote rune

	// SkipIncorrectLines makes factory-built nodes skip lines they cannot
	// parse instead of aborting the run.
	SkipIncorrectLines bool
}

// DefaultOptions returns the conventional CSV configuration: one header
// line, comma-delimited, double-quoted fields, incorrect lines skipped.
func DefaultOptions() Options {
	return Options{
		HeaderLines:        1,
		Delimiter:          ',',
		Quote:              '"',
		SkipIncorrectLines: true,
	}
}
