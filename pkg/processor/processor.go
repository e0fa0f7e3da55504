// Package processor turns parsed records into a cleaned output file:
// every field quoted, one record per line, header rows copied verbatim,
// skipped lines reported on a diagnostic stream.
package processor

// ValueProcessor transforms one converted field before it is written.
type ValueProcessor interface {
	Process(value string) (string, error)
}

// EchoProcessor passes values through unchanged.
type EchoProcessor struct{}

func (EchoProcessor) Process(value string) (string, error) {
	return value, nil
}
