package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/csvmend/csvmend/pkg/parser"
	"github.com/csvmend/csvmend/pkg/textio"
)

// FileProcessor drives a file parser over an input file and writes the
// cleaned rows to an output file.
type FileProcessor struct {
	parser *parser.FileParser
	line   *LineProcessor
	diag   io.Writer
	logger *slog.Logger
}

// NewFileProcessor creates a file processor. diag receives one message per
// skipped line; nil means stderr. The processor does not own diag and
// never closes it.
func NewFileProcessor(fileParser *parser.FileParser, line *LineProcessor, diag io.Writer) *FileProcessor {
	if diag == nil {
		diag = os.Stderr
	}
	return &FileProcessor{
		parser: fileParser,
		line:   line,
		diag:   diag,
		logger: slog.Default(),
	}
}

// LineProcessor returns the line processor used by this file processor.
func (p *FileProcessor) LineProcessor() *LineProcessor {
	return p.line
}

// Result summarizes one processing run.
type Result struct {
	// RunID correlates log entries of the run.
	RunID string

	// Lines is the number of physical lines read, repair consumption
	// included.
	Lines int

	// Records is the number of data rows written, headers excluded.
	Records int

	// Skipped is the number of lines reported to the diagnostic stream.
	Skipped int
}

// Process parses inputPath and writes the cleaned file to outputPath.
//
// Skipped lines are reported to the diagnostic stream and omitted from
// the output; a fatal parsing error aborts the run. Everything written
// before an abort remains valid, and the output file is flushed and
// closed on every exit path.
func (p *FileProcessor) Process(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	logger := p.logger.With("run_id", result.RunID, "input", inputPath, "output", outputPath)
	logger.Info("processing started")

	source, err := p.parser.Parse(inputPath)
	if err != nil {
		return result, err
	}
	defer source.Close()

	writer, err := textio.Create(outputPath)
	if err != nil {
		return result, err
	}

	processErr := p.process(ctx, source, writer, result, logger)
	result.Lines = source.LinesRead()

	if closeErr := writer.Close(); closeErr != nil && processErr == nil {
		processErr = closeErr
	}

	if processErr != nil {
		logger.Error("processing aborted", "error", processErr, "lines", result.Lines)
		return result, processErr
	}

	logger.Info("processing finished",
		"lines", result.Lines, "records", result.Records, "skipped", result.Skipped)
	return result, nil
}

func (p *FileProcessor) process(ctx context.Context, source *parser.RecordSource, writer *textio.LineWriter, result *Result, logger *slog.Logger) error {
	for {
		parsed, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if n := source.LinesRead(); n%1000 == 0 {
			logger.Info("progress", "lines", n)
		}

		if parsed.Skipped() {
			result.Skipped++
			fmt.Fprintf(p.diag, "Skipping line # %d: %s\n\n", parsed.Index, parsed.Raw)
			continue
		}

		row, ok, err := p.line.Process(parsed)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if err := writer.WriteLine(row); err != nil {
			return err
		}
		if !parsed.Header {
			result.Records++
		}
	}
}
