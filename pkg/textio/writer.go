package textio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LineWriter writes a text file one line at a time.
type LineWriter struct {
	path   string
	file   *os.File
	writer *bufio.Writer
	lines  int
}

// Create creates (or truncates) path for line-oriented writing.
func Create(path string) (*LineWriter, error) {
	f, err := os.Create(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", path, err)
	}

	return &LineWriter{path: path, file: f, writer: bufio.NewWriter(f)}, nil
}

// WriteLine writes line, appending a line break when it has none.
func (w *LineWriter) WriteLine(line string) error {
	if w.file == nil {
		return fmt.Errorf("writing %s: writer is closed", w.path)
	}

	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	if _, err := w.writer.WriteString(line); err != nil {
		return fmt.Errorf("writing %s: %w", w.path, err)
	}

	w.lines++
	return nil
}

// Lines returns the number of lines written so far.
func (w *LineWriter) Lines() int {
	return w.lines
}

// Close flushes buffered output and closes the file. Closing twice is
// harmless.
func (w *LineWriter) Close() error {
	if w.file == nil {
		return nil
	}

	flushErr := w.writer.Flush()
	closeErr := w.file.Close()
	w.file = nil
	w.writer = nil

	if flushErr != nil {
		return fmt.Errorf("flushing %s: %w", w.path, flushErr)
	}
	return closeErr
}
