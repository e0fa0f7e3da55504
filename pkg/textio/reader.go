// Package textio provides forward-only line readers and writers for text files.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// LineReader reads a text file one physical line at a time.
// It is strictly forward-only: no rewind, no peek. The line index is
// 1-based and increases by one for every line ever read.
type LineReader struct {
	path    string
	file    *os.File
	scanner *bufio.Scanner
	index   int
}

// Open opens path for forward-only line reading.
func Open(path string) (*LineReader, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening input file %s: %w", path, err)
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	return &LineReader{path: path, file: f, scanner: scanner}, nil
}

// ReadLine returns the next physical line without its trailing line break.
// It returns io.EOF once the file is exhausted; EOF is a normal terminal
// condition, not a failure.
func (r *LineReader) ReadLine() (string, error) {
	if r.file == nil {
		return "", fmt.Errorf("reading %s: reader is closed", r.path)
	}

	if r.scanner.Scan() {
		r.index++
		return r.scanner.Text(), nil
	}

	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", r.path, err)
	}

	return "", io.EOF
}

// Index returns the 1-based index of the line most recently read,
// or 0 when nothing has been read yet.
func (r *LineReader) Index() int {
	return r.index
}

// Path returns the path the reader was opened with.
func (r *LineReader) Path() string {
	return r.path
}

// Close releases the underlying file. Closing twice is harmless.
func (r *LineReader) Close() error {
	if r.file == nil {
		return nil
	}

	err := r.file.Close()
	r.file = nil
	r.scanner = nil
	return err
}
