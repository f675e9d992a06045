// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// LineReader is the line-oriented text capability the line helpers consume.
//
// ReadLine returns the next line with its terminator stripped, or io.EOF when
// no more data is available. End-of-stream is signaled by the error, never by
// an empty-string line: an empty line in the input is a valid "" result with
// a nil error. A final line without a trailing terminator is still a line.
type LineReader interface {
	ReadLine() (string, error)
}

// NewLineReader adapts an io.Reader into a LineReader using buffered reads.
// Both "\n" and "\r\n" terminate a line; the terminator is stripped.
//
// The adapter reads ahead, so the underlying reader should not be used
// directly once line reading has begun. If the underlying reader fails after
// producing part of a line, that partial line is delivered first and the
// failure surfaces on the following call.
func NewLineReader(r io.Reader) LineReader {
	if r == nil {
		return nil
	}
	return &lineReader{br: bufio.NewReader(r)}
}

type lineReader struct {
	br   *bufio.Reader
	eof  bool
	fail error
}

func (lr *lineReader) ReadLine() (string, error) {
	if lr.fail != nil {
		return "", lr.fail
	}
	if lr.eof {
		return "", io.EOF
	}
	line, err := lr.br.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			lr.eof = true
			if line == "" {
				return "", io.EOF
			}
			// Unterminated final line.
			return trimLineEnding(line), nil
		}
		// Data accumulated before the failure is delivered first, as a
		// line; the error surfaces on the next call and stays sticky.
		lr.fail = err
		if line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Lines returns a lazy, forward-only, single-pass iterator over the lines of
// r. Advancing the iterator consumes the underlying reader; the sequence is
// not restartable.
//
// A nil r fails immediately with ErrInvalidArgument, before any element is
// produced.
func Lines(r LineReader) (*LineIterator, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}
	return &LineIterator{r: r}, nil
}

// ReadLines is shorthand for Lines(NewLineReader(r)).
func ReadLines(r io.Reader) (*LineIterator, error) {
	if r == nil {
		return nil, ErrInvalidArgument
	}
	return Lines(NewLineReader(r))
}

// LineIterator iterates lines pulled on demand from a LineReader, in the
// manner of bufio.Scanner: Next advances, Text reports the current line, and
// Err reports the first reader failure once iteration stops.
type LineIterator struct {
	r    LineReader
	text string
	err  error
	done bool
}

// Next advances to the next line. It returns false when the reader signals
// end-of-stream or fails; after it returns false, it keeps returning false.
func (it *LineIterator) Next() bool {
	if it.done {
		return false
	}
	line, err := it.r.ReadLine()
	if err != nil {
		it.done = true
		if err != io.EOF {
			it.err = err
		}
		return false
	}
	it.text = line
	return true
}

// Text returns the line produced by the last successful Next.
func (it *LineIterator) Text() string { return it.text }

// Err returns the first non-EOF error encountered by Next, if any.
// End-of-stream is not an error.
func (it *LineIterator) Err() error { return it.err }

// All exposes the remaining lines as a range-over-func sequence:
//
//	for line := range it.All() { ... }
//
// The sequence shares the iterator's single pass; breaking out of the range
// leaves the iterator positioned after the last yielded line.
func (it *LineIterator) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it.Next() {
			if !yield(it.text) {
				return
			}
		}
	}
}
