// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio_test

import (
	"io"
)

// Scripted stream fakes shared by the package tests.

// errReader always fails with err without producing data.
type errReader struct{ err error }

func (e errReader) Read(p []byte) (int, error) { return 0, e.err }

// zeroThenNilReader produces a single (0, nil) read, then EOF.
type zeroThenNilReader struct{ called bool }

func (r *zeroThenNilReader) Read(p []byte) (int, error) {
	if r.called {
		return 0, io.EOF
	}
	r.called = true
	return 0, nil
}

// chunkReader serves data in chunks of at most chunk bytes per Read call,
// forcing short reads. chunk == 1 yields one byte at a time.
type chunkReader struct {
	data  []byte
	chunk int
	pos   int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if rem := len(r.data) - r.pos; n > rem {
		n = rem
	}
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}

// eofWithDataReader returns all of its data in one call together with io.EOF.
type eofWithDataReader struct {
	data []byte
	done bool
}

func (r *eofWithDataReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	r.done = true
	n := copy(p, r.data)
	return n, io.EOF
}

// scriptedReader replays a fixed sequence of (data, err) steps, then EOF.
type scriptedReader struct {
	steps []struct {
		b   []byte
		err error
	}
	i int
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	if s.i >= len(s.steps) {
		return 0, io.EOF
	}
	st := s.steps[s.i]
	s.i++
	if len(st.b) > 0 {
		n := copy(p, st.b)
		return n, nil
	}
	return 0, st.err
}

// shortWriter accepts at most limit bytes per call and reports no error.
type shortWriter struct{ limit int }

func (w shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n := w.limit
	if n > len(p) {
		n = len(p)
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}

// errWriter accepts n bytes, then fails with err.
type errWriter struct {
	n   int
	err error
}

func (w errWriter) Write(p []byte) (int, error) {
	n := w.n
	if n > len(p) {
		n = len(p)
	}
	return n, w.err
}

// devNull is a sink writer that discards all bytes.
type devNull struct{}

func (devNull) Write(p []byte) (int, error) { return len(p), nil }

// scriptedLineReader replays fixed (line, err) results.
type scriptedLineReader struct {
	steps []struct {
		line string
		err  error
	}
	i int
}

func (s *scriptedLineReader) ReadLine() (string, error) {
	if s.i >= len(s.steps) {
		return "", io.EOF
	}
	st := s.steps[s.i]
	s.i++
	return st.line, st.err
}
