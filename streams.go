// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// IDE note: streamio re-exports (aliases) the io interfaces it consumes so
// that users can stay in the "streamio" namespace while reading documentation
// and navigating types. The contracts mirror the standard io expectations.

package streamio

import (
	"io"
)

// Reader is implemented by types that can read bytes into p.
//
// Read must return the number of bytes read (0 <= n <= len(p)) and any error
// encountered. A short read (n < len(p)) is normal and must be retried by
// callers needing an exact count, not treated as failure. streamio helpers
// treat a return of (0, nil) as end-of-data, the same as io.EOF.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is implemented by types that can write bytes from p.
//
// Write must return the number of bytes written (0 <= n <= len(p)) and any
// error encountered. If Write returns n < len(p), it must return a non-nil
// error (except in the special case of len(p) == 0).
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// Seeker is implemented by types that can set the offset for the next Read or
// Write. Seeking is optional for every streamio helper; none requires it.
//
// Seeker is an alias of io.Seeker.
type Seeker = io.Seeker

// ReaderFrom is an optional optimization for Writers.
//
// If implemented by a Writer, Copy-like helpers may call ReadFrom to transfer
// data from r more efficiently than a generic read/write loop.
//
// ReaderFrom is an alias of io.ReaderFrom.
type ReaderFrom = io.ReaderFrom

// WriterTo is an optional optimization for Readers.
//
// If implemented by a Reader, Copy-like helpers may call WriteTo to transfer
// data to w more efficiently than a generic read/write loop.
//
// WriterTo is an alias of io.WriterTo.
type WriterTo = io.WriterTo

// ReadWriter groups the basic Read and Write methods.
//
// ReadWriter is an alias of io.ReadWriter.
type ReadWriter = io.ReadWriter

// ReadCloser groups Read and Close. streamio never calls Close itself;
// stream lifetime belongs to the caller.
//
// ReadCloser is an alias of io.ReadCloser.
type ReadCloser = io.ReadCloser

// WriteCloser groups Write and Close.
//
// WriteCloser is an alias of io.WriteCloser.
type WriteCloser = io.WriteCloser

// Common sentinel errors re-exported for convenience.
//
// Note: streamio also defines its own error kinds (ErrInvalidArgument,
// ErrIndexOutOfRange, ErrUnexpectedEndOfStream); those are not part of the
// standard io set.
var (
	// EOF is returned by Read when no more input is available.
	// Functions should return EOF only to signal a graceful end of input.
	EOF = io.EOF

	// ErrShortWrite means a write accepted fewer bytes than requested and
	// returned no explicit error.
	ErrShortWrite = io.ErrShortWrite
)
