// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package streamio provides small, stateless stream transfer helpers layered
// over Go's standard io interfaces: bulk copy between byte streams, draining
// a stream into a byte slice, exact-length reads that loop on short reads,
// and lazy single-pass line iteration over a line-oriented text reader.
//
// All helpers are fully synchronous and blocking. The package holds no state
// between calls, never retries internally, never logs, and never closes a
// stream it did not create; every stream handle remains owned by the caller.
// Callers needing cancellation or timeouts wrap the underlying stream.
//
// # Error model
//
// Three error kinds cover every failure this package raises itself:
//   - ErrInvalidArgument: nil stream or buffer handle, empty buffer,
//     non-positive buffer size, byte-count request below 1.
//   - ErrIndexOutOfRange: an offset/count window outside the buffer bounds.
//   - ErrUnexpectedEndOfStream: the source ended before an exact-length read
//     was satisfied; the concrete *EndOfStreamError reports how many bytes
//     were still outstanding.
//
// Errors from the underlying streams propagate unchanged. A zero-length read
// ((0, nil)) is treated as end-of-data, the same as io.EOF.
package streamio
