// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio

import (
	"errors"
	"fmt"
	"io"
)

// streamio raises exactly three error kinds of its own. Everything else a
// helper returns came from the underlying stream and passes through unchanged.
//
// Mental model:
//   - ErrInvalidArgument: the call itself was malformed; nothing was read or
//     written before the error was raised.
//   - ErrIndexOutOfRange: the requested buffer window does not fit the buffer.
//   - ErrUnexpectedEndOfStream: the source ran out before an exact-length
//     read was satisfied; partial data may already be in the buffer.

// ErrInvalidArgument reports a nil stream or buffer handle, an empty buffer,
// a non-positive buffer size, or a byte-count request below 1.
var ErrInvalidArgument = errors.New("streamio: invalid argument")

// ErrIndexOutOfRange reports an offset/count window that falls outside the
// bounds of the supplied buffer.
var ErrIndexOutOfRange = errors.New("streamio: index out of range")

// ErrUnexpectedEndOfStream reports that the source signaled end-of-data
// before the requested exact byte count was satisfied. Concrete failures are
// returned as *EndOfStreamError, which wraps this sentinel.
var ErrUnexpectedEndOfStream = errors.New("streamio: unexpected end of stream")

// EndOfStreamError is the concrete error returned when an exact-length read
// hits end-of-data early. Missing is the number of bytes that were still
// outstanding when the source ended; it is always at least 1.
type EndOfStreamError struct {
	Missing int
}

func (e *EndOfStreamError) Error() string {
	if e.Missing == 1 {
		return fmt.Sprintf("%s: 1 byte still outstanding", ErrUnexpectedEndOfStream)
	}
	return fmt.Sprintf("%s: %d bytes still outstanding", ErrUnexpectedEndOfStream, e.Missing)
}

// Unwrap matches both the package sentinel and io.ErrUnexpectedEOF, so
// callers written against the standard library keep working.
func (e *EndOfStreamError) Unwrap() []error {
	return []error{ErrUnexpectedEndOfStream, io.ErrUnexpectedEOF}
}
