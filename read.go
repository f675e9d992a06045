// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio

import (
	"bytes"
	"io"
)

// ReadAll drains src fully, using Copy semantics, into a growable accumulator
// and returns the exact bytes read from src's current position to end-of-data.
//
// The accumulator is scoped to this call; the returned slice is freshly owned
// by the caller and carries no unused slack semantics (len == bytes read).
//
// A nil src fails with ErrInvalidArgument.
func ReadAll(src Reader) ([]byte, error) {
	if src == nil {
		return nil, ErrInvalidArgument
	}
	return readAll(src, nil)
}

// ReadAllBuffer is like ReadAll but stages the transfer through buf.
// If buf is nil, a stack buffer is used.
// A non-nil buf of zero length fails with ErrInvalidArgument.
func ReadAllBuffer(src Reader, buf []byte) ([]byte, error) {
	if src == nil {
		return nil, ErrInvalidArgument
	}
	if buf != nil && len(buf) == 0 {
		return nil, ErrInvalidArgument
	}
	return readAll(src, buf)
}

// ReadAllSize is like ReadAll but stages through a transfer buffer of
// bufferSize bytes. A bufferSize below 1 fails with ErrInvalidArgument.
func ReadAllSize(src Reader, bufferSize int) ([]byte, error) {
	if src == nil {
		return nil, ErrInvalidArgument
	}
	if bufferSize < 1 {
		return nil, ErrInvalidArgument
	}
	return readAll(src, make([]byte, bufferSize))
}

func readAll(src Reader, buf []byte) ([]byte, error) {
	var acc bytes.Buffer
	// Hide the accumulator's ReadFrom so the transfer goes through the
	// read/write loop: the zero-length-read stop condition and the caller's
	// buffer choice both apply.
	if _, err := copyBuffer(struct{ Writer }{&acc}, src, buf); err != nil {
		return nil, err
	}
	return acc.Bytes(), nil
}

// ReadExactlyAt reads precisely n bytes from src into buf[off:off+n],
// issuing repeated reads as needed: a short read is normal and is retried,
// never treated as failure.
//
// Preconditions:
//   - src and buf are non-nil, and n >= 1 (ErrInvalidArgument otherwise);
//   - 0 <= off < len(buf) and off+n <= len(buf) (ErrIndexOutOfRange otherwise).
//
// If src signals end-of-data (io.EOF or a zero-length read) before n bytes
// have accumulated, ReadExactlyAt fails with *EndOfStreamError reporting the
// outstanding byte count; bytes read so far remain in buf. A read returning
// data together with io.EOF counts the data first.
func ReadExactlyAt(src Reader, buf []byte, off, n int) error {
	if src == nil || buf == nil || n < 1 {
		return ErrInvalidArgument
	}
	if off < 0 || off >= len(buf) || n > len(buf)-off {
		return ErrIndexOutOfRange
	}

	total := 0
	for total < n {
		nr, err := src.Read(buf[off+total : off+n])
		if nr > 0 {
			total += nr
		}
		if total == n {
			return nil
		}
		if err != nil {
			if err == io.EOF {
				return &EndOfStreamError{Missing: n - total}
			}
			return err
		}
		if nr == 0 {
			return &EndOfStreamError{Missing: n - total}
		}
	}
	return nil
}

// ReadExactly reads precisely n bytes from src into a freshly allocated
// buffer of exactly n bytes and returns it. See ReadExactlyAt for the error
// contract; n below 1 fails with ErrInvalidArgument.
func ReadExactly(src Reader, n int) ([]byte, error) {
	if src == nil || n < 1 {
		return nil, ErrInvalidArgument
	}
	buf := make([]byte, n)
	if err := ReadExactlyAt(src, buf, 0, n); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadFull fills the entire buf from src, starting at offset 0. It is
// shorthand for ReadExactlyAt(src, buf, 0, len(buf)); an empty or nil buf
// fails with ErrInvalidArgument.
func ReadFull(src Reader, buf []byte) error {
	if src == nil || len(buf) == 0 {
		return ErrInvalidArgument
	}
	return ReadExactlyAt(src, buf, 0, len(buf))
}
