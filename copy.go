// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio

import (
	"io"
)

// DefaultBufferSize is the transfer window used when the caller supplies
// neither a buffer nor a buffer size.
const DefaultBufferSize = 8192

// Buffer is the default stack buffer used by Copy when none is supplied.
type Buffer [DefaultBufferSize]byte

// Copy copies from src to dst until src signals end-of-data, then returns the
// number of bytes written.
//
// End-of-data is either io.EOF or a zero-length read ((0, nil)); both
// terminate the copy successfully. Any other error from either stream is
// returned unchanged. A write accepting fewer bytes than it was given without
// an error is reported as io.ErrShortWrite.
//
// If src implements WriterTo or dst implements ReaderFrom, the transfer is
// delegated to that fast path and no intermediate buffer is allocated.
//
// A nil dst or src fails with ErrInvalidArgument before any byte moves.
func Copy(dst Writer, src Reader) (written int64, err error) {
	if dst == nil || src == nil {
		return 0, ErrInvalidArgument
	}
	return copyBuffer(dst, src, nil)
}

// CopyBuffer is like Copy but stages through buf if needed.
// If buf is nil, a stack buffer is used.
// A non-nil buf of zero length fails with ErrInvalidArgument.
func CopyBuffer(dst Writer, src Reader, buf []byte) (written int64, err error) {
	if dst == nil || src == nil {
		return 0, ErrInvalidArgument
	}
	if buf != nil && len(buf) == 0 {
		return 0, ErrInvalidArgument
	}
	return copyBuffer(dst, src, buf)
}

// CopySize is like Copy but allocates a transfer buffer of bufferSize bytes.
// A bufferSize below 1 fails with ErrInvalidArgument.
func CopySize(dst Writer, src Reader, bufferSize int) (written int64, err error) {
	if dst == nil || src == nil {
		return 0, ErrInvalidArgument
	}
	if bufferSize < 1 {
		return 0, ErrInvalidArgument
	}
	return copyBuffer(dst, src, make([]byte, bufferSize))
}

// copyBuffer is the transfer engine shared by the Copy and ReadAll families.
// Callers have already validated dst, src and buf.
func copyBuffer(dst Writer, src Reader, buf []byte) (written int64, err error) {
	if wt, ok := src.(WriterTo); ok {
		written, err = wt.WriteTo(dst)
		if err == io.EOF {
			err = nil
		}
		return written, err
	}
	if rf, ok := dst.(ReaderFrom); ok {
		written, err = rf.ReadFrom(src)
		if err == io.EOF {
			err = nil
		}
		return written, err
	}

	var local Buffer
	if buf == nil {
		buf = local[:]
	}

	for {
		nr, er := src.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[:nr])
			if nw > 0 {
				written += int64(nw)
			}
			if ew != nil {
				return written, ew
			}
			if nw != nr {
				return written, io.ErrShortWrite
			}
		}

		if er != nil {
			if er == io.EOF {
				return written, nil
			}
			return written, er
		}

		if nr == 0 {
			return written, nil
		}
	}
}
