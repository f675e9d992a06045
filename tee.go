// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio

import "io"

// TeeReader returns a Reader that writes to w what it reads from r.
// It mirrors io.TeeReader with streamio's validation model:
//   - A nil r or w yields a reader whose Read fails with ErrInvalidArgument.
//   - If writing to w fails, that error is returned.
//   - Short writes to w are reported as io.ErrShortWrite.
func TeeReader(r Reader, w Writer) Reader {
	return teeReader{r: r, w: w}
}

type teeReader struct {
	r Reader
	w Writer
}

func (t teeReader) Read(p []byte) (n int, err error) {
	if t.r == nil || t.w == nil {
		return 0, ErrInvalidArgument
	}
	n, err = t.r.Read(p)
	if n > 0 {
		if nw, ew := t.w.Write(p[:n]); ew != nil {
			return nw, ew
		} else if nw != n {
			return nw, io.ErrShortWrite
		}
	}
	return n, err
}

// TeeWriter returns a Writer that duplicates all writes to primary and tee.
// If writing to primary returns an error or short count, it is returned
// immediately and tee is not written. Otherwise, the data is written to tee;
// if that write fails or is short, the error (or io.ErrShortWrite) is
// returned. A nil primary or tee yields a writer whose Write fails with
// ErrInvalidArgument.
func TeeWriter(primary Writer, tee Writer) Writer {
	return teeWriter{w: primary, tee: tee}
}

type teeWriter struct {
	w   Writer
	tee Writer
}

func (t teeWriter) Write(p []byte) (n int, err error) {
	if t.w == nil || t.tee == nil {
		return 0, ErrInvalidArgument
	}
	n, err = t.w.Write(p)
	if err != nil {
		return n, err
	}
	if n != len(p) {
		return n, io.ErrShortWrite
	}
	n2, err2 := t.tee.Write(p)
	if err2 != nil {
		return n2, err2
	}
	if n2 != len(p) {
		return n2, io.ErrShortWrite
	}
	return len(p), nil
}

// WriterToAdapter adapts a Reader to implement WriterTo using streamio.Copy.
type WriterToAdapter struct{ R Reader }

// Read forwards to the underlying Reader to preserve Reader semantics.
// A nil Reader fails with ErrInvalidArgument.
func (a WriterToAdapter) Read(p []byte) (int, error) {
	if a.R == nil {
		return 0, ErrInvalidArgument
	}
	return a.R.Read(p)
}

// WriteTo delegates to streamio.Copy, including its argument validation.
func (a WriterToAdapter) WriteTo(dst Writer) (int64, error) { return Copy(dst, a.R) }

// ReaderFromAdapter adapts a Writer to implement ReaderFrom using streamio.Copy.
type ReaderFromAdapter struct{ W Writer }

// Write forwards to the underlying Writer to preserve Writer semantics.
// A nil Writer fails with ErrInvalidArgument.
func (a ReaderFromAdapter) Write(p []byte) (int, error) {
	if a.W == nil {
		return 0, ErrInvalidArgument
	}
	return a.W.Write(p)
}

// ReadFrom delegates to streamio.Copy, including its argument validation.
func (a ReaderFromAdapter) ReadFrom(src Reader) (int64, error) { return Copy(a.W, src) }

// AsWriterTo wraps r so that it also implements WriterTo via streamio.Copy.
func AsWriterTo(r Reader) Reader { return WriterToAdapter{R: r} }

// AsReaderFrom wraps w so that it also implements ReaderFrom via streamio.Copy.
func AsReaderFrom(w Writer) Writer { return ReaderFromAdapter{W: w} }
