// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio

import (
	"errors"
)

// Outcome classifies an operation result by streamio's error kinds.
//
// OutcomeOK:              success.
// OutcomeInvalidArgument: the call was malformed; no I/O happened.
// OutcomeOutOfRange:      the buffer window was out of bounds; no I/O happened.
// OutcomeEndOfStream:     the source ended before an exact read was satisfied.
// OutcomeFailure:         any other error (a failure of the underlying stream).
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeInvalidArgument
	OutcomeOutOfRange
	OutcomeEndOfStream
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeInvalidArgument:
		return "InvalidArgument"
	case OutcomeOutOfRange:
		return "OutOfRange"
	case OutcomeEndOfStream:
		return "EndOfStream"
	default:
		return "Failure"
	}
}

// IsInvalidArgument reports whether err is an ErrInvalidArgument.
// It returns true for the sentinel and wrappers (via errors.Is).
func IsInvalidArgument(err error) bool { return errors.Is(err, ErrInvalidArgument) }

// IsOutOfRange reports whether err is an ErrIndexOutOfRange, including
// wrapped forms.
func IsOutOfRange(err error) bool { return errors.Is(err, ErrIndexOutOfRange) }

// IsUnexpectedEndOfStream reports whether err carries the early-end-of-stream
// kind: ErrUnexpectedEndOfStream, *EndOfStreamError, or wrappers of either.
func IsUnexpectedEndOfStream(err error) bool { return errors.Is(err, ErrUnexpectedEndOfStream) }

// IsUsage reports whether err is a caller mistake rather than a stream
// condition: either ErrInvalidArgument or ErrIndexOutOfRange. Usage errors
// are raised before any byte is transferred.
func IsUsage(err error) bool { return IsInvalidArgument(err) || IsOutOfRange(err) }

// Classify maps err to an Outcome. Use when a compact switch is preferred.
//
// Classification depends solely on the error value the caller passes; errors
// from the underlying stream classify as OutcomeFailure.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if IsInvalidArgument(err) {
		return OutcomeInvalidArgument
	}
	if IsOutOfRange(err) {
		return OutcomeOutOfRange
	}
	if IsUnexpectedEndOfStream(err) {
		return OutcomeEndOfStream
	}
	return OutcomeFailure
}
