// ©E. Fontana 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamio_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/efontana/streamio"
)

func TestSemantics_ClassifyAndPredicates(t *testing.T) {
	sentinelErr := errors.New("sentinelErr")
	cases := []struct {
		name            string
		err             error
		wantInvalid     bool
		wantRange       bool
		wantEOS         bool
		wantUsage       bool
		wantOutcome     streamio.Outcome
		wantOutcomeText string
	}{
		{"nil", nil, false, false, false, false, streamio.OutcomeOK, "OK"},
		{"invalid", streamio.ErrInvalidArgument, true, false, false, true, streamio.OutcomeInvalidArgument, "InvalidArgument"},
		{"range", streamio.ErrIndexOutOfRange, false, true, false, true, streamio.OutcomeOutOfRange, "OutOfRange"},
		{"eos sentinel", streamio.ErrUnexpectedEndOfStream, false, false, true, false, streamio.OutcomeEndOfStream, "EndOfStream"},
		{"eos concrete", &streamio.EndOfStreamError{Missing: 3}, false, false, true, false, streamio.OutcomeEndOfStream, "EndOfStream"},
		{"sentinelErr", sentinelErr, false, false, false, false, streamio.OutcomeFailure, "Failure"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.wantInvalid, streamio.IsInvalidArgument(tc.err))
			require.Equal(t, tc.wantRange, streamio.IsOutOfRange(tc.err))
			require.Equal(t, tc.wantEOS, streamio.IsUnexpectedEndOfStream(tc.err))
			require.Equal(t, tc.wantUsage, streamio.IsUsage(tc.err))
			require.Equal(t, tc.wantOutcome, streamio.Classify(tc.err))
			require.Equal(t, tc.wantOutcomeText, streamio.Classify(tc.err).String())
		})
	}
}

func TestSemantics_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("op failed: %w", streamio.ErrInvalidArgument)
	require.True(t, streamio.IsInvalidArgument(wrapped))
	require.True(t, streamio.IsUsage(wrapped))
	require.Equal(t, streamio.OutcomeInvalidArgument, streamio.Classify(wrapped))

	double := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", streamio.ErrIndexOutOfRange))
	require.True(t, streamio.IsOutOfRange(double))
	require.Equal(t, streamio.OutcomeOutOfRange, streamio.Classify(double))
}

func TestOutcomeString_DefaultFailureBranch(t *testing.T) {
	require.Equal(t, "Failure", streamio.Outcome(255).String())
}

func TestEndOfStreamError_Message(t *testing.T) {
	cases := []struct {
		missing int
		want    string
	}{
		{1, "streamio: unexpected end of stream: 1 byte still outstanding"},
		{2, "streamio: unexpected end of stream: 2 bytes still outstanding"},
		{40, "streamio: unexpected end of stream: 40 bytes still outstanding"},
	}
	for _, tc := range cases {
		err := &streamio.EndOfStreamError{Missing: tc.missing}
		require.Equal(t, tc.want, err.Error())
	}
}

func TestEndOfStreamError_Unwrap(t *testing.T) {
	err := &streamio.EndOfStreamError{Missing: 5}
	require.ErrorIs(t, err, streamio.ErrUnexpectedEndOfStream)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.False(t, errors.Is(err, io.EOF))
}
