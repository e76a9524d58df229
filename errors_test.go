package scanhead

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCodeMapping(t *testing.T) {
	require.Equal(t, CodeNone, ErrorCode(nil))
	require.Equal(t, CodeNotConnected, ErrorCode(ErrNotConnected))
	require.Equal(t, CodeScanning, ErrorCode(ErrScanning))
	require.Equal(t, CodeVersionCompatibility, ErrorCode(ErrVersionCompatibility))
	require.Equal(t, CodeNoMoreRoom, ErrorCode(ErrNoMoreRoom))

	// Wrapped errors still resolve to their sentinel's code.
	wrapped := fmt.Errorf("connect head 7: %w", ErrNetwork)
	require.Equal(t, CodeNetwork, ErrorCode(wrapped))

	// Anything outside the closed set is Unknown.
	require.Equal(t, CodeUnknown, ErrorCode(fmt.Errorf("unrelated failure")))
}

func TestCodeErrorMapping(t *testing.T) {
	require.NoError(t, CodeError(CodeNone))
	require.ErrorIs(t, CodeError(CodeInternal), ErrInternal)
	require.ErrorIs(t, CodeError(CodeNotDiscovered), ErrNotDiscovered)

	// Codes outside the known range collapse to Unknown rather than
	// being trusted.
	require.ErrorIs(t, CodeError(Code(-99)), ErrUnknown)
	require.ErrorIs(t, CodeError(Code(7)), ErrUnknown)
}

func TestCodeRoundTrip(t *testing.T) {
	for code, sentinel := range codeToErr {
		require.Equal(t, code, ErrorCode(sentinel))
		require.ErrorIs(t, CodeError(code), sentinel)
	}
}
