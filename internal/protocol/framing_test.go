package protocol

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	body := []byte("scan head says hi")
	require.NoError(t, WriteFrame(&buf, body))

	// Length prefix is little-endian.
	require.Equal(t, []byte{byte(len(body)), 0, 0, 0}, buf.Bytes()[:4])

	got, err := ReadFrame(&buf, 1024)
	require.NoError(t, err)
	require.Equal(t, body, got)
}

func TestFrameEmptyBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, nil))
	got, err := ReadFrame(&buf, 16)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestReadFrameTooLarge(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, make([]byte, 100)))
	_, err := ReadFrame(&buf, 99)
	require.Error(t, err)
}

func TestReadFrameTruncatedBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, []byte("abcdef")))
	truncated := bytes.NewReader(buf.Bytes()[:7])
	_, err := ReadFrame(truncated, 1024)
	require.Error(t, err)
}

func TestReadFrameEOF(t *testing.T) {
	_, err := ReadFrame(bytes.NewReader(nil), 1024)
	require.ErrorIs(t, err, io.EOF)
}

func TestReadFrameInto(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, []byte{1, 2, 3}))

	scratch := make([]byte, 8)
	got, err := ReadFrameInto(&buf, scratch)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)

	require.NoError(t, WriteFrame(&buf, make([]byte, 9)))
	_, err = ReadFrameInto(&buf, scratch)
	require.Error(t, err, "body larger than scratch buffer")
}
