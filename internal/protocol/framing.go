package protocol

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Both the control and data streams frame every message as a little-endian
// uint32 length followed by that many body bytes, matching the byte order
// of the FlatBuffers bodies the control stream carries.

// WriteFrame writes one framed message.
func WriteFrame(w io.Writer, body []byte) error {
	var prefix [4]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(body)))
	if _, err := w.Write(prefix[:]); err != nil {
		return fmt.Errorf("write frame length: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("write frame body: %w", err)
	}
	return nil
}

// ReadFrame reads one framed message, rejecting frames larger than max.
func ReadFrame(r io.Reader, max uint32) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(prefix[:])
	if n > max {
		return nil, fmt.Errorf("frame length %d exceeds limit %d", n, max)
	}
	body := make([]byte, n)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	return body, nil
}

// ReadFrameInto reads one framed message into buf and returns the body
// slice. The receive loop uses this to avoid a per-datagram allocation.
func ReadFrameInto(r io.Reader, buf []byte) ([]byte, error) {
	var prefix [4]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return nil, err
	}
	n := binary.LittleEndian.Uint32(prefix[:])
	if n > uint32(len(buf)) {
		return nil, fmt.Errorf("frame length %d exceeds buffer %d", n, len(buf))
	}
	if _, err := io.ReadFull(r, buf[:n]); err != nil {
		return nil, fmt.Errorf("read frame body: %w", err)
	}
	return buf[:n], nil
}
