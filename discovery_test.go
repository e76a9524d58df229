package scanhead

import (
	"errors"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/millvision/scanhead/internal/schema/client"
	"github.com/millvision/scanhead/internal/schema/server"
	"github.com/millvision/scanhead/internal/version"
)

func buildDiscoveryReply(serial, ip, headType, major, minor, patch uint32, typeStr string) []byte {
	b := flatbuffers.NewBuilder(128)
	ts := b.CreateString(typeStr)
	server.MessageServerDiscoveryStart(b)
	server.MessageServerDiscoveryAddSerialNumber(b, serial)
	server.MessageServerDiscoveryAddIpServer(b, ip)
	server.MessageServerDiscoveryAddType(b, headType)
	server.MessageServerDiscoveryAddVersionMajor(b, major)
	server.MessageServerDiscoveryAddVersionMinor(b, minor)
	server.MessageServerDiscoveryAddVersionPatch(b, patch)
	server.MessageServerDiscoveryAddTypeStr(b, ts)
	b.Finish(server.MessageServerDiscoveryEnd(b))
	return b.FinishedBytes()
}

func TestDecodeDiscoveryReply(t *testing.T) {
	raw := buildDiscoveryReply(12345, 0xC0A80105, uint32(HeadTypeJS50WX), 16, 3, 1, "JS-50 WX")

	d, ok := decodeDiscoveryReply(raw)
	require.True(t, ok)
	require.Equal(t, uint32(12345), d.SerialNumber)
	require.Equal(t, "192.168.1.5", d.IPAddr.String())
	require.Equal(t, HeadTypeJS50WX, d.Type)
	require.Equal(t, "JS-50 WX", d.TypeStr)
	require.Equal(t, uint32(16), d.FirmwareMajor)
	require.Equal(t, uint32(3), d.FirmwareMinor)
	require.Equal(t, uint32(1), d.FirmwarePatch)
}

func TestDecodeDiscoveryReplyGarbage(t *testing.T) {
	cases := [][]byte{
		nil,
		{},
		{0x01, 0x02, 0x03},
		make([]byte, 11),
		// Frame-sized noise that is not a FlatBuffers message.
		{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	}
	for i, raw := range cases {
		_, ok := decodeDiscoveryReply(raw)
		require.False(t, ok, "case %d should not decode", i)
	}
}

func TestDecodeDiscoveryReplyZeroSerial(t *testing.T) {
	raw := buildDiscoveryReply(0, 1, 1, 16, 0, 0, "JS-50 WX")
	_, ok := decodeDiscoveryReply(raw)
	require.False(t, ok)
}

// The discovery request carries the client's semantic version.
func TestBuildDiscoveryRequest(t *testing.T) {
	raw := buildDiscoveryRequest()
	msg := client.GetRootAsMessageClientDiscovery(raw, 0)
	require.Equal(t, uint32(version.Major), msg.VersionMajor())
	require.Equal(t, uint32(version.Minor), msg.VersionMinor())
	require.Equal(t, uint32(version.Patch), msg.VersionPatch())
}

// A discovery cycle with no responders is a successful empty result: zero
// heads, no error.
func TestDiscoverNoResponders(t *testing.T) {
	s := newTestSystem(t)

	n, err := s.Discover()
	if errors.Is(err, ErrNetwork) {
		// Hosts without a broadcast-capable interface cannot run the
		// cycle at all; that is the one legitimate failure.
		t.Skipf("no broadcast interface available: %v", err)
	}
	require.NoError(t, err)
	require.GreaterOrEqual(t, n, 0)
	require.Len(t, s.DiscoveredHeads(), n)
}

// Merging repeated discovery cycles keeps one record per serial.
func TestDiscoveredMerge(t *testing.T) {
	s := newTestSystem(t)
	s.discovered[100] = discoveredJS50WX(100)
	s.discovered[100] = discoveredJS50WX(100)
	s.discovered[200] = discoveredJS50WX(200)
	require.Len(t, s.DiscoveredHeads(), 2)
}
