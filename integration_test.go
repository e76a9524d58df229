package scanhead

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/millvision/scanhead/internal/protocol"
	"github.com/millvision/scanhead/internal/schema/client"
)

// Full lifecycle against an in-process head: connect, configure, scan,
// stream, stop, disconnect.
func TestSystemLifecycle(t *testing.T) {
	fake := newFakeHead(t)
	s := newTestSystem(t, discoveredJS50WX(12345))
	h := createTestHead(t, s, fake, 12345, 0)

	n, err := s.Connect(5 * time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, s.IsConnected())
	require.True(t, h.IsConnected())

	// The handshake sent CONNECT, then windows, then status refreshes.
	require.True(t, fake.sawMessage(client.MessageTypeCONNECT))
	require.True(t, fake.sawMessage(client.MessageTypeWINDOW_CONFIGURATION))
	require.True(t, fake.sawMessage(client.MessageTypeSTATUS_REQUEST))

	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h, CameraA))

	require.NoError(t, s.StartScanning(2500, DataFormatXYBrightnessFull))
	require.True(t, s.IsScanning())
	require.True(t, fake.waitForMessage(client.MessageTypeSCAN_CONFIGURATION, time.Second))
	require.True(t, fake.waitForMessage(client.MessageTypeSCAN_START, time.Second))

	// Stream one four-datagram profile.
	val := func(col uint32) (int16, int16, byte) { return int16(col), 7, 3 }
	for pos := uint32(0); pos < 4; pos++ {
		fake.sendDatagram(xyBrightnessDatagram(9000, 1, pos, 4, 0, 1455, val))
	}
	require.Equal(t, 1, h.WaitUntilProfilesAvailable(1, 2*time.Second))
	profiles := h.Profiles(10)
	require.Len(t, profiles, 1)
	require.True(t, profiles[0].Complete())
	require.Equal(t, uint32(1456), profiles[0].DataValidXY)

	// The keep-alive task ticks while scanning.
	require.True(t, fake.waitForMessage(client.MessageTypeKEEP_ALIVE, 2500*time.Millisecond),
		"no keep alive observed while scanning")

	require.NoError(t, s.StopScanning())
	require.False(t, s.IsScanning())
	require.True(t, s.IsConnected())
	require.True(t, fake.waitForMessage(client.MessageTypeSCAN_STOP, time.Second))

	require.NoError(t, s.Disconnect())
	require.False(t, s.IsConnected())
	require.True(t, fake.waitForMessage(client.MessageTypeDISCONNECT, time.Second))
}

// Keep-alive stops after StopScanning.
func TestKeepAliveStopsWithScan(t *testing.T) {
	fake := newFakeHead(t)
	s := newTestSystem(t, discoveredJS50WX(12345))
	h := createTestHead(t, s, fake, 12345, 0)

	_, err := s.Connect(5 * time.Second)
	require.NoError(t, err)
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h, CameraA))
	require.NoError(t, s.StartScanning(2500, DataFormatXYBrightnessFull))

	require.True(t, fake.waitForMessage(client.MessageTypeKEEP_ALIVE, 2500*time.Millisecond))
	require.NoError(t, s.StopScanning())

	before := len(fake.messageTypes())
	time.Sleep(1500 * time.Millisecond)
	var keepAlivesAfter int
	for _, m := range fake.messageTypes()[before:] {
		if m == client.MessageTypeKEEP_ALIVE {
			keepAlivesAfter++
		}
	}
	require.Zero(t, keepAlivesAfter, "keep alive kept ticking after stop")
}

// Partial connect success leaves the system Disconnected; the caller can
// identify the survivor per head.
func TestPartialConnect(t *testing.T) {
	fake := newFakeHead(t)
	s := newTestSystem(t, discoveredJS50WX(100), discoveredJS50WX(200))

	good := createTestHead(t, s, fake, 100, 0)
	bad := createTestHead(t, s, nil, 200, 1)
	// Point the second head at ports nothing listens on.
	closedLn, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	badPort := closedLn.Addr().(*net.TCPAddr).Port
	closedLn.Close()
	bad.controlPort = badPort
	bad.dataPort = badPort

	n, err := s.Connect(time.Second)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.False(t, s.IsConnected(), "partial success must not advance the system")
	require.True(t, good.IsConnected())
	require.False(t, bad.IsConnected())
}

// Window constraints arrive in camera space and survive the round trip
// back to mill space within one 1/1000-unit count.
func TestWindowRoundTripThroughHead(t *testing.T) {
	fake := newFakeHead(t)
	s := newTestSystem(t, discoveredJS50WX(12345))
	h := createTestHead(t, s, fake, 12345, 0)

	w, err := NewScanWindowRectangular(30, -30, -30, 30)
	require.NoError(t, err)
	require.NoError(t, h.SetWindow(w))

	_, err = s.Connect(5 * time.Second)
	require.NoError(t, err)

	captured := fake.capturedWindows()
	require.NotEmpty(t, captured)

	h.mu.Lock()
	alignment := h.alignments[pairKey{CameraA, Laser1}]
	h.mu.Unlock()

	want := w.Constraints()
	for _, cw := range captured {
		require.Len(t, cw.constraints, len(want))
		for i, c := range cw.constraints {
			// Upstream orientation swapped the endpoints on the wire.
			mx1, my1 := alignment.CameraToMill(c.x0, c.y0)
			mx0, my0 := alignment.CameraToMill(c.x1, c.y1)

			requireWithin(t, int32(want[i].X0*1000), mx0)
			requireWithin(t, int32(want[i].Y0*1000), my0)
			requireWithin(t, int32(want[i].X1*1000), mx1)
			requireWithin(t, int32(want[i].Y1*1000), my1)
		}
	}
}

func requireWithin(t *testing.T, want, got int32) {
	t.Helper()
	diff := want - got
	if diff < 0 {
		diff = -diff
	}
	require.LessOrEqual(t, diff, int32(1), "want %d got %d", want, got)
}

// The status round trip populates the cached status and the window-driven
// minimum scan period.
func TestStatusRoundTrip(t *testing.T) {
	fake := newFakeHead(t)
	fake.minScanPeriodNs = 1_700_000
	s := newTestSystem(t, discoveredJS50WX(12345))
	h := createTestHead(t, s, fake, 12345, 0)

	_, err := s.Connect(5 * time.Second)
	require.NoError(t, err)

	st, err := h.Status()
	require.NoError(t, err)
	// Port 0 maps to camera B on the JS-50 WX.
	require.Equal(t, uint32(1456), st.CameraBPixelsInWindow)
	require.Equal(t, int32(38), st.CameraBTemp)

	require.Equal(t, uint32(1700), h.MinScanPeriodUs())
	require.Equal(t, st, h.LastStatus())

	h.ClearStatus()
	require.Equal(t, Status{}, h.LastStatus())
}

// A datagram with a frame length beyond the packet bound kills the
// receiver rather than poisoning assembly; disconnect still joins it.
func TestOversizeFrameDropsReceiver(t *testing.T) {
	fake := newFakeHead(t)
	s := newTestSystem(t, discoveredJS50WX(12345))
	createTestHead(t, s, fake, 12345, 0)

	_, err := s.Connect(5 * time.Second)
	require.NoError(t, err)

	fake.sendDatagram(make([]byte, protocol.MaxPacketSize+1))
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, s.Disconnect())
}
