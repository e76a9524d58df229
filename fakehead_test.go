package scanhead

import (
	"encoding/binary"
	"net"
	"sync"
	"testing"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/millvision/scanhead/internal/protocol"
	"github.com/millvision/scanhead/internal/schema/client"
	"github.com/millvision/scanhead/internal/schema/server"
)

// fakeHead is an in-process scan head: it accepts the control and data
// streams on loopback, answers status requests and records every control
// message type it sees. Tests push datagrams through its data stream.
type fakeHead struct {
	t           *testing.T
	controlLn   net.Listener
	dataLn      net.Listener
	controlPort int
	dataPort    int

	minScanPeriodNs uint32

	mu          sync.Mutex
	seen        []client.MessageType
	windowMsgs  []capturedWindow
	dataConn    net.Conn
	controlDone chan struct{}
}

type capturedConstraint struct {
	x0, y0, x1, y1 int32
}

type capturedWindow struct {
	cameraPort  uint32
	laserPort   uint32
	constraints []capturedConstraint
}

func newFakeHead(t *testing.T) *fakeHead {
	t.Helper()

	controlLn, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	dataLn, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	f := &fakeHead{
		t:               t,
		controlLn:       controlLn,
		dataLn:          dataLn,
		controlPort:     controlLn.Addr().(*net.TCPAddr).Port,
		dataPort:        dataLn.Addr().(*net.TCPAddr).Port,
		minScanPeriodNs: 0,
		controlDone:     make(chan struct{}),
	}
	t.Cleanup(f.close)

	go f.serveControl()
	go f.serveData()
	return f
}

func (f *fakeHead) close() {
	f.controlLn.Close()
	f.dataLn.Close()
	f.mu.Lock()
	if f.dataConn != nil {
		f.dataConn.Close()
	}
	f.mu.Unlock()
}

func (f *fakeHead) serveData() {
	conn, err := f.dataLn.Accept()
	if err != nil {
		return
	}
	f.mu.Lock()
	f.dataConn = conn
	f.mu.Unlock()
}

func (f *fakeHead) serveControl() {
	defer close(f.controlDone)
	conn, err := f.controlLn.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		body, err := protocol.ReadFrame(conn, 0x10000)
		if err != nil {
			return
		}
		msg := client.GetRootAsMessageClient(body, 0)

		f.mu.Lock()
		f.seen = append(f.seen, msg.Type())
		if msg.Type() == client.MessageTypeWINDOW_CONFIGURATION {
			f.recordWindowLocked(msg)
		}
		f.mu.Unlock()

		if msg.Type() == client.MessageTypeSTATUS_REQUEST {
			if err := protocol.WriteFrame(conn, f.statusResponse()); err != nil {
				return
			}
		}
	}
}

func (f *fakeHead) recordWindowLocked(msg *client.MessageClient) {
	var tbl flatbuffers.Table
	if !msg.Data(&tbl) {
		return
	}
	var wc client.WindowConfigurationData
	wc.Init(tbl.Bytes, tbl.Pos)

	cw := capturedWindow{cameraPort: wc.CameraPort(), laserPort: wc.LaserPort()}
	var c client.Constraint
	for j := 0; j < wc.ConstraintsLength(); j++ {
		if wc.Constraints(&c, j) {
			cw.constraints = append(cw.constraints, capturedConstraint{c.X0(), c.Y0(), c.X1(), c.Y1()})
		}
	}
	f.windowMsgs = append(f.windowMsgs, cw)
}

func (f *fakeHead) statusResponse() []byte {
	b := flatbuffers.NewBuilder(256)

	server.CameraDataStart(b)
	server.CameraDataAddPort(b, 0)
	server.CameraDataAddPixelsInWindow(b, 1456)
	server.CameraDataAddTemperature(b, 38)
	cam := server.CameraDataEnd(b)

	server.StatusDataStartCameraDataVector(b, 1)
	b.PrependUOffsetT(cam)
	cams := b.EndVector(1)

	server.StatusDataStart(b)
	server.StatusDataAddGlobalTimeNs(b, uint64(time.Now().UnixNano()))
	server.StatusDataAddNumProfilesSent(b, 0)
	server.StatusDataAddMinScanPeriodNs(b, f.minScanPeriodNs)
	server.StatusDataAddCameraData(b, cams)
	status := server.StatusDataEnd(b)

	server.MessageServerStart(b)
	server.MessageServerAddType(b, server.MessageTypeSTATUS)
	server.MessageServerAddDataType(b, server.MessageDataStatusData)
	server.MessageServerAddData(b, status)
	b.Finish(server.MessageServerEnd(b))
	return b.FinishedBytes()
}

// sendDatagram frames a datagram onto the data stream.
func (f *fakeHead) sendDatagram(body []byte) {
	f.t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		f.mu.Lock()
		conn := f.dataConn
		f.mu.Unlock()
		if conn != nil {
			require.NoError(f.t, protocol.WriteFrame(conn, body))
			return
		}
		if time.Now().After(deadline) {
			f.t.Fatal("data stream never connected")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// messageTypes snapshots the control messages seen so far.
func (f *fakeHead) messageTypes() []client.MessageType {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]client.MessageType(nil), f.seen...)
}

func (f *fakeHead) sawMessage(t client.MessageType) bool {
	for _, m := range f.messageTypes() {
		if m == t {
			return true
		}
	}
	return false
}

func (f *fakeHead) waitForMessage(t client.MessageType, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if f.sawMessage(t) {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func (f *fakeHead) capturedWindows() []capturedWindow {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedWindow(nil), f.windowMsgs...)
}

// discoveredJS50WX fabricates the discovery record tests create heads
// from.
func discoveredJS50WX(serial uint32) Discovered {
	return Discovered{
		SerialNumber:  serial,
		IPAddr:        net.IPv4(127, 0, 0, 1),
		Type:          HeadTypeJS50WX,
		TypeStr:       "JS-50 WX",
		FirmwareMajor: 16,
		FirmwareMinor: 2,
		FirmwarePatch: 0,
	}
}

// newTestSystem builds a coordinator without running discovery and seeds
// it with fabricated discovery records.
func newTestSystem(t *testing.T, discovered ...Discovered) *System {
	t.Helper()
	s, err := newSystem(UnitsInches)
	require.NoError(t, err)
	for _, d := range discovered {
		s.discovered[d.SerialNumber] = d
	}
	return s
}

// createTestHead creates a head against a fake and points it at the
// fake's loopback ports.
func createTestHead(t *testing.T, s *System, f *fakeHead, serial, id uint32) *Head {
	t.Helper()
	h, err := s.CreateHead(serial, id)
	require.NoError(t, err)
	if f != nil {
		h.controlPort = f.controlPort
		h.dataPort = f.dataPort
	}
	return h
}

// buildTestDatagram assembles a profile datagram body the way a head
// would emit it on the data stream.
func buildTestDatagram(hdr protocol.Header, steps []uint16, encoders []int64, payload []byte) []byte {
	buf := make([]byte, protocol.HeaderSize+2*len(steps)+8*len(encoders)+len(payload))
	hdr.AppendTo(buf)
	off := protocol.HeaderSize
	for _, s := range steps {
		binary.BigEndian.PutUint16(buf[off:], s)
		off += 2
	}
	for _, e := range encoders {
		binary.BigEndian.PutUint64(buf[off:], uint64(e))
		off += 8
	}
	copy(buf[off:], payload)
	return buf
}
