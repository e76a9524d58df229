package scanhead

import (
	"encoding/binary"
	"errors"
	"io"
	"net"
	"time"

	"github.com/millvision/scanhead/internal/monitoring"
	"github.com/millvision/scanhead/internal/protocol"
)

// invalidWireXY is the int16 sentinel the head uses for points with no
// measurement; it maps to InvalidXY in assembled profiles.
const invalidWireXY = int16(-32768)

// resetAssembly clears the in-flight profile and the receive counters.
func (h *Head) resetAssembly() {
	h.recvMu.Lock()
	h.cur = nil
	h.curAlign = nil
	h.curRecv = 0
	h.curExpect = 0
	h.lastSource = 0
	h.lastStamp = 0
	h.packetsReceived = 0
	h.completeProfiles = 0
	h.recvMu.Unlock()
}

// receiveMain is the per-head receiver: it owns the data stream, decodes
// framed datagrams and assembles profiles until the head disconnects. A
// one second read deadline bounds each read so shutdown is observed even
// on an idle stream.
func (h *Head) receiveMain(conn net.Conn, done chan struct{}) {
	defer close(done)
	buf := make([]byte, protocol.MaxPacketSize)

	for h.recvActive.Load() {
		if err := conn.SetReadDeadline(time.Now().Add(time.Second)); err != nil {
			return
		}

		body, err := protocol.ReadFrameInto(conn, buf)
		if err != nil {
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				continue
			}
			if !h.recvActive.Load() || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return
			}
			monitoring.Logf("scan head %d: data stream error: %v", h.serial, err)
			return
		}

		if len(body) < 2 || binary.BigEndian.Uint16(body) != protocol.ProfileMagic {
			// Not a profile datagram; this client ignores everything else.
			continue
		}
		h.processProfile(body)
	}
}

// processProfile folds one profile datagram into the in-flight profile.
// Profiles are keyed by (source, timestamp): seeing a new key publishes
// whatever was assembling, complete or not, so delivery order follows
// completion order.
func (h *Head) processProfile(body []byte) {
	p, err := protocol.ParsePacket(body)
	if err != nil {
		// Malformed datagram; drop rather than poison the assembly.
		return
	}

	h.recvMu.Lock()
	defer h.recvMu.Unlock()

	h.packetsReceived++

	source := p.SourceID()
	if source != h.lastSource || p.TimestampNs != h.lastStamp {
		if h.cur != nil {
			// Partial profile, publish it despite the loss.
			h.cur.PacketsReceived = h.curRecv
			h.cur.PacketsExpected = h.curExpect
			h.buffer.Push(h.cur)
		}

		h.lastSource = source
		h.lastStamp = p.TimestampNs
		h.curRecv = 0
		h.startProfileLocked(p)
	}
	if h.cur == nil {
		return
	}

	h.insertPacketLocked(p)
	h.curRecv++

	if h.curRecv == p.NumberDatagrams {
		h.cur.PacketsReceived = h.curRecv
		h.cur.PacketsExpected = p.NumberDatagrams
		h.buffer.Push(h.cur)
		h.cur = nil
		h.curAlign = nil
		h.curRecv = 0
		h.lastSource = 0
		h.lastStamp = 0
		h.completeProfiles++
	}
}

// startProfileLocked begins assembling the profile the datagram belongs
// to. Datagrams whose port pair has no alignment (unknown pairing) leave
// cur nil and are skipped until the next key change.
func (h *Head) startProfileLocked(p *protocol.Packet) {
	camera := Camera(h.spec.CameraPortToIDOrInvalid(uint32(p.CameraPort)))
	laser := Laser(h.spec.LaserPortToIDOrInvalid(uint32(p.LaserPort)))

	align := h.recvAlignments[pairKey{camera, laser}]
	if align == nil {
		h.cur = nil
		h.curAlign = nil
		h.curExpect = 0
		return
	}

	prof := newProfileShell()
	prof.HeadID = uint32(p.ScanHeadID)
	prof.Camera = camera
	prof.Laser = laser
	prof.TimestampNs = p.TimestampNs
	prof.Flags = uint32(p.Flags)
	prof.SequenceNumber = p.SequenceNumber
	prof.LaserOnTimeUs = uint32(p.LaserOnTimeUs)
	prof.Format = h.recvFormat
	if len(p.Encoders) > 0 {
		prof.EncoderValues = append(prof.EncoderValues, p.Encoders...)
	}

	h.cur = prof
	h.curAlign = align
	h.curExpect = p.NumberDatagrams
}

// insertPacketLocked places the datagram's points into the profile slots.
// Datagram k of N carries columns start + k*step + j*N*step; each point is
// converted to mill coordinates as it lands.
func (h *Head) insertPacketLocked(p *protocol.Packet) {
	mask := p.DataTypeMask

	switch {
	case mask&protocol.DataTypeBrightness != 0 && mask&protocol.DataTypeXY != 0:
		bl, ok := p.Layout(protocol.DataTypeBrightness)
		if !ok {
			return
		}
		xl, ok := p.Layout(protocol.DataTypeXY)
		if !ok {
			return
		}
		bsrc := p.Raw[bl.Offset:]
		xsrc := p.Raw[xl.Offset:]

		// Brightness and XY share step and value count.
		inc := p.NumberDatagrams * xl.Step
		idx := uint32(p.StartColumn) + p.DatagramPosition*xl.Step
		for n := uint32(0); n < xl.NumVals && idx < ProfileDataLen; n++ {
			x := int16(binary.BigEndian.Uint16(xsrc[4*n:]))
			y := int16(binary.BigEndian.Uint16(xsrc[4*n+2:]))
			if x != invalidWireXY && y != invalidWireXY {
				mx, my := h.curAlign.CameraToMill(int32(x), int32(y))
				h.cur.Data[idx] = Point{X: mx, Y: my, Brightness: int32(bsrc[n])}
				h.cur.DataValidXY++
				h.cur.DataValidBrightness++
			}
			idx += inc
		}

	case mask&protocol.DataTypeXY != 0:
		xl, ok := p.Layout(protocol.DataTypeXY)
		if !ok {
			return
		}
		xsrc := p.Raw[xl.Offset:]

		inc := p.NumberDatagrams * xl.Step
		idx := uint32(p.StartColumn) + p.DatagramPosition*xl.Step
		for n := uint32(0); n < xl.NumVals && idx < ProfileDataLen; n++ {
			x := int16(binary.BigEndian.Uint16(xsrc[4*n:]))
			y := int16(binary.BigEndian.Uint16(xsrc[4*n+2:]))
			if x != invalidWireXY && y != invalidWireXY {
				mx, my := h.curAlign.CameraToMill(int32(x), int32(y))
				h.cur.Data[idx] = Point{X: mx, Y: my, Brightness: InvalidBrightness}
				h.cur.DataValidXY++
			}
			idx += inc
		}
	}
}
