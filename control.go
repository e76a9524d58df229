package scanhead

import (
	"fmt"
	"math"
	"net"
	"strconv"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/millvision/scanhead/internal/monitoring"
	"github.com/millvision/scanhead/internal/protocol"
	"github.com/millvision/scanhead/internal/schema/client"
	"github.com/millvision/scanhead/internal/schema/server"
)

const (
	// statusResponseMax bounds a STATUS response frame.
	statusResponseMax = 0x1000
	// profileResponseMax bounds a PROFILE response frame.
	profileResponseMax = 0x8000
	// imageResponseMax bounds an IMAGE response frame.
	imageResponseMax = 0x200000
)

// connect opens the control and data streams, starts the receiver and
// performs the connect handshake. The head is left disconnected on any
// failure.
func (h *Head) connect(timeout time.Duration) error {
	h.mu.Lock()
	if h.controlConn != nil {
		h.mu.Unlock()
		return ErrConnected
	}

	control, err := net.DialTimeout("tcp",
		net.JoinHostPort(h.ip.String(), strconv.Itoa(h.controlPort)), timeout)
	if err != nil {
		h.mu.Unlock()
		return fmt.Errorf("%w: dial control %s: %v", ErrNetwork, h.ip, err)
	}
	data, err := net.DialTimeout("tcp",
		net.JoinHostPort(h.ip.String(), strconv.Itoa(h.dataPort)), timeout)
	if err != nil {
		control.Close()
		h.mu.Unlock()
		return fmt.Errorf("%w: dial data %s: %v", ErrNetwork, h.ip, err)
	}

	if tcp, ok := data.(*net.TCPConn); ok {
		if err := tcp.SetReadBuffer(protocol.DataRecvBufferSize); err != nil {
			monitoring.Logf("scan head %d: failed to set data receive buffer to %d bytes: %v (some OSes clamp buffer sizes)",
				h.serial, protocol.DataRecvBufferSize, err)
		}
	}

	h.controlConn = control
	h.dataConn = data
	h.resetAssembly()
	h.recvActive.Store(true)
	h.recvDone = make(chan struct{})
	go h.receiveMain(data, h.recvDone)

	err = h.sendConnectLocked()
	h.mu.Unlock()

	if err == nil {
		_, err = h.Status()
	}
	if err != nil {
		h.disconnect()
		return err
	}
	return nil
}

// disconnect tells the head we are leaving, closes both streams and joins
// the receiver.
func (h *Head) disconnect() error {
	h.mu.Lock()
	if h.controlConn == nil {
		h.mu.Unlock()
		return ErrNotConnected
	}

	// Best effort: the head notices the close either way.
	err := h.sendSimpleLocked(client.MessageTypeDISCONNECT)

	h.recvActive.Store(false)
	h.controlConn.Close()
	h.controlConn = nil
	h.dataConn.Close()
	h.dataConn = nil
	h.scanning = false
	done := h.recvDone
	h.recvDone = nil
	h.mu.Unlock()

	if done != nil {
		<-done
	}
	return err
}

func (h *Head) writeControlLocked(body []byte) error {
	if h.controlConn == nil {
		return ErrNotConnected
	}
	if err := protocol.WriteFrame(h.controlConn, body); err != nil {
		return fmt.Errorf("%w: control send: %v", ErrInternal, err)
	}
	return nil
}

// sendSimpleLocked sends a message with no payload.
func (h *Head) sendSimpleLocked(t client.MessageType) error {
	b := h.builder
	b.Reset()
	client.MessageClientStart(b)
	client.MessageClientAddType(b, t)
	b.Finish(client.MessageClientEnd(b))
	return h.writeControlLocked(b.FinishedBytes())
}

func (h *Head) sendConnectLocked() error {
	b := h.builder
	b.Reset()
	client.ConnectDataStart(b)
	client.ConnectDataAddSerialNumber(b, h.serial)
	client.ConnectDataAddId(b, h.id)
	client.ConnectDataAddConnectionType(b, client.ConnectionTypeNORMAL)
	data := client.ConnectDataEnd(b)

	client.MessageClientStart(b)
	client.MessageClientAddType(b, client.MessageTypeCONNECT)
	client.MessageClientAddDataType(b, client.MessageDataConnectData)
	client.MessageClientAddData(b, data)
	b.Finish(client.MessageClientEnd(b))
	return h.writeControlLocked(b.FinishedBytes())
}

func (h *Head) sendKeepAlive() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.controlConn == nil {
		return ErrNotConnected
	}
	return h.sendSimpleLocked(client.MessageTypeKEEP_ALIVE)
}

// cameraOrientationLocked derives the orientation flag a camera port needs
// given the cable orientation: the port on the cable side reads out with
// the cable, the other against it.
func (h *Head) cameraOrientationLocked(cameraPort uint32) client.CameraOrientation {
	if h.spec.CameraPortCableUpstream == cameraPort {
		if h.cable == CableOrientationUpstream {
			return client.CameraOrientationUPSTREAM
		}
		return client.CameraOrientationDOWNSTREAM
	}
	if h.cable == CableOrientationUpstream {
		return client.CameraOrientationDOWNSTREAM
	}
	return client.CameraOrientationUPSTREAM
}

// sendWindowLocked transmits the window for every (camera, laser) pair, or
// for a single camera's pair when filter is not CameraInvalid. Constraints
// are converted from mill to camera coordinates first, and their endpoints
// swap for upstream cable orientation.
func (h *Head) sendWindowLocked(filter Camera) error {
	for i := 0; i < h.pairCount(); i++ {
		key, ok := h.pairAt(i)
		if !ok {
			continue
		}
		if filter != CameraInvalid && key.camera != filter {
			continue
		}

		cameraPort := h.spec.CameraIDToPort(uint32(key.camera))
		laserPort := h.spec.LaserIDToPort(uint32(key.laser))
		if cameraPort < 0 || laserPort < 0 {
			return fmt.Errorf("%w: no port mapping for %v / %v", ErrInternal, key.camera, key.laser)
		}
		alignment := h.alignments[key]
		window := h.windows[key]

		b := h.builder
		b.Reset()

		constraints := window.Constraints()
		offs := make([]flatbuffers.UOffsetT, 0, len(constraints))
		for _, c := range constraints {
			// Window constraints are authored in scan system units;
			// the wire carries 1/1000 units in camera space.
			x0, y0 := alignment.MillToCamera(
				int32(math.Round(c.X0*1000)), int32(math.Round(c.Y0*1000)))
			x1, y1 := alignment.MillToCamera(
				int32(math.Round(c.X1*1000)), int32(math.Round(c.Y1*1000)))
			if h.cable != CableOrientationDownstream {
				x0, y0, x1, y1 = x1, y1, x0, y0
			}

			client.ConstraintStart(b)
			client.ConstraintAddX0(b, x0)
			client.ConstraintAddY0(b, y0)
			client.ConstraintAddX1(b, x1)
			client.ConstraintAddY1(b, y1)
			offs = append(offs, client.ConstraintEnd(b))
		}

		client.WindowConfigurationDataStartConstraintsVector(b, len(offs))
		for j := len(offs) - 1; j >= 0; j-- {
			b.PrependUOffsetT(offs[j])
		}
		vec := b.EndVector(len(offs))

		client.WindowConfigurationDataStart(b)
		client.WindowConfigurationDataAddCameraPort(b, uint32(cameraPort))
		client.WindowConfigurationDataAddLaserPort(b, uint32(laserPort))
		client.WindowConfigurationDataAddConstraints(b, vec)
		data := client.WindowConfigurationDataEnd(b)

		client.MessageClientStart(b)
		client.MessageClientAddType(b, client.MessageTypeWINDOW_CONFIGURATION)
		client.MessageClientAddDataType(b, client.MessageDataWindowConfigurationData)
		client.MessageClientAddData(b, data)
		b.Finish(client.MessageClientEnd(b))

		if err := h.writeControlLocked(b.FinishedBytes()); err != nil {
			return err
		}
	}
	return nil
}

// sendWindow transmits the current windows for every pair.
func (h *Head) sendWindow() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.controlConn == nil {
		return ErrNotConnected
	}
	return h.sendWindowLocked(CameraInvalid)
}

// sendScanConfiguration transmits the scan pairs derived from the compiled
// phase table. A head with no scan pairs sits out the scan and is skipped.
func (h *Head) sendScanConfiguration() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.scanPairs) == 0 {
		return nil
	}
	if h.controlConn == nil {
		return ErrNotConnected
	}

	b := h.builder
	b.Reset()

	offs := make([]flatbuffers.UOffsetT, 0, len(h.scanPairs))
	for _, sp := range h.scanPairs {
		cameraPort := h.spec.CameraIDToPort(uint32(sp.camera))
		laserPort := h.spec.LaserIDToPort(uint32(sp.laser))
		if cameraPort < 0 || laserPort < 0 {
			return fmt.Errorf("%w: no port mapping for %v / %v", ErrInternal, sp.camera, sp.laser)
		}

		client.CameraLaserConfigurationStart(b)
		client.CameraLaserConfigurationAddCameraPort(b, uint32(cameraPort))
		client.CameraLaserConfigurationAddLaserPort(b, uint32(laserPort))
		client.CameraLaserConfigurationAddLaserOnTimeMinNs(b, sp.config.LaserOnTimeMinUs*1000)
		client.CameraLaserConfigurationAddLaserOnTimeDefNs(b, sp.config.LaserOnTimeDefUs*1000)
		client.CameraLaserConfigurationAddLaserOnTimeMaxNs(b, sp.config.LaserOnTimeMaxUs*1000)
		client.CameraLaserConfigurationAddScanEndOffsetNs(b, sp.endOffsetUs*1000)
		client.CameraLaserConfigurationAddCameraOrientation(b, h.cameraOrientationLocked(uint32(cameraPort)))
		offs = append(offs, client.CameraLaserConfigurationEnd(b))
	}

	client.ScanConfigurationDataStartCameraLaserConfigurationsVector(b, len(offs))
	for j := len(offs) - 1; j >= 0; j-- {
		b.PrependUOffsetT(offs[j])
	}
	vec := b.EndVector(len(offs))

	client.ScanConfigurationDataStart(b)
	client.ScanConfigurationDataAddUdpPort(b, 0) // legacy field, data rides TCP
	client.ScanConfigurationDataAddDataTypeMask(b, uint32(h.dataTypeMask))
	client.ScanConfigurationDataAddDataStride(b, h.dataStride)
	client.ScanConfigurationDataAddScanPeriodNs(b, h.scanPeriodUs*1000)
	client.ScanConfigurationDataAddLaserDetectionThreshold(b, h.config.LaserDetectionThreshold)
	client.ScanConfigurationDataAddSaturationThreshold(b, h.config.SaturationThreshold)
	client.ScanConfigurationDataAddSaturationPercent(b, h.config.SaturationPercentage)
	client.ScanConfigurationDataAddCameraLaserConfigurations(b, vec)
	data := client.ScanConfigurationDataEnd(b)

	client.MessageClientStart(b)
	client.MessageClientAddType(b, client.MessageTypeSCAN_CONFIGURATION)
	client.MessageClientAddDataType(b, client.MessageDataScanConfigurationData)
	client.MessageClientAddData(b, data)
	b.Finish(client.MessageClientEnd(b))

	return h.writeControlLocked(b.FinishedBytes())
}

// startScanning clears buffered and in-flight profile state and tells the
// head to begin streaming.
func (h *Head) startScanning() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.controlConn == nil {
		return ErrNotConnected
	}

	h.resetAssembly()
	h.buffer.Clear()

	if err := h.sendSimpleLocked(client.MessageTypeSCAN_START); err != nil {
		return err
	}
	h.scanning = true
	return nil
}

// stopScanning tells the head to stop streaming.
func (h *Head) stopScanning() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.controlConn == nil {
		return ErrNotConnected
	}

	if err := h.sendSimpleLocked(client.MessageTypeSCAN_STOP); err != nil {
		return err
	}
	h.scanning = false
	return nil
}

// Status requests a fresh status report from the head, caches it and
// returns it.
func (h *Head) Status() (Status, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.requestStatusLocked()
}

func (h *Head) requestStatusLocked() (Status, error) {
	if h.controlConn == nil {
		return Status{}, ErrNotConnected
	}

	if err := h.sendSimpleLocked(client.MessageTypeSTATUS_REQUEST); err != nil {
		return Status{}, err
	}

	body, err := protocol.ReadFrame(h.controlConn, statusResponseMax)
	if err != nil {
		return Status{}, fmt.Errorf("%w: read status response: %v", ErrInternal, err)
	}

	msg := server.GetRootAsMessageServer(body, 0)
	if msg.Type() != server.MessageTypeSTATUS || msg.DataType() != server.MessageDataStatusData {
		return Status{}, fmt.Errorf("%w: unexpected response %v to status request", ErrInternal, msg.Type())
	}
	var tbl flatbuffers.Table
	if !msg.Data(&tbl) {
		return Status{}, fmt.Errorf("%w: status response carries no data", ErrInternal)
	}
	var sd server.StatusData
	sd.Init(tbl.Bytes, tbl.Pos)

	st := Status{
		GlobalTimeNs:    sd.GlobalTimeNs(),
		NumProfilesSent: sd.NumProfilesSent(),
	}
	var cam server.CameraData
	for j := 0; j < sd.CameraDataLength(); j++ {
		if !sd.CameraData(&cam, j) {
			continue
		}
		switch Camera(h.spec.CameraPortToIDOrInvalid(cam.Port())) {
		case CameraA:
			st.CameraAPixelsInWindow = cam.PixelsInWindow()
			st.CameraATemp = cam.Temperature()
		case CameraB:
			st.CameraBPixelsInWindow = cam.PixelsInWindow()
			st.CameraBTemp = cam.Temperature()
		}
	}
	for j := 0; j < sd.EncodersLength() && j < MaxEncoders; j++ {
		st.EncoderValues = append(st.EncoderValues, sd.Encoders(j))
	}

	h.status = st
	h.statusMinPeriodUs = sd.MinScanPeriodNs() / 1000
	return st, nil
}

// Image captures a diagnostic camera image over the control stream. Only
// available while connected and not scanning.
func (h *Head) Image(camera Camera, laser Laser, cameraExposureUs, laserOnTimeUs uint32) (*CameraImage, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.controlConn == nil {
		return nil, ErrNotConnected
	}
	if h.scanning {
		return nil, ErrScanning
	}

	cameraPort := h.spec.CameraIDToPort(uint32(camera))
	laserPort := h.spec.LaserIDToPort(uint32(laser))
	if cameraPort < 0 || laserPort < 0 {
		return nil, fmt.Errorf("%w: %v / %v invalid on %v", ErrInvalidArgument, camera, laser, h.headType)
	}

	b := h.builder
	b.Reset()
	client.ImageRequestDataStart(b)
	client.ImageRequestDataAddCameraPort(b, uint32(cameraPort))
	client.ImageRequestDataAddLaserPort(b, uint32(laserPort))
	client.ImageRequestDataAddCameraExposureNs(b, cameraExposureUs*1000)
	client.ImageRequestDataAddLaserOnTimeNs(b, laserOnTimeUs*1000)
	data := client.ImageRequestDataEnd(b)

	client.MessageClientStart(b)
	client.MessageClientAddType(b, client.MessageTypeIMAGE_REQUEST)
	client.MessageClientAddDataType(b, client.MessageDataImageRequestData)
	client.MessageClientAddData(b, data)
	b.Finish(client.MessageClientEnd(b))
	if err := h.writeControlLocked(b.FinishedBytes()); err != nil {
		return nil, err
	}

	body, err := protocol.ReadFrame(h.controlConn, imageResponseMax)
	if err != nil {
		return nil, fmt.Errorf("%w: read image response: %v", ErrInternal, err)
	}

	msg := server.GetRootAsMessageServer(body, 0)
	if msg.Type() != server.MessageTypeIMAGE || msg.DataType() != server.MessageDataImageData {
		return nil, fmt.Errorf("%w: unexpected response %v to image request", ErrInternal, msg.Type())
	}
	var tbl flatbuffers.Table
	if !msg.Data(&tbl) {
		return nil, fmt.Errorf("%w: image response carries no data", ErrInternal)
	}
	var id server.ImageData
	id.Init(tbl.Bytes, tbl.Pos)

	pixels := id.PixelsBytes()
	if len(pixels) != CameraImageWidth*CameraImageHeight {
		return nil, fmt.Errorf("%w: image carries %d pixels", ErrInternal, len(pixels))
	}
	if id.EncodersLength() > MaxEncoders {
		return nil, fmt.Errorf("%w: image carries %d encoder values", ErrInternal, id.EncodersLength())
	}

	img := &CameraImage{
		HeadID:               h.id,
		TimestampNs:          id.TimestampNs(),
		Camera:               Camera(h.spec.CameraPortToIDOrInvalid(id.CameraPort())),
		Laser:                Laser(h.spec.LaserPortToIDOrInvalid(id.LaserPort())),
		CameraExposureTimeUs: cameraExposureUs,
		LaserOnTimeUs:        laserOnTimeUs,
		ImageHeight:          id.Height(),
		ImageWidth:           id.Width(),
		Pixels:               append([]byte(nil), pixels...),
	}
	for j := 0; j < id.EncodersLength(); j++ {
		img.EncoderValues = append(img.EncoderValues, id.Encoders(j))
	}
	return img, nil
}

// ImageForCamera captures a diagnostic image using the camera's paired
// laser.
func (h *Head) ImageForCamera(camera Camera, cameraExposureUs, laserOnTimeUs uint32) (*CameraImage, error) {
	laser := h.PairedLaser(camera)
	if laser == LaserInvalid {
		return nil, fmt.Errorf("%w: no laser paired with %v", ErrInvalidArgument, camera)
	}
	return h.Image(camera, laser, cameraExposureUs, laserOnTimeUs)
}

// ImageForLaser captures a diagnostic image using the laser's paired
// camera.
func (h *Head) ImageForLaser(laser Laser, cameraExposureUs, laserOnTimeUs uint32) (*CameraImage, error) {
	camera := h.PairedCamera(laser)
	if camera == CameraInvalid {
		return nil, fmt.Errorf("%w: no camera paired with %v", ErrInvalidArgument, laser)
	}
	return h.Image(camera, laser, cameraExposureUs, laserOnTimeUs)
}

// DiagnosticProfile captures a single profile over the control stream.
// The head answers with camera-space points; the client applies its own
// alignment, so the result is in mill coordinates like streamed profiles.
func (h *Head) DiagnosticProfile(camera Camera, laser Laser, cameraExposureUs, laserOnTimeUs uint32) (*Profile, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.controlConn == nil {
		return nil, ErrNotConnected
	}
	if h.scanning {
		return nil, ErrScanning
	}

	cameraPort := h.spec.CameraIDToPort(uint32(camera))
	laserPort := h.spec.LaserIDToPort(uint32(laser))
	if cameraPort < 0 || laserPort < 0 {
		return nil, fmt.Errorf("%w: %v / %v invalid on %v", ErrInvalidArgument, camera, laser, h.headType)
	}

	b := h.builder
	b.Reset()
	client.ProfileRequestDataStart(b)
	client.ProfileRequestDataAddCameraPort(b, uint32(cameraPort))
	client.ProfileRequestDataAddLaserPort(b, uint32(laserPort))
	client.ProfileRequestDataAddCameraExposureNs(b, cameraExposureUs*1000)
	client.ProfileRequestDataAddLaserOnTimeNs(b, laserOnTimeUs*1000)
	client.ProfileRequestDataAddLaserDetectionThreshold(b, h.config.LaserDetectionThreshold)
	client.ProfileRequestDataAddSaturationThreshold(b, h.config.SaturationThreshold)
	client.ProfileRequestDataAddCameraOrientation(b, h.cameraOrientationLocked(uint32(cameraPort)))
	data := client.ProfileRequestDataEnd(b)

	client.MessageClientStart(b)
	client.MessageClientAddType(b, client.MessageTypePROFILE_REQUEST)
	client.MessageClientAddDataType(b, client.MessageDataProfileRequestData)
	client.MessageClientAddData(b, data)
	b.Finish(client.MessageClientEnd(b))
	if err := h.writeControlLocked(b.FinishedBytes()); err != nil {
		return nil, err
	}

	body, err := protocol.ReadFrame(h.controlConn, profileResponseMax)
	if err != nil {
		return nil, fmt.Errorf("%w: read profile response: %v", ErrInternal, err)
	}

	msg := server.GetRootAsMessageServer(body, 0)
	if msg.Type() != server.MessageTypePROFILE || msg.DataType() != server.MessageDataProfileData {
		return nil, fmt.Errorf("%w: unexpected response %v to profile request", ErrInternal, msg.Type())
	}
	var tbl flatbuffers.Table
	if !msg.Data(&tbl) {
		return nil, fmt.Errorf("%w: profile response carries no data", ErrInternal)
	}
	var pd server.ProfileData
	pd.Init(tbl.Bytes, tbl.Pos)

	if pd.EncodersLength() > MaxEncoders {
		return nil, fmt.Errorf("%w: profile carries %d encoder values", ErrInternal, pd.EncodersLength())
	}
	if pd.PointsLength() > ProfileDataLen {
		return nil, fmt.Errorf("%w: profile carries %d points", ErrInternal, pd.PointsLength())
	}

	p := newProfileShell()
	p.HeadID = h.id
	p.TimestampNs = pd.TimestampNs()
	p.Camera = Camera(h.spec.CameraPortToIDOrInvalid(pd.CameraPort()))
	p.Laser = Laser(h.spec.LaserPortToIDOrInvalid(pd.LaserPort()))
	p.LaserOnTimeUs = pd.LaserOnTimeNs() / 1000
	p.Format = h.format
	p.DataValidXY = pd.ValidPoints()
	p.DataValidBrightness = pd.ValidPoints()

	alignment := h.alignments[pairKey{p.Camera, p.Laser}]
	if alignment == nil {
		return nil, fmt.Errorf("%w: no alignment for %v / %v", ErrInternal, p.Camera, p.Laser)
	}

	var pt server.ProfilePoint
	for j := 0; j < pd.PointsLength(); j++ {
		if !pd.Points(&pt, j) {
			continue
		}
		x, y := pt.X(), pt.Y()
		if x == invalidWireXY || y == invalidWireXY {
			continue
		}
		mx, my := alignment.CameraToMill(int32(x), int32(y))
		p.Data[j] = Point{X: mx, Y: my, Brightness: int32(pt.Brightness())}
	}
	for j := 0; j < pd.EncodersLength(); j++ {
		p.EncoderValues = append(p.EncoderValues, pd.Encoders(j))
	}
	return p, nil
}

// DiagnosticProfileForCamera captures a single profile using the camera's
// paired laser.
func (h *Head) DiagnosticProfileForCamera(camera Camera, cameraExposureUs, laserOnTimeUs uint32) (*Profile, error) {
	laser := h.PairedLaser(camera)
	if laser == LaserInvalid {
		return nil, fmt.Errorf("%w: no laser paired with %v", ErrInvalidArgument, camera)
	}
	return h.DiagnosticProfile(camera, laser, cameraExposureUs, laserOnTimeUs)
}

// DiagnosticProfileForLaser captures a single profile using the laser's
// paired camera.
func (h *Head) DiagnosticProfileForLaser(laser Laser, cameraExposureUs, laserOnTimeUs uint32) (*Profile, error) {
	camera := h.PairedCamera(laser)
	if camera == CameraInvalid {
		return nil, fmt.Errorf("%w: no camera paired with %v", ErrInvalidArgument, laser)
	}
	return h.DiagnosticProfile(camera, laser, cameraExposureUs, laserOnTimeUs)
}
