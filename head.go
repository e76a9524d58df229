package scanhead

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/millvision/scanhead/internal/geometry"
	"github.com/millvision/scanhead/internal/profilebuf"
	"github.com/millvision/scanhead/internal/protocol"
	"github.com/millvision/scanhead/internal/spec"
	"github.com/millvision/scanhead/internal/units"
)

// pairKey identifies one (camera, laser) exposure pairing on a head.
type pairKey struct {
	camera Camera
	laser  Laser
}

// scanPair is one exposure a head performs per scan period, derived from
// the compiled phase table at scan start.
type scanPair struct {
	camera      Camera
	laser       Laser
	config      Configuration
	endOffsetUs uint32
}

// Head is the client side of a single scan head. All mutating operations
// serialise on an internal lock; the background receiver owns the data
// stream and publishes completed profiles into a bounded buffer.
type Head struct {
	sys      *System
	serial   uint32
	id       uint32
	ip       net.IP
	headType HeadType
	fwMajor  uint32
	fwMinor  uint32
	fwPatch  uint32
	spec     *spec.Specification
	units    units.System

	// Ports are fixed by the firmware; tests point them at local fakes.
	controlPort int
	dataPort    int

	// mu guards the connections, the flatbuffers builder, configuration,
	// windows, alignments and cached status. Control-stream transactions
	// hold it across send and receive so responses cannot interleave.
	mu          sync.Mutex
	controlConn net.Conn
	dataConn    net.Conn
	builder     *flatbuffers.Builder

	config        Configuration
	configDefault Configuration
	format        DataFormat
	cable         CableOrientation
	alignments    map[pairKey]*geometry.Alignment
	windows       map[pairKey]geometry.Window
	scanPairs     []scanPair
	scanPeriodUs  uint32
	dataTypeMask  protocol.DataType
	dataStride    uint32
	scanning      bool

	status            Status
	statusMinPeriodUs uint32

	buffer *profilebuf.Buffer[*Profile]

	// Receiver state. recvMu guards the in-progress profile assembly,
	// which the receiver mutates off the main lock; scan start resets it.
	recvActive atomic.Bool
	recvDone   chan struct{}
	recvMu     sync.Mutex
	cur        *Profile
	curAlign   *geometry.Alignment
	curRecv    uint32
	curExpect  uint32
	lastSource uint32
	lastStamp  uint64

	// recvAlignments and recvFormat are the receiver's snapshots of the
	// alignment map and data format, maintained under recvMu so datagram
	// decode never touches the main lock.
	recvAlignments map[pairKey]*geometry.Alignment
	recvFormat     DataFormat

	packetsReceived  uint64
	completeProfiles uint64
}

func defaultConfiguration() Configuration {
	return Configuration{
		CameraExposureTimeMinUs: 10000,
		CameraExposureTimeDefUs: 500000,
		CameraExposureTimeMaxUs: 1000000,
		LaserOnTimeMinUs:        100,
		LaserOnTimeDefUs:        500,
		LaserOnTimeMaxUs:        1000,
		LaserDetectionThreshold: 120,
		SaturationThreshold:     800,
		SaturationPercentage:    30,
	}
}

func newHead(sys *System, d Discovered, id uint32) (*Head, error) {
	s, err := spec.Load(spec.Product(d.Type))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	h := &Head{
		sys:            sys,
		serial:         d.SerialNumber,
		id:             id,
		ip:             d.IPAddr,
		headType:       d.Type,
		fwMajor:        d.FirmwareMajor,
		fwMinor:        d.FirmwareMinor,
		fwPatch:        d.FirmwarePatch,
		spec:           s,
		units:          sys.units,
		builder:        flatbuffers.NewBuilder(512),
		format:         DataFormatXYBrightnessFull,
		cable:          CableOrientationUpstream,
		configDefault:  defaultConfiguration(),
		alignments:     make(map[pairKey]*geometry.Alignment),
		windows:        make(map[pairKey]geometry.Window),
		recvAlignments: make(map[pairKey]*geometry.Alignment),
		buffer:         profilebuf.New[*Profile](ProfileBufferCapacity),
		controlPort:    protocol.ControlPort,
		dataPort:       protocol.DataPort,
	}
	h.config = h.configDefault
	h.setDataFormatLocked(h.format)

	for i := 0; i < h.pairCount(); i++ {
		key, ok := h.pairAt(i)
		if !ok {
			continue
		}
		a, err := geometry.NewAlignment(h.units.AlignmentScale(), 0, 0, 0, false)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		h.alignments[key] = a
		h.recvAlignments[key] = a
		h.windows[key] = geometry.Window{}
	}

	return h, nil
}

// publishAlignment hands the receiver its snapshot of a pair's alignment.
// Callers hold the main lock; the receiver only ever takes recvMu.
func (h *Head) publishAlignment(key pairKey, a *geometry.Alignment) {
	h.recvMu.Lock()
	h.recvAlignments[key] = a
	h.recvMu.Unlock()
}

// SerialNumber returns the head's serial number.
func (h *Head) SerialNumber() uint32 { return h.serial }

// ID returns the host-assigned identifier of the head.
func (h *Head) ID() uint32 { return h.id }

// Type returns the head's product family.
func (h *Head) Type() HeadType { return h.headType }

// IPAddr returns the address discovery reported for the head.
func (h *Head) IPAddr() net.IP { return h.ip }

// FirmwareVersion returns the head's firmware semantic version.
func (h *Head) FirmwareVersion() (major, minor, patch uint32) {
	return h.fwMajor, h.fwMinor, h.fwPatch
}

// Capabilities reports the limits of the head's product family.
func (h *Head) Capabilities() Capabilities {
	return Capabilities{
		CameraBrightnessBitDepth: 8,
		MaxCameraImageHeight:     h.spec.MaxCameraRows,
		MaxCameraImageWidth:      h.spec.MaxCameraColumns,
		MinScanPeriodUs:          h.spec.MinScanPeriodUs,
		MaxScanPeriodUs:          h.spec.MaxScanPeriodUs,
		NumCameras:               h.spec.NumberOfCameras,
		NumEncoders:              1,
		NumLasers:                h.spec.NumberOfLasers,
	}
}

// IsConnected reports whether the control stream is open.
func (h *Head) IsConnected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.controlConn != nil
}

// pairCount is how many (camera, laser) pairs the head enumerates,
// following the product's primary grouping.
func (h *Head) pairCount() int {
	switch h.spec.GroupPrimary {
	case spec.GroupPrimaryCamera:
		return int(h.spec.NumberOfCameras)
	case spec.GroupPrimaryLaser:
		return int(h.spec.NumberOfLasers)
	default:
		return 0
	}
}

func (h *Head) pairAt(i int) (pairKey, bool) {
	switch h.spec.GroupPrimary {
	case spec.GroupPrimaryCamera:
		camera := Camera(uint32(CameraA) + uint32(i))
		laser := h.PairedLaser(camera)
		if laser == LaserInvalid {
			return pairKey{}, false
		}
		return pairKey{camera, laser}, true
	case spec.GroupPrimaryLaser:
		laser := Laser(uint32(Laser1) + uint32(i))
		camera := h.PairedCamera(laser)
		if camera == CameraInvalid {
			return pairKey{}, false
		}
		return pairKey{camera, laser}, true
	default:
		return pairKey{}, false
	}
}

// PairedCamera returns the camera a laser exposes with, or CameraInvalid
// when the product enumerates pairs by camera.
func (h *Head) PairedCamera(laser Laser) Camera {
	if h.spec.GroupPrimary == spec.GroupPrimaryCamera {
		return CameraInvalid
	}
	if !h.isLaserValid(laser) {
		return CameraInvalid
	}

	port := h.spec.LaserIDToPort(uint32(laser))
	if port < 0 {
		return CameraInvalid
	}
	camera := CameraInvalid
	for _, grp := range h.spec.Groups {
		if grp.LaserPort == uint32(port) {
			camera = Camera(h.spec.CameraPortToIDOrInvalid(grp.CameraPort))
		}
	}
	return camera
}

// PairedLaser returns the laser a camera exposes with, or LaserInvalid when
// the product enumerates pairs by laser.
func (h *Head) PairedLaser(camera Camera) Laser {
	if h.spec.GroupPrimary == spec.GroupPrimaryLaser {
		return LaserInvalid
	}
	if !h.isCameraValid(camera) {
		return LaserInvalid
	}

	port := h.spec.CameraIDToPort(uint32(camera))
	if port < 0 {
		return LaserInvalid
	}
	laser := LaserInvalid
	for _, grp := range h.spec.Groups {
		if grp.CameraPort == uint32(port) {
			laser = Laser(h.spec.LaserPortToIDOrInvalid(grp.LaserPort))
		}
	}
	return laser
}

func (h *Head) isCameraValid(camera Camera) bool {
	return camera >= CameraA && uint32(camera-CameraA) < h.spec.NumberOfCameras
}

func (h *Head) isLaserValid(laser Laser) bool {
	return laser >= Laser1 && uint32(laser-Laser1) < h.spec.NumberOfLasers
}

func (h *Head) isPairValid(camera Camera, laser Laser) bool {
	cp := h.spec.CameraIDToPort(uint32(camera))
	lp := h.spec.LaserIDToPort(uint32(laser))
	if cp < 0 || lp < 0 {
		return false
	}
	for _, grp := range h.spec.Groups {
		if grp.CameraPort == uint32(cp) && grp.LaserPort == uint32(lp) {
			return true
		}
	}
	return false
}

// isConfigurationValid checks a configuration against the product limits
// and the min <= def <= max invariants.
func (h *Head) isConfigurationValid(cfg Configuration) bool {
	if cfg.CameraExposureTimeMaxUs > h.spec.MaxCameraExposureUs ||
		cfg.CameraExposureTimeMinUs < h.spec.MinCameraExposureUs ||
		cfg.CameraExposureTimeMaxUs < cfg.CameraExposureTimeDefUs ||
		cfg.CameraExposureTimeMaxUs < cfg.CameraExposureTimeMinUs ||
		cfg.CameraExposureTimeDefUs < cfg.CameraExposureTimeMinUs {
		return false
	}
	if cfg.LaserOnTimeMaxUs > h.spec.MaxLaserOnTimeUs ||
		cfg.LaserOnTimeMinUs < h.spec.MinLaserOnTimeUs ||
		cfg.LaserOnTimeMaxUs < cfg.LaserOnTimeDefUs ||
		cfg.LaserOnTimeMaxUs < cfg.LaserOnTimeMinUs ||
		cfg.LaserOnTimeDefUs < cfg.LaserOnTimeMinUs {
		return false
	}
	if cfg.LaserDetectionThreshold > 1023 {
		return false
	}
	if cfg.SaturationThreshold > 1023 {
		return false
	}
	return cfg.SaturationPercentage <= 100
}

// SetConfiguration applies new operating parameters. Rejected while
// scanning or when the configuration violates the product limits.
func (h *Head) SetConfiguration(cfg Configuration) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.scanning {
		return ErrScanning
	}
	if !h.isConfigurationValid(cfg) {
		return fmt.Errorf("%w: configuration outside product limits", ErrInvalidArgument)
	}
	h.config = cfg
	return nil
}

// Configuration returns the head's current operating parameters.
func (h *Head) Configuration() Configuration {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.config
}

// ConfigurationDefault returns the factory default parameters.
func (h *Head) ConfigurationDefault() Configuration {
	return h.configDefault
}

func (h *Head) setDataFormatLocked(format DataFormat) error {
	switch format {
	case DataFormatXYBrightnessFull:
		h.dataTypeMask = protocol.DataTypeXY | protocol.DataTypeBrightness
		h.dataStride = 1
	case DataFormatXYBrightnessHalf:
		h.dataTypeMask = protocol.DataTypeXY | protocol.DataTypeBrightness
		h.dataStride = 2
	case DataFormatXYBrightnessQuarter:
		h.dataTypeMask = protocol.DataTypeXY | protocol.DataTypeBrightness
		h.dataStride = 4
	case DataFormatXYFull:
		h.dataTypeMask = protocol.DataTypeXY
		h.dataStride = 1
	case DataFormatXYHalf:
		h.dataTypeMask = protocol.DataTypeXY
		h.dataStride = 2
	case DataFormatXYQuarter:
		h.dataTypeMask = protocol.DataTypeXY
		h.dataStride = 4
	default:
		return fmt.Errorf("%w: data format %d", ErrInvalidArgument, format)
	}
	h.format = format
	h.recvMu.Lock()
	h.recvFormat = format
	h.recvMu.Unlock()
	return nil
}

// DataFormat returns the streamed data format last applied.
func (h *Head) DataFormat() DataFormat {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.format
}

func (h *Head) setScanPeriodLocked(periodUs uint32) error {
	if periodUs > h.spec.MaxScanPeriodUs || periodUs < h.spec.MinScanPeriodUs {
		return fmt.Errorf("%w: scan period %d us outside [%d, %d]",
			ErrInvalidArgument, periodUs, h.spec.MinScanPeriodUs, h.spec.MaxScanPeriodUs)
	}
	h.scanPeriodUs = periodUs
	return nil
}

// MinScanPeriodUs is the fastest period the head can currently be asked to
// scan at: the product floor, raised by the readout time the last reported
// status derived from the scan window.
func (h *Head) MinScanPeriodUs() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.minScanPeriodLocked()
}

func (h *Head) minScanPeriodLocked() uint32 {
	if h.statusMinPeriodUs > h.spec.MinScanPeriodUs {
		return h.statusMinPeriodUs
	}
	return h.spec.MinScanPeriodUs
}

func (h *Head) resetScanPairs() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.scanPairs = h.scanPairs[:0]
}

func (h *Head) addScanPair(camera Camera, laser Laser, cfg Configuration, endOffsetUs uint32) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.isPairValid(camera, laser) {
		return fmt.Errorf("%w: %v and %v do not pair on %v", ErrInvalidArgument, camera, laser, h.headType)
	}
	if !h.isConfigurationValid(cfg) {
		return fmt.Errorf("%w: configuration outside product limits", ErrInvalidArgument)
	}
	if uint32(len(h.scanPairs)) >= h.spec.MaxGroups {
		return fmt.Errorf("%w: head %d already has %d scan pairs", ErrInternal, h.id, len(h.scanPairs))
	}

	h.scanPairs = append(h.scanPairs, scanPair{
		camera:      camera,
		laser:       laser,
		config:      cfg,
		endOffsetUs: endOffsetUs,
	})
	return nil
}

// MaxScanPairs is the most (camera, laser) exposures the head supports per
// scan period.
func (h *Head) MaxScanPairs() uint32 {
	return h.spec.MaxGroups
}

// AvailableProfiles returns how many completed profiles are buffered.
func (h *Head) AvailableProfiles() int {
	return h.buffer.Len()
}

// WaitUntilProfilesAvailable blocks until at least count profiles are
// buffered or the timeout elapses and returns the buffered count.
func (h *Head) WaitUntilProfilesAvailable(count int, timeout time.Duration) int {
	return h.buffer.WaitUntil(count, timeout)
}

// Profiles removes and returns up to max buffered profiles, oldest first.
func (h *Head) Profiles(max int) []*Profile {
	return h.buffer.Take(max)
}

// ClearProfiles empties the profile buffer.
func (h *Head) ClearProfiles() {
	h.buffer.Clear()
}

// LastStatus returns the most recently fetched status without a round
// trip.
func (h *Head) LastStatus() Status {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status
}

// ClearStatus forgets the cached status.
func (h *Head) ClearStatus() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.status = Status{}
	h.statusMinPeriodUs = 0
}
