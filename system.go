package scanhead

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/millvision/scanhead/internal/monitoring"
	"github.com/millvision/scanhead/internal/units"
	"github.com/millvision/scanhead/internal/version"
)

// keepAliveInterval is how often the coordinator pings every head while
// scanning. Heads stop streaming if the client goes quiet; 1 s is the
// firmware contract.
const keepAliveInterval = time.Second

type systemState int

const (
	stateDisconnected systemState = iota
	stateConnected
	stateScanning
)

// System coordinates a set of scan heads: discovery, connection lifecycle,
// phase-table authoring and synchronized scan start/stop. One System owns
// its heads; heads are only reachable through it.
type System struct {
	mu    sync.Mutex
	units units.System
	state systemState

	discovered map[uint32]Discovered
	bySerial   map[uint32]*Head
	byID       map[uint32]*Head

	phase phaseTable

	keepAliveStop chan struct{}
	keepAliveDone chan struct{}
}

// NewSystem creates a coordinator operating in the given units and runs an
// initial discovery cycle. Discovery failures are not fatal here; they
// surface as ErrNotDiscovered at head creation.
func NewSystem(u Units) (*System, error) {
	s, err := newSystem(u)
	if err != nil {
		return nil, err
	}
	if _, err := s.Discover(); err != nil {
		monitoring.Logf("scan system: initial discovery failed: %v", err)
	}
	return s, nil
}

func newSystem(u Units) (*System, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("%w: units %d", ErrInvalidArgument, u)
	}
	return &System{
		units:      u,
		discovered: make(map[uint32]Discovered),
		bySerial:   make(map[uint32]*Head),
		byID:       make(map[uint32]*Head),
	}, nil
}

// Units returns the unit system every user-facing length is expressed in.
func (s *System) Units() Units {
	return s.units
}

// IsConnected reports whether every head reached the connected state.
func (s *System) IsConnected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateConnected || s.state == stateScanning
}

// IsScanning reports whether the system is actively scanning.
func (s *System) IsScanning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == stateScanning
}

// Discover broadcasts a discovery request on every active interface,
// collects responses for about 200 ms and returns how many distinct heads
// are now known. Rejected while connected.
func (s *System) Discover() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discoverLocked()
}

func (s *System) discoverLocked() (int, error) {
	if s.state != stateDisconnected {
		return 0, ErrConnected
	}

	found, err := broadcastDiscover()
	if err != nil {
		return 0, err
	}
	for serial, d := range found {
		s.discovered[serial] = d
	}
	return len(s.discovered), nil
}

// DiscoveredHeads lists every head that has answered discovery, ordered by
// serial number.
func (s *System) DiscoveredHeads() []Discovered {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Discovered, 0, len(s.discovered))
	for _, d := range s.discovered {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SerialNumber < out[j].SerialNumber })
	return out
}

// CreateHead binds a discovered serial number to a host-chosen id and
// returns the head. An unknown serial triggers one more discovery cycle
// before giving up; a firmware major version differing from the client's
// is rejected outright.
func (s *System) CreateHead(serialNumber, id uint32) (*Head, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateScanning {
		return nil, ErrScanning
	}
	if id > math.MaxInt32 {
		return nil, fmt.Errorf("%w: id %d out of range", ErrInvalidArgument, id)
	}
	if _, ok := s.bySerial[serialNumber]; ok {
		return nil, fmt.Errorf("%w: serial %d", ErrAlreadyExists, serialNumber)
	}
	if _, ok := s.byID[id]; ok {
		return nil, fmt.Errorf("%w: id %d", ErrAlreadyExists, id)
	}

	d, ok := s.discovered[serialNumber]
	if !ok {
		// The head may have joined the network since the last cycle.
		if _, err := s.discoverLocked(); err != nil {
			monitoring.Logf("scan system: discovery retry failed: %v", err)
		}
		if d, ok = s.discovered[serialNumber]; !ok {
			return nil, fmt.Errorf("%w: serial %d", ErrNotDiscovered, serialNumber)
		}
	}

	if d.FirmwareMajor != version.Major {
		return nil, fmt.Errorf("%w: head %d firmware %d.%d.%d, client %s",
			ErrVersionCompatibility, serialNumber,
			d.FirmwareMajor, d.FirmwareMinor, d.FirmwarePatch, version.String())
	}

	h, err := newHead(s, d, id)
	if err != nil {
		return nil, err
	}
	s.bySerial[serialNumber] = h
	s.byID[id] = h
	return h, nil
}

// HeadBySerial returns the created head with the given serial, or nil.
func (s *System) HeadBySerial(serialNumber uint32) *Head {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bySerial[serialNumber]
}

// HeadByID returns the created head with the given id, or nil.
func (s *System) HeadByID(id uint32) *Head {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id]
}

// NumHeads returns how many heads have been created.
func (s *System) NumHeads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bySerial)
}

// RemoveHead forgets a created head, disconnecting it first if needed.
func (s *System) RemoveHead(serialNumber uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateScanning {
		return ErrScanning
	}
	h, ok := s.bySerial[serialNumber]
	if !ok {
		return fmt.Errorf("%w: serial %d not created", ErrInvalidArgument, serialNumber)
	}

	if h.IsConnected() {
		if err := h.disconnect(); err != nil {
			monitoring.Logf("scan head %d: disconnect on remove: %v", serialNumber, err)
		}
	}
	delete(s.bySerial, serialNumber)
	delete(s.byID, h.id)
	return nil
}

// RemoveAllHeads forgets every created head.
func (s *System) RemoveAllHeads() error {
	s.mu.Lock()
	serials := make([]uint32, 0, len(s.bySerial))
	for serial := range s.bySerial {
		serials = append(serials, serial)
	}
	s.mu.Unlock()

	for _, serial := range serials {
		if err := s.RemoveHead(serial); err != nil {
			return err
		}
	}
	return nil
}

// headsSorted snapshots the created heads ordered by serial so multi-head
// operations run in a stable order. Callers hold s.mu.
func (s *System) headsSorted() []*Head {
	out := make([]*Head, 0, len(s.bySerial))
	for _, h := range s.bySerial {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].serial < out[j].serial })
	return out
}

// Connect opens both streams to every head and returns how many reached
// the connected state. The system only advances to Connected when every
// head made it; partial success leaves it Disconnected so the caller can
// probe per-head with IsConnected.
func (s *System) Connect(timeout time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateScanning {
		return 0, ErrScanning
	}
	if s.state == stateConnected {
		return 0, ErrConnected
	}
	if len(s.bySerial) == 0 {
		return 0, nil
	}

	heads := s.headsSorted()
	connected := make(map[uint32]*Head)
	for _, h := range heads {
		if err := h.connect(timeout); err != nil {
			monitoring.Logf("scan head %d: connect: %v", h.serial, err)
			continue
		}
		connected[h.serial] = h
	}

	if len(connected) == len(heads) {
		for _, h := range heads {
			if err := h.sendWindow(); err != nil {
				monitoring.Logf("scan head %d: send window: %v", h.serial, err)
			}
		}

		// Fresh status per head so the window-driven minimum scan period
		// is accurate before the host asks for it.
		for _, h := range heads {
			if _, err := h.Status(); err != nil {
				monitoring.Logf("scan head %d: status refresh: %v", h.serial, err)
				delete(connected, h.serial)
			}
		}

		if len(connected) == len(heads) {
			s.state = stateConnected
		}
	}

	return len(connected), nil
}

// Disconnect closes every head's streams and returns the system to
// Disconnected. Rejected while scanning.
func (s *System) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateScanning {
		return ErrScanning
	}
	if s.state != stateConnected {
		return ErrNotConnected
	}

	for _, h := range s.headsSorted() {
		if err := h.disconnect(); err != nil {
			monitoring.Logf("scan head %d: disconnect: %v", h.serial, err)
		}
	}
	s.state = stateDisconnected
	return nil
}

// StartScanning compiles the phase table, distributes the resulting scan
// pairs and period to every head and begins synchronized scanning at the
// given period.
func (s *System) StartScanning(periodUs uint32, format DataFormat) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateScanning {
		return ErrScanning
	}
	if s.state != stateConnected {
		return ErrNotConnected
	}

	table := s.phase.compile()
	if table.totalDurationUs > periodUs {
		return fmt.Errorf("%w: phase table needs %d us, scan period is %d us",
			ErrInvalidArgument, table.totalDurationUs, periodUs)
	}

	heads := s.headsSorted()
	for _, h := range heads {
		h.resetScanPairs()
	}

	endOffsetUs := cameraStartEarlyOffsetUs
	for _, phase := range table.phases {
		endOffsetUs += phase.durationUs
		for _, el := range phase.elements {
			if err := el.head.addScanPair(el.camera, el.laser, el.config, endOffsetUs); err != nil {
				return err
			}
		}
	}

	for _, h := range heads {
		if err := func() error {
			h.mu.Lock()
			defer h.mu.Unlock()
			if err := h.setScanPeriodLocked(periodUs); err != nil {
				return err
			}
			return h.setDataFormatLocked(format)
		}(); err != nil {
			return err
		}
		if err := h.sendScanConfiguration(); err != nil {
			return err
		}
	}

	for _, h := range heads {
		if err := h.startScanning(); err != nil {
			return err
		}
	}

	s.state = stateScanning
	s.keepAliveStop = make(chan struct{})
	s.keepAliveDone = make(chan struct{})
	go keepAliveMain(heads, s.keepAliveStop, s.keepAliveDone)
	return nil
}

// StopScanning halts every head and returns the system to Connected.
func (s *System) StopScanning() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateScanning {
		if s.state == stateDisconnected {
			return ErrNotConnected
		}
		return ErrNotScanning
	}

	for _, h := range s.headsSorted() {
		if err := h.stopScanning(); err != nil {
			monitoring.Logf("scan head %d: stop scanning: %v", h.serial, err)
		}
	}
	s.state = stateConnected

	close(s.keepAliveStop)
	<-s.keepAliveDone
	s.keepAliveStop = nil
	s.keepAliveDone = nil
	return nil
}

// keepAliveMain pings every head once per interval until stopped. Without
// it a head assumes the client died and stops streaming.
func keepAliveMain(heads []*Head, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			for _, h := range heads {
				if err := h.sendKeepAlive(); err != nil {
					monitoring.Logf("scan head %d: keep alive: %v", h.serial, err)
				}
			}
		}
	}
}

// MinScanPeriodUs returns the fastest period the current phase table can
// run at: the camera start-early offset plus the compiled total duration.
// While connected, each head's status is refreshed first so window-driven
// readout time is accounted for.
func (s *System) MinScanPeriodUs() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateConnected {
		for _, h := range s.headsSorted() {
			if _, err := h.Status(); err != nil {
				monitoring.Logf("scan head %d: status refresh: %v", h.serial, err)
			}
		}
	}

	table := s.phase.compile()
	return cameraStartEarlyOffsetUs + table.totalDurationUs
}
