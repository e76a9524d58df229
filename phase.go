package scanhead

import (
	"fmt"
	"math"
)

// Camera timing constants. These are firmware contracts, not tunables.
const (
	// cameraStartEarlyOffsetNs is how far ahead of its scheduled exposure
	// a camera is started.
	cameraStartEarlyOffsetNs = 9500.0

	// Row readout timing behind the mandatory dead time between
	// consecutive uses of the same camera: 4 rows plus camera overhead
	// plus a safety margin, at the sensor row readout rate.
	rowTimeNs        = 3210.0
	overheadRows     = 42
	safetyMarginRows = 3
)

var (
	cameraStartEarlyOffsetUs = uint32(math.Ceil(cameraStartEarlyOffsetNs / 1000.0))
	frameOverheadTimeUs      = uint32(math.Ceil(rowTimeNs * (4 + overheadRows + safetyMarginRows) / 1000.0))
)

// phaseElement is one authored exposure: a head's (camera, laser) pair,
// optionally with a configuration override for just this element.
type phaseElement struct {
	head         *Head
	camera       Camera
	laser        Laser
	config       Configuration
	configUnique bool
}

// phaseTable is the authored schedule. Compilation turns it into per-phase
// durations; the authored form never carries timing.
type phaseTable struct {
	phases    [][]phaseElement
	headCount map[*Head]int
}

func (pt *phaseTable) reset() {
	pt.phases = nil
	pt.headCount = nil
}

func (pt *phaseTable) createPhase() {
	pt.phases = append(pt.phases, nil)
}

func (pt *phaseTable) count() int {
	return len(pt.phases)
}

// addToLastPhase validates and appends an element to the newest phase.
func (pt *phaseTable) addToLastPhase(h *Head, camera Camera, laser Laser, cfg *Configuration) error {
	if len(pt.phases) == 0 {
		return fmt.Errorf("%w: no phase created", ErrInvalidArgument)
	}
	phase := len(pt.phases) - 1

	if pt.headCount == nil {
		pt.headCount = make(map[*Head]int)
	}
	if pt.headCount[h] >= int(h.MaxScanPairs()) {
		return fmt.Errorf("%w: head %d exceeds %d phase elements", ErrNoMoreRoom, h.id, h.MaxScanPairs())
	}

	for _, el := range pt.phases[phase] {
		if el.head == h && el.camera == camera {
			return fmt.Errorf("%w: head %d %v already in phase %d", ErrInvalidArgument, h.id, camera, phase)
		}
	}

	el := phaseElement{head: h, camera: camera, laser: laser}
	if cfg != nil {
		if !h.isConfigurationValid(*cfg) {
			return fmt.Errorf("%w: phase element configuration outside product limits", ErrInvalidArgument)
		}
		el.config = *cfg
		el.configUnique = true
	}

	pt.headCount[h]++
	pt.phases[phase] = append(pt.phases[phase], el)
	return nil
}

// compiledPhase is one phase with its computed duration.
type compiledPhase struct {
	durationUs uint32
	elements   []phaseElement
}

// compiledTable is the result of compiling the authored table against the
// heads' current configurations and window-driven minimum periods. It is
// rebuilt from scratch on every compile and never mutated in place.
type compiledTable struct {
	totalDurationUs uint32
	phases          []compiledPhase
}

type accumKey struct {
	head   *Head
	camera Camera
}

// compile seeds each phase with its longest laser-on time, then walks the
// table twice tracking how long each camera has been idle, stretching any
// phase where a camera would be re-used before it finished reading out the
// previous scan. The second iteration handles constraints that wrap from
// the end of the table back to its start.
func (pt *phaseTable) compile() compiledTable {
	var table compiledTable

	for _, phase := range pt.phases {
		entry := compiledPhase{}
		for _, el := range phase {
			if !el.configUnique {
				// Load the configuration fresh; the host may have changed
				// it since the element was authored.
				el.config = el.head.Configuration()
			}
			if el.config.LaserOnTimeMaxUs > entry.durationUs {
				entry.durationUs = el.config.LaserOnTimeMaxUs
			}
			entry.elements = append(entry.elements, el)
		}
		table.phases = append(table.phases, entry)
	}

	// Microseconds since each camera was last seen.
	accum := make(map[accumKey]uint32)

	for iter := 0; iter < 2; iter++ {
		for i := range table.phases {
			phase := &table.phases[i]

			for key := range accum {
				accum[key] += phase.durationUs
			}

			for _, el := range phase.elements {
				key := accumKey{el.head, el.camera}

				if lastSeen, seen := accum[key]; seen {
					// Camera readout time driven by the scan window.
					adjPeriod := int32(el.head.MinScanPeriodUs()) - int32(lastSeen)
					// Fixed inter-scan overhead on the same camera.
					adjFot := int32(frameOverheadTimeUs) - (int32(lastSeen) - int32(el.config.LaserOnTimeMaxUs))

					adj := adjPeriod
					if adjFot > adj {
						adj = adjFot
					}
					if adj > 0 {
						// The whole table stretches with the phase.
						phase.durationUs += uint32(adj)
						for key := range accum {
							accum[key] += uint32(adj)
						}
					}
				}

				accum[key] = 0
			}
		}
	}

	for _, phase := range table.phases {
		table.totalDurationUs += phase.durationUs
	}
	return table
}

// PhaseCreate appends an empty phase to the authored phase table.
func (s *System) PhaseCreate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase.createPhase()
}

// PhaseCount returns the number of authored phases.
func (s *System) PhaseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase.count()
}

// PhaseClear discards the authored phase table.
func (s *System) PhaseClear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase.reset()
}

// PhaseInsertCamera schedules a camera exposure in the newest phase; the
// laser is the camera's configured pairing.
func (s *System) PhaseInsertCamera(h *Head, camera Camera) error {
	return s.phaseInsertCamera(h, camera, nil)
}

// PhaseInsertCameraConfiguration is PhaseInsertCamera with a configuration
// override applied to just this element.
func (s *System) PhaseInsertCameraConfiguration(h *Head, camera Camera, cfg Configuration) error {
	return s.phaseInsertCamera(h, camera, &cfg)
}

func (s *System) phaseInsertCamera(h *Head, camera Camera, cfg *Configuration) error {
	if h == nil {
		return ErrNilArgument
	}
	laser := h.PairedLaser(camera)
	if laser == LaserInvalid {
		return fmt.Errorf("%w: no laser paired with %v", ErrInvalidArgument, camera)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase.addToLastPhase(h, camera, laser, cfg)
}

// PhaseInsertLaser schedules a laser exposure in the newest phase; the
// camera is the laser's configured pairing.
func (s *System) PhaseInsertLaser(h *Head, laser Laser) error {
	return s.phaseInsertLaser(h, laser, nil)
}

// PhaseInsertLaserConfiguration is PhaseInsertLaser with a configuration
// override applied to just this element.
func (s *System) PhaseInsertLaserConfiguration(h *Head, laser Laser, cfg Configuration) error {
	return s.phaseInsertLaser(h, laser, &cfg)
}

func (s *System) phaseInsertLaser(h *Head, laser Laser, cfg *Configuration) error {
	if h == nil {
		return ErrNilArgument
	}
	camera := h.PairedCamera(laser)
	if camera == CameraInvalid {
		return fmt.Errorf("%w: no camera paired with %v", ErrInvalidArgument, laser)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase.addToLastPhase(h, camera, laser, cfg)
}
