package scanhead

import (
	"fmt"

	"github.com/millvision/scanhead/internal/geometry"
)

// SetCableOrientation records which side of the head the cable exits and
// rebuilds every pair's alignment with the matching yaw. While connected,
// windows are re-sent because their camera-space form depends on the
// orientation.
func (h *Head) SetCableOrientation(cable CableOrientation) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if cable != CableOrientationUpstream && cable != CableOrientationDownstream {
		return fmt.Errorf("%w: cable orientation %d", ErrInvalidArgument, cable)
	}
	if h.scanning {
		return ErrScanning
	}

	h.cable = cable
	for key, a := range h.alignments {
		rebuilt, err := geometry.NewAlignment(
			h.units.AlignmentScale(), a.Roll(), a.ShiftX(), a.ShiftY(),
			cable == CableOrientationDownstream)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		h.alignments[key] = rebuilt
		h.publishAlignment(key, rebuilt)
	}

	if h.controlConn != nil {
		return h.sendWindowLocked(CameraInvalid)
	}
	return nil
}

// CableOrientation returns the configured cable orientation.
func (h *Head) CableOrientation() CableOrientation {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cable
}

// SetAlignment applies the same alignment to every (camera, laser) pair.
func (h *Head) SetAlignment(rollDegrees, shiftX, shiftY float64) error {
	var err error = ErrInternal
	for i := 0; i < h.pairCount(); i++ {
		key, ok := h.pairAt(i)
		if !ok {
			continue
		}
		err = h.setAlignmentPair(key, rollDegrees, shiftX, shiftY)
		if err != nil {
			return err
		}
	}
	return err
}

// SetAlignmentCamera applies an alignment to the pair a camera belongs to.
func (h *Head) SetAlignmentCamera(camera Camera, rollDegrees, shiftX, shiftY float64) error {
	laser := h.PairedLaser(camera)
	if laser == LaserInvalid {
		return fmt.Errorf("%w: no laser paired with %v", ErrInvalidArgument, camera)
	}
	return h.setAlignmentPair(pairKey{camera, laser}, rollDegrees, shiftX, shiftY)
}

// SetAlignmentLaser applies an alignment to the pair a laser belongs to.
func (h *Head) SetAlignmentLaser(laser Laser, rollDegrees, shiftX, shiftY float64) error {
	camera := h.PairedCamera(laser)
	if camera == CameraInvalid {
		return fmt.Errorf("%w: no camera paired with %v", ErrInvalidArgument, laser)
	}
	return h.setAlignmentPair(pairKey{camera, laser}, rollDegrees, shiftX, shiftY)
}

func (h *Head) setAlignmentPair(key pairKey, rollDegrees, shiftX, shiftY float64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.isCameraValid(key.camera) || !h.isLaserValid(key.laser) {
		return fmt.Errorf("%w: %v / %v invalid on %v", ErrInvalidArgument, key.camera, key.laser, h.headType)
	}
	if h.scanning {
		return ErrScanning
	}

	a, err := geometry.NewAlignment(
		h.units.AlignmentScale(), rollDegrees, shiftX, shiftY,
		h.cable == CableOrientationDownstream)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	h.alignments[key] = a
	h.publishAlignment(key, a)

	// Window constraints travel in camera space, so an alignment change
	// while connected invalidates what the head is holding.
	if h.controlConn != nil {
		return h.sendWindowLocked(key.camera)
	}
	return nil
}

// AlignmentCamera returns the alignment applied to a camera's pair.
func (h *Head) AlignmentCamera(camera Camera) (rollDegrees, shiftX, shiftY float64, err error) {
	laser := h.PairedLaser(camera)
	if laser == LaserInvalid {
		return 0, 0, 0, fmt.Errorf("%w: no laser paired with %v", ErrInvalidArgument, camera)
	}
	return h.alignmentPair(pairKey{camera, laser})
}

// AlignmentLaser returns the alignment applied to a laser's pair.
func (h *Head) AlignmentLaser(laser Laser) (rollDegrees, shiftX, shiftY float64, err error) {
	camera := h.PairedCamera(laser)
	if camera == CameraInvalid {
		return 0, 0, 0, fmt.Errorf("%w: no camera paired with %v", ErrInvalidArgument, laser)
	}
	return h.alignmentPair(pairKey{camera, laser})
}

func (h *Head) alignmentPair(key pairKey) (float64, float64, float64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	a, ok := h.alignments[key]
	if !ok {
		return 0, 0, 0, fmt.Errorf("%w: %v / %v invalid on %v", ErrInvalidArgument, key.camera, key.laser, h.headType)
	}
	return a.Roll(), a.ShiftX(), a.ShiftY(), nil
}

// SetWindow applies the same scan window to every (camera, laser) pair.
func (h *Head) SetWindow(w ScanWindow) error {
	var err error = ErrInternal
	for i := 0; i < h.pairCount(); i++ {
		key, ok := h.pairAt(i)
		if !ok {
			continue
		}
		err = h.setWindowPair(key, w)
		if err != nil {
			return err
		}
	}
	return err
}

// SetWindowCamera applies a scan window to the pair a camera belongs to.
func (h *Head) SetWindowCamera(camera Camera, w ScanWindow) error {
	laser := h.PairedLaser(camera)
	if laser == LaserInvalid {
		return fmt.Errorf("%w: no laser paired with %v", ErrInvalidArgument, camera)
	}
	return h.setWindowPair(pairKey{camera, laser}, w)
}

// SetWindowLaser applies a scan window to the pair a laser belongs to.
func (h *Head) SetWindowLaser(laser Laser, w ScanWindow) error {
	camera := h.PairedCamera(laser)
	if camera == CameraInvalid {
		return fmt.Errorf("%w: no camera paired with %v", ErrInvalidArgument, laser)
	}
	return h.setWindowPair(pairKey{camera, laser}, w)
}

func (h *Head) setWindowPair(key pairKey, w ScanWindow) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.isCameraValid(key.camera) || !h.isLaserValid(key.laser) {
		return fmt.Errorf("%w: %v / %v invalid on %v", ErrInvalidArgument, key.camera, key.laser, h.headType)
	}
	if h.scanning {
		return ErrScanning
	}

	h.windows[key] = w

	if h.controlConn != nil {
		return h.sendWindowLocked(key.camera)
	}
	return nil
}
