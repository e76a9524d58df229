// Package geometry owns the camera/mill coordinate transform and the scan
// window constraint model.
//
// Camera geometry arrives as integer values in 1/1000 scan system units.
// The alignment for a (camera, laser) pair rotates by the user roll, applies
// the cable-orientation yaw and shifts into mill space; the inverse runs
// user-supplied window constraints back into camera space before they are
// sent to the head.
package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Alignment is the transform for a single (camera, laser) pair. Values are
// immutable once constructed; replacing an alignment swaps the pointer.
type Alignment struct {
	roll       float64
	shiftX     float64
	shiftY     float64
	downstream bool
	scale      float64

	shiftX1000 float64
	shiftY1000 float64

	// row-major 2x2 coefficients, camera->mill and its inverse
	fwd [4]float64
	inv [4]float64
}

// NewAlignment builds the transform for one (camera, laser) pair.
//
// scale is the camera-to-mill unit scale (1.0 for inches, 25.4 for
// millimetres), roll is in degrees about Z, and the shifts are in scan
// system units. A downstream cable orientation adds a 180 degree yaw about
// Y, mirroring X.
func NewAlignment(scale, rollDegrees, shiftX, shiftY float64, downstream bool) (*Alignment, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("alignment scale must be positive, got %v", scale)
	}

	a := &Alignment{
		roll:       rollDegrees,
		shiftX:     shiftX,
		shiftY:     shiftY,
		downstream: downstream,
		scale:      scale,
		shiftX1000: shiftX * 1000.0,
		shiftY1000: shiftY * 1000.0,
	}

	yaw := 0.0
	if downstream {
		yaw = 180.0
	}
	sinRoll := math.Sin(rollDegrees * math.Pi / 180.0)
	cosRoll := math.Cos(rollDegrees * math.Pi / 180.0)
	cosYaw := math.Cos(yaw * math.Pi / 180.0)

	fwd := mat.NewDense(2, 2, []float64{
		cosYaw * cosRoll * scale, -sinRoll * scale,
		cosYaw * sinRoll * scale, cosRoll * scale,
	})
	var inv mat.Dense
	if err := inv.Inverse(fwd); err != nil {
		return nil, fmt.Errorf("alignment transform is singular: %w", err)
	}

	a.fwd = [4]float64{fwd.At(0, 0), fwd.At(0, 1), fwd.At(1, 0), fwd.At(1, 1)}
	a.inv = [4]float64{inv.At(0, 0), inv.At(0, 1), inv.At(1, 0), inv.At(1, 1)}

	return a, nil
}

// Roll returns the applied rotation in degrees.
func (a *Alignment) Roll() float64 { return a.roll }

// ShiftX returns the applied X shift in scan system units.
func (a *Alignment) ShiftX() float64 { return a.shiftX }

// ShiftY returns the applied Y shift in scan system units.
func (a *Alignment) ShiftY() float64 { return a.shiftY }

// Downstream reports whether the cable-orientation yaw is applied.
func (a *Alignment) Downstream() bool { return a.downstream }

// CameraToMill converts a point from camera to mill coordinates. Inputs and
// outputs are in 1/1000 scan system units.
func (a *Alignment) CameraToMill(x, y int32) (int32, int32) {
	xd := float64(x)
	yd := float64(y)
	xm := xd*a.fwd[0] + yd*a.fwd[1] + a.shiftX1000
	ym := xd*a.fwd[2] + yd*a.fwd[3] + a.shiftY1000
	return int32(math.Round(xm)), int32(math.Round(ym))
}

// MillToCamera converts a point from mill to camera coordinates. Inputs and
// outputs are in 1/1000 scan system units.
func (a *Alignment) MillToCamera(x, y int32) (int32, int32) {
	xd := float64(x) - a.shiftX1000
	yd := float64(y) - a.shiftY1000
	xc := xd*a.inv[0] + yd*a.inv[1]
	yc := xd*a.inv[2] + yd*a.inv[3]
	return int32(math.Round(xc)), int32(math.Round(yc))
}
