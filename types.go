package scanhead

import (
	"fmt"
	"net"

	"github.com/millvision/scanhead/internal/geometry"
	"github.com/millvision/scanhead/internal/spec"
	"github.com/millvision/scanhead/internal/units"
)

// Units fixes the unit of measure for every user-facing length on a System.
type Units = units.System

// Supported unit systems.
const (
	UnitsInvalid    = units.Invalid
	UnitsInches     = units.Inches
	UnitsMillimeter = units.Millimeters
)

// Camera identifies a camera on a head. Valid cameras start at CameraA.
type Camera uint32

const (
	CameraInvalid Camera = iota
	CameraA
	CameraB
)

func (c Camera) String() string {
	switch c {
	case CameraA:
		return "camera A"
	case CameraB:
		return "camera B"
	default:
		return fmt.Sprintf("camera(%d)", uint32(c))
	}
}

// Laser identifies a laser on a head. Valid lasers start at Laser1.
type Laser uint32

const (
	LaserInvalid Laser = iota
	Laser1
	Laser2
	Laser3
	Laser4
	Laser5
	Laser6
)

func (l Laser) String() string {
	if l == LaserInvalid {
		return "laser(invalid)"
	}
	return fmt.Sprintf("laser %d", uint32(l))
}

// HeadType is the product family of a scan head, as reported by discovery.
type HeadType uint32

const (
	HeadTypeInvalid   HeadType = HeadType(spec.ProductInvalid)
	HeadTypeJS50WX    HeadType = HeadType(spec.ProductJS50WX)
	HeadTypeJS50WSC   HeadType = HeadType(spec.ProductJS50WSC)
	HeadTypeJS50X6B20 HeadType = HeadType(spec.ProductJS50X6B20)
	HeadTypeJS50X6B30 HeadType = HeadType(spec.ProductJS50X6B30)
)

func (t HeadType) String() string {
	return spec.Product(t).String()
}

// CableOrientation says which side of the head the cable exits; equivalent
// to a 180 degree yaw in the alignment transform.
type CableOrientation uint32

const (
	CableOrientationInvalid CableOrientation = iota
	CableOrientationDownstream
	CableOrientationUpstream
)

func (c CableOrientation) String() string {
	switch c {
	case CableOrientationDownstream:
		return "downstream"
	case CableOrientationUpstream:
		return "upstream"
	default:
		return "invalid"
	}
}

// DataFormat selects the content and resolution of streamed profiles.
type DataFormat uint32

const (
	DataFormatInvalid DataFormat = iota
	DataFormatXYBrightnessFull
	DataFormatXYBrightnessHalf
	DataFormatXYBrightnessQuarter
	DataFormatXYFull
	DataFormatXYHalf
	DataFormatXYQuarter
)

// Discovered describes one scan head that answered broadcast discovery.
type Discovered struct {
	SerialNumber  uint32
	IPAddr        net.IP
	Type          HeadType
	TypeStr       string
	FirmwareMajor uint32
	FirmwareMinor uint32
	FirmwarePatch uint32
}

// Capabilities communicates the limits of a head's product family.
type Capabilities struct {
	CameraBrightnessBitDepth uint32
	MaxCameraImageHeight     uint32
	MaxCameraImageWidth      uint32
	MinScanPeriodUs          uint32
	MaxScanPeriodUs          uint32
	NumCameras               uint32
	NumEncoders              uint32
	NumLasers                uint32
}

// Configuration holds a head's operating parameters. The min/def/max
// triples bound the autoexposure algorithms; setting all three equal
// disables them.
type Configuration struct {
	CameraExposureTimeMinUs uint32
	CameraExposureTimeMaxUs uint32
	CameraExposureTimeDefUs uint32
	LaserOnTimeMinUs        uint32
	LaserOnTimeMaxUs        uint32
	LaserOnTimeDefUs        uint32
	// LaserDetectionThreshold is the minimum brightness for a valid point,
	// 0 to 1023.
	LaserDetectionThreshold uint32
	// SaturationThreshold is the brightness at which a point counts as
	// saturated, 0 to 1023.
	SaturationThreshold uint32
	// SaturationPercentage caps how many pixels per scan may exceed the
	// saturation threshold, 0 to 100.
	SaturationPercentage uint32
}

// Status is the most recent state a head reported.
type Status struct {
	GlobalTimeNs          uint64
	EncoderValues         []int64
	NumProfilesSent       uint32
	CameraAPixelsInWindow uint32
	CameraBPixelsInWindow uint32
	CameraATemp           int32
	CameraBTemp           int32
}

// ScanWindow is the region, as an ordered list of linear constraints in
// mill coordinates, outside which a head suppresses measurements.
type ScanWindow = geometry.Window

// WindowConstraint is a single scan window edge.
type WindowConstraint = geometry.Constraint

// NewScanWindowRectangular expands the rectangular shorthand into its four
// canonical constraints.
func NewScanWindowRectangular(top, bottom, left, right float64) (ScanWindow, error) {
	w, err := geometry.NewRectangularWindow(top, bottom, left, right)
	if err != nil {
		return ScanWindow{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return w, nil
}

// NewScanWindow builds a window from caller-supplied constraints.
func NewScanWindow(constraints []WindowConstraint) ScanWindow {
	return geometry.NewWindow(constraints)
}
