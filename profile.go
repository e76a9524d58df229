package scanhead

import "math"

const (
	// ProfileDataLen is the fixed number of point slots in a profile, one
	// per camera column.
	ProfileDataLen = 1456

	// ProfileBufferCapacity bounds the per-head ring of completed
	// profiles; overflow drops the oldest entry.
	ProfileBufferCapacity = 1000

	// MaxEncoders is the most encoder values a head reports per profile.
	MaxEncoders = 3

	// InvalidXY fills the x/y of point slots no measurement landed in.
	InvalidXY = math.MinInt32
	// InvalidBrightness fills the brightness of empty point slots.
	InvalidBrightness = 0

	// CameraImageWidth and CameraImageHeight are the dimensions of a
	// diagnostic image capture.
	CameraImageWidth  = 1456
	CameraImageHeight = 1088
)

// Point is a single measured sample in 1/1000 scan system units. Slots no
// measurement landed in carry InvalidXY/InvalidBrightness.
type Point struct {
	X          int32
	Y          int32
	Brightness int32
}

// Profile is one scan line from a single (camera, laser) exposure. The
// slot array is fixed size; DataValidXY and DataValidBrightness count the
// populated slots.
type Profile struct {
	HeadID         uint32
	Camera         Camera
	Laser          Laser
	TimestampNs    uint64
	Flags          uint32
	SequenceNumber uint32
	EncoderValues  []int64
	LaserOnTimeUs  uint32
	Format         DataFormat

	// PacketsReceived and PacketsExpected expose datagram loss: equal for
	// a complete profile, PacketsReceived < PacketsExpected otherwise.
	PacketsReceived uint32
	PacketsExpected uint32

	DataValidXY         uint32
	DataValidBrightness uint32
	Data                [ProfileDataLen]Point
}

// Complete reports whether every datagram of the profile arrived.
func (p *Profile) Complete() bool {
	return p.PacketsReceived == p.PacketsExpected
}

// CameraImage is a diagnostic image capture from one camera.
type CameraImage struct {
	HeadID               uint32
	Camera               Camera
	Laser                Laser
	TimestampNs          uint64
	CameraExposureTimeUs uint32
	LaserOnTimeUs        uint32
	ImageHeight          uint32
	ImageWidth           uint32
	EncoderValues        []int64
	Pixels               []byte
}

func newProfileShell() *Profile {
	p := &Profile{}
	for i := range p.Data {
		p.Data[i] = Point{X: InvalidXY, Y: InvalidXY, Brightness: InvalidBrightness}
	}
	return p
}
