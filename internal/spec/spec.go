// Package spec loads the embedded per-product scan head specifications.
//
// Each supported product ships as a small FlatBuffers blob generated from
// the firmware specification; the blobs are embedded in the binary and
// decoded once at head creation. The values are firmware contracts, not
// tunables.
package spec

import (
	"embed"
	"fmt"

	"github.com/millvision/scanhead/internal/schema/client"
)

//go:embed blobs/*.bin
var blobs embed.FS

// Product identifies a scan head product family. The numeric values match
// the type field reported during broadcast discovery.
type Product uint32

const (
	ProductInvalid Product = iota
	ProductJS50WX
	ProductJS50WSC
	ProductJS50X6B20
	ProductJS50X6B30
)

var productBlobs = map[Product]string{
	ProductJS50WX:    "blobs/js50wx.bin",
	ProductJS50WSC:   "blobs/js50wsc.bin",
	ProductJS50X6B20: "blobs/js50x6b20.bin",
	ProductJS50X6B30: "blobs/js50x6b30.bin",
}

func (p Product) String() string {
	switch p {
	case ProductJS50WX:
		return "JS50WX"
	case ProductJS50WSC:
		return "JS50WSC"
	case ProductJS50X6B20:
		return "JS50X6B20"
	case ProductJS50X6B30:
		return "JS50X6B30"
	default:
		return fmt.Sprintf("Product(%d)", uint32(p))
	}
}

// GroupPrimary says whether configuration groups are enumerated by camera
// or by laser for a product.
type GroupPrimary byte

const (
	GroupPrimaryInvalid GroupPrimary = iota
	GroupPrimaryCamera
	GroupPrimaryLaser
)

// Group pairs a camera port with the laser port it exposes with.
type Group struct {
	CameraPort uint32
	LaserPort  uint32
}

// Specification holds the static limits of one scan head product.
type Specification struct {
	TypeStr                 string
	NumberOfCameras         uint32
	NumberOfLasers          uint32
	MaxScanPeriodUs         uint32
	MinScanPeriodUs         uint32
	MaxCameraColumns        uint32
	MaxCameraRows           uint32
	MaxLaserOnTimeUs        uint32
	MinLaserOnTimeUs        uint32
	MaxCameraExposureUs     uint32
	MinCameraExposureUs     uint32
	CameraPortToID          []uint32
	LaserPortToID           []uint32
	Groups                  []Group
	GroupPrimary            GroupPrimary
	MaxGroups               uint32
	CameraPortCableUpstream uint32
}

// Load decodes the embedded specification for the given product.
func Load(p Product) (*Specification, error) {
	name, ok := productBlobs[p]
	if !ok {
		return nil, fmt.Errorf("no specification for product %v", p)
	}

	raw, err := blobs.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read specification blob %s: %w", name, err)
	}

	fb := client.GetRootAsScanHeadSpecification(raw, 0)
	s := &Specification{
		TypeStr:                 string(fb.TypeStr()),
		NumberOfCameras:         fb.NumberOfCameras(),
		NumberOfLasers:          fb.NumberOfLasers(),
		MaxScanPeriodUs:         fb.MaxScanPeriodUs(),
		MinScanPeriodUs:         fb.MinScanPeriodUs(),
		MaxCameraColumns:        fb.MaxCameraColumns(),
		MaxCameraRows:           fb.MaxCameraRows(),
		MaxLaserOnTimeUs:        fb.MaxLaserOnTimeUs(),
		MinLaserOnTimeUs:        fb.MinLaserOnTimeUs(),
		MaxCameraExposureUs:     fb.MaxCameraExposureUs(),
		MinCameraExposureUs:     fb.MinCameraExposureUs(),
		GroupPrimary:            GroupPrimary(fb.ConfigurationGroupPrimary()),
		MaxGroups:               fb.MaxConfigurationGroups(),
		CameraPortCableUpstream: fb.CameraPortCableUpstream(),
	}

	for j := 0; j < fb.CameraPortToIdLength(); j++ {
		s.CameraPortToID = append(s.CameraPortToID, fb.CameraPortToId(j))
	}
	for j := 0; j < fb.LaserPortToIdLength(); j++ {
		s.LaserPortToID = append(s.LaserPortToID, fb.LaserPortToId(j))
	}
	var grp client.ConfigurationGroup
	for j := 0; j < fb.ConfigurationGroupsLength(); j++ {
		if fb.ConfigurationGroups(&grp, j) {
			s.Groups = append(s.Groups, Group{
				CameraPort: grp.CameraPort(),
				LaserPort:  grp.LaserPort(),
			})
		}
	}

	return s, nil
}

// CameraPortToIDOrInvalid maps a wire camera port to its user-facing camera
// id, or 0 when the port is out of range.
func (s *Specification) CameraPortToIDOrInvalid(port uint32) uint32 {
	if int(port) >= len(s.CameraPortToID) {
		return 0
	}
	return s.CameraPortToID[port]
}

// CameraIDToPort maps a user-facing camera id to its wire port, or -1 when
// the id is not assigned on this product.
func (s *Specification) CameraIDToPort(id uint32) int32 {
	for port, v := range s.CameraPortToID {
		if v == id {
			return int32(port)
		}
	}
	return -1
}

// LaserPortToIDOrInvalid maps a wire laser port to its user-facing laser id,
// or 0 when the port is out of range.
func (s *Specification) LaserPortToIDOrInvalid(port uint32) uint32 {
	if int(port) >= len(s.LaserPortToID) {
		return 0
	}
	return s.LaserPortToID[port]
}

// LaserIDToPort maps a user-facing laser id to its wire port, or -1 when the
// id is not assigned on this product.
func (s *Specification) LaserIDToPort(id uint32) int32 {
	for port, v := range s.LaserPortToID {
		if v == id {
			return int32(port)
		}
	}
	return -1
}
