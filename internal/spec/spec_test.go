package spec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestLoadJS50WX(t *testing.T) {
	s, err := Load(ProductJS50WX)
	require.NoError(t, err)

	want := &Specification{
		TypeStr:                 "JS-50 WX",
		NumberOfCameras:         2,
		NumberOfLasers:          1,
		MaxScanPeriodUs:         1000000,
		MinScanPeriodUs:         250,
		MaxCameraColumns:        1456,
		MaxCameraRows:           1088,
		MaxLaserOnTimeUs:        650000,
		MinLaserOnTimeUs:        15,
		MaxCameraExposureUs:     2000000,
		MinCameraExposureUs:     15,
		CameraPortToID:          []uint32{2, 1},
		LaserPortToID:           []uint32{1},
		Groups:                  []Group{{0, 0}, {1, 0}},
		GroupPrimary:            GroupPrimaryCamera,
		MaxGroups:               8,
		CameraPortCableUpstream: 0,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("JS50WX specification mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadJS50WSC(t *testing.T) {
	s, err := Load(ProductJS50WSC)
	require.NoError(t, err)
	require.Equal(t, "JS-50 WSC", s.TypeStr)
	require.Equal(t, uint32(1), s.NumberOfCameras)
	require.Equal(t, uint32(1), s.NumberOfLasers)
	require.Equal(t, uint32(500), s.MinScanPeriodUs)
	require.Equal(t, GroupPrimaryCamera, s.GroupPrimary)
	require.Equal(t, []Group{{0, 0}}, s.Groups)
}

func TestLoadJS50X6B(t *testing.T) {
	for _, p := range []Product{ProductJS50X6B20, ProductJS50X6B30} {
		s, err := Load(p)
		require.NoError(t, err, "product %v", p)
		require.Equal(t, uint32(2), s.NumberOfCameras)
		require.Equal(t, uint32(6), s.NumberOfLasers)
		require.Equal(t, GroupPrimaryLaser, s.GroupPrimary)
		require.Equal(t, []uint32{1, 2, 3, 4, 5, 6}, s.LaserPortToID)
		require.Equal(t, []Group{{1, 0}, {1, 1}, {1, 2}, {0, 3}, {0, 4}, {0, 5}}, s.Groups)
	}
}

func TestLoadUnknownProduct(t *testing.T) {
	_, err := Load(ProductInvalid)
	require.Error(t, err)
}

func TestPortIDMapping(t *testing.T) {
	s, err := Load(ProductJS50WX)
	require.NoError(t, err)

	// JS-50 WX maps port 0 to camera B (id 2) and port 1 to camera A (id 1).
	require.Equal(t, uint32(2), s.CameraPortToIDOrInvalid(0))
	require.Equal(t, uint32(1), s.CameraPortToIDOrInvalid(1))
	require.Equal(t, uint32(0), s.CameraPortToIDOrInvalid(2))
	require.Equal(t, int32(1), s.CameraIDToPort(1))
	require.Equal(t, int32(0), s.CameraIDToPort(2))
	require.Equal(t, int32(-1), s.CameraIDToPort(3))

	require.Equal(t, uint32(1), s.LaserPortToIDOrInvalid(0))
	require.Equal(t, int32(0), s.LaserIDToPort(1))
	require.Equal(t, int32(-1), s.LaserIDToPort(2))
}
