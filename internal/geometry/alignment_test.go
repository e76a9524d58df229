package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func absDiff(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestIdentityAlignment(t *testing.T) {
	a, err := NewAlignment(1.0, 0, 0, 0, false)
	require.NoError(t, err)

	x, y := a.CameraToMill(1234, -5678)
	require.Equal(t, int32(1234), x)
	require.Equal(t, int32(-5678), y)

	x, y = a.MillToCamera(1234, -5678)
	require.Equal(t, int32(1234), x)
	require.Equal(t, int32(-5678), y)
}

func TestShiftOnlyAlignment(t *testing.T) {
	// 2.5 units of X shift is 2500 in 1/1000 units.
	a, err := NewAlignment(1.0, 0, 2.5, -1.0, false)
	require.NoError(t, err)

	x, y := a.CameraToMill(100, 200)
	require.Equal(t, int32(2600), x)
	require.Equal(t, int32(-800), y)

	x, y = a.MillToCamera(2600, -800)
	require.Equal(t, int32(100), x)
	require.Equal(t, int32(200), y)
}

func TestDownstreamMirrorsX(t *testing.T) {
	a, err := NewAlignment(1.0, 0, 0, 0, true)
	require.NoError(t, err)

	x, y := a.CameraToMill(1000, 500)
	require.Equal(t, int32(-1000), x)
	require.Equal(t, int32(500), y)

	// And the inverse undoes it.
	x, y = a.MillToCamera(x, y)
	require.Equal(t, int32(1000), x)
	require.Equal(t, int32(500), y)
}

func TestMillimeterScale(t *testing.T) {
	a, err := NewAlignment(25.4, 0, 0, 0, false)
	require.NoError(t, err)

	x, y := a.CameraToMill(1000, -1000)
	require.Equal(t, int32(25400), x)
	require.Equal(t, int32(-25400), y)
}

func TestRoundTripWithinOneUnit(t *testing.T) {
	cases := []struct {
		name       string
		scale      float64
		roll       float64
		shiftX     float64
		shiftY     float64
		downstream bool
	}{
		{"identity", 1.0, 0, 0, 0, false},
		{"rolled", 1.0, 12.5, 0, 0, false},
		{"shifted", 1.0, 0, 4.25, -3.75, false},
		{"rolled shifted", 1.0, -30, 1.5, 2.5, false},
		{"downstream rolled", 1.0, 45, -2, 7, true},
		{"millimeters", 25.4, 10, 100, -50, false},
	}

	points := [][2]int32{
		{0, 0}, {1, 1}, {-1, -1}, {1456, 1088},
		{-30000, 30000}, {25000, -25000}, {123, -456},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := NewAlignment(tc.scale, tc.roll, tc.shiftX, tc.shiftY, tc.downstream)
			require.NoError(t, err)

			for _, p := range points {
				mx, my := a.CameraToMill(p[0], p[1])
				cx, cy := a.MillToCamera(mx, my)
				mx2, my2 := a.CameraToMill(cx, cy)

				// Camera->mill->camera->mill drifts by at most one
				// 1/1000-unit count per axis.
				require.LessOrEqual(t, absDiff(mx, mx2), int32(1), "x drift for %v", p)
				require.LessOrEqual(t, absDiff(my, my2), int32(1), "y drift for %v", p)
			}
		})
	}
}

func TestRollRotatesAboutOrigin(t *testing.T) {
	a, err := NewAlignment(1.0, 90, 0, 0, false)
	require.NoError(t, err)

	// A point on +X maps onto +Y under a 90 degree roll.
	x, y := a.CameraToMill(1000, 0)
	require.LessOrEqual(t, math.Abs(float64(x)), 1.0)
	require.Equal(t, int32(1000), y)
}

func TestInvalidScale(t *testing.T) {
	_, err := NewAlignment(0, 0, 0, 0, false)
	require.Error(t, err)
	_, err = NewAlignment(-1, 0, 0, 0, false)
	require.Error(t, err)
}
