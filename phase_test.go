package scanhead

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newPhaseTestSystem(t *testing.T) (*System, *Head, *Head) {
	t.Helper()
	s := newTestSystem(t, discoveredJS50WX(100), discoveredJS50WX(200))
	h1, err := s.CreateHead(100, 0)
	require.NoError(t, err)
	h2, err := s.CreateHead(200, 1)
	require.NoError(t, err)
	return s, h1, h2
}

// withLaserOnMax pins the laser-on triple so compiled durations are
// deterministic.
func withLaserOnMax(t *testing.T, h *Head, us uint32) {
	t.Helper()
	cfg := h.ConfigurationDefault()
	cfg.LaserOnTimeMinUs = us
	cfg.LaserOnTimeDefUs = us
	cfg.LaserOnTimeMaxUs = us
	require.NoError(t, h.SetConfiguration(cfg))
}

func compiledDurations(table compiledTable) []uint32 {
	out := make([]uint32, 0, len(table.phases))
	for _, p := range table.phases {
		out = append(out, p.durationUs)
	}
	return out
}

// Each camera appears once per table. With a 1500 us minimum scan period
// and 500 us phases, the wrap-around pass stretches the phase where a
// camera first repeats until successive uses are a full readout apart.
func TestCompileTwoHeadsTwoPhases(t *testing.T) {
	s, h1, h2 := newPhaseTestSystem(t)
	withLaserOnMax(t, h1, 500)
	withLaserOnMax(t, h2, 500)
	h1.statusMinPeriodUs = 1500
	h2.statusMinPeriodUs = 1500

	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))
	require.NoError(t, s.PhaseInsertCamera(h2, CameraA))
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraB))
	require.NoError(t, s.PhaseInsertCamera(h2, CameraB))

	table := s.phase.compile()
	require.Equal(t, []uint32{1000, 500}, compiledDurations(table))
	require.Equal(t, uint32(1500), table.totalDurationUs)
	require.Equal(t, uint32(10+1500), s.MinScanPeriodUs())
}

// The same camera in both phases forces both gaps up to the minimum scan
// period.
func TestCompileSameCameraBothPhases(t *testing.T) {
	s, h1, _ := newPhaseTestSystem(t)
	withLaserOnMax(t, h1, 500)
	h1.statusMinPeriodUs = 1500

	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))

	table := s.phase.compile()
	require.Equal(t, []uint32{1500, 1500}, compiledDurations(table))
	require.Equal(t, uint32(3000), table.totalDurationUs)
}

// With generous spacing already present, only the fixed frame overhead
// can stretch a phase.
func TestCompileFrameOverheadDominates(t *testing.T) {
	s, h1, _ := newPhaseTestSystem(t)
	withLaserOnMax(t, h1, 400)
	// Window-driven minimum well below the phase spacing.
	h1.statusMinPeriodUs = 250

	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))

	// Gap between uses is one phase (400 us); time since exposure end is
	// 400 - 400 = 0, so the 158 us frame overhead stretches each phase.
	table := s.phase.compile()
	require.Equal(t, []uint32{558, 558}, compiledDurations(table))
}

// Compiling twice with unchanged head state yields identical timing.
func TestCompileIdempotent(t *testing.T) {
	s, h1, h2 := newPhaseTestSystem(t)
	withLaserOnMax(t, h1, 500)
	withLaserOnMax(t, h2, 300)
	h1.statusMinPeriodUs = 1500
	h2.statusMinPeriodUs = 900

	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))
	require.NoError(t, s.PhaseInsertCamera(h2, CameraB))
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraB))
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h2, CameraA))

	first := s.phase.compile()
	second := s.phase.compile()

	require.Equal(t, first.totalDurationUs, second.totalDurationUs)
	if diff := cmp.Diff(compiledDurations(first), compiledDurations(second)); diff != "" {
		t.Errorf("compile not idempotent (-first +second):\n%s", diff)
	}
}

// Raising any element's laser-on ceiling never shrinks the total.
func TestCompileMonotonicInLaserOnTime(t *testing.T) {
	for _, laserOn := range []uint32{100, 200, 500, 800, 1300, 2100} {
		s, h1, h2 := newPhaseTestSystem(t)
		withLaserOnMax(t, h1, laserOn)
		withLaserOnMax(t, h2, 500)
		h1.statusMinPeriodUs = 1000
		h2.statusMinPeriodUs = 1000

		s.PhaseCreate()
		require.NoError(t, s.PhaseInsertCamera(h1, CameraA))
		require.NoError(t, s.PhaseInsertCamera(h2, CameraA))
		s.PhaseCreate()
		require.NoError(t, s.PhaseInsertCamera(h1, CameraB))
		require.NoError(t, s.PhaseInsertCamera(h2, CameraB))

		total := s.phase.compile().totalDurationUs

		withLaserOnMax(t, h1, laserOn+200)
		grown := s.phase.compile().totalDurationUs
		require.GreaterOrEqual(t, grown, total, "laser on %d", laserOn)
	}
}

// Per-element configuration overrides feed the seed durations without
// touching the head's configuration.
func TestCompileUsesElementOverrides(t *testing.T) {
	s, h1, _ := newPhaseTestSystem(t)
	withLaserOnMax(t, h1, 100)

	override := h1.ConfigurationDefault()
	override.LaserOnTimeMinUs = 900
	override.LaserOnTimeDefUs = 900
	override.LaserOnTimeMaxUs = 900

	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCameraConfiguration(h1, CameraA, override))

	// Seeded at 900 us by the override, then stretched by the 158 us frame
	// overhead when the single phase wraps onto itself.
	table := s.phase.compile()
	require.Equal(t, []uint32{900 + 158}, compiledDurations(table))
	require.Equal(t, uint32(100), h1.Configuration().LaserOnTimeMaxUs)
}

func TestPhaseAuthoringValidation(t *testing.T) {
	s, h1, _ := newPhaseTestSystem(t)

	// No phase yet.
	require.ErrorIs(t, s.PhaseInsertCamera(h1, CameraA), ErrInvalidArgument)

	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))

	// Same (head, camera) twice within a phase.
	require.ErrorIs(t, s.PhaseInsertCamera(h1, CameraA), ErrInvalidArgument)

	// Camera with no laser pairing on this product.
	require.ErrorIs(t, s.PhaseInsertCamera(h1, Camera(9)), ErrInvalidArgument)

	// The JS-50 WX enumerates pairs by camera, so laser insertion cannot
	// resolve a camera.
	require.ErrorIs(t, s.PhaseInsertLaser(h1, Laser1), ErrInvalidArgument)

	// Invalid per-element override.
	bad := h1.ConfigurationDefault()
	bad.LaserOnTimeMaxUs = 10_000_000
	s.PhaseCreate()
	require.ErrorIs(t, s.PhaseInsertCameraConfiguration(h1, CameraB, bad), ErrInvalidArgument)

	// nil head.
	require.ErrorIs(t, s.PhaseInsertCamera(nil, CameraA), ErrNilArgument)
}

func TestPhaseElementLimit(t *testing.T) {
	s, h1, _ := newPhaseTestSystem(t)
	require.Equal(t, uint32(8), h1.MaxScanPairs())

	// Two cameras per phase; the ninth element for the head must refuse.
	added := 0
	var err error
	for phase := 0; phase < 5 && err == nil; phase++ {
		s.PhaseCreate()
		for _, camera := range []Camera{CameraA, CameraB} {
			if err = s.PhaseInsertCamera(h1, camera); err != nil {
				break
			}
			added++
		}
	}
	require.ErrorIs(t, err, ErrNoMoreRoom)
	require.Equal(t, 8, added)
}

func TestPhaseClear(t *testing.T) {
	s, h1, _ := newPhaseTestSystem(t)
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))
	require.Equal(t, 1, s.PhaseCount())

	s.PhaseClear()
	require.Equal(t, 0, s.PhaseCount())
	require.Equal(t, uint32(0), s.phase.compile().totalDurationUs)

	// The head's element count resets with the table.
	s.PhaseCreate()
	require.NoError(t, s.PhaseInsertCamera(h1, CameraA))
}
