package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeNextCycle(t *testing.T) {
	order := []Mode{ModeManual, ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby}

	m := ModeManual
	for i := 1; i <= len(order); i++ {
		m = m.Next()
		assert.Equal(t, order[i%len(order)], m, "step %d", i)
	}
	assert.Equal(t, ModeManual, m, "five steps close the cycle")
}

func TestModeNextFromInvalidRestartsAtManual(t *testing.T) {
	assert.Equal(t, ModeManual, Mode(42).Next())
}

func TestModeValid(t *testing.T) {
	for _, m := range []Mode{ModeManual, ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby} {
		assert.True(t, m.Valid(), m.String())
	}
	assert.False(t, Mode(-1).Valid())
	assert.False(t, Mode(5).Valid())
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "Manual Control", ModeManual.String())
	assert.Equal(t, "Smooth Orbit", ModeSmoothOrbit.String())
	assert.Equal(t, "Wave Motion", ModeWaveMotion.String())
	assert.Equal(t, "Rising Spiral", ModeRisingSpiral.String())
	assert.Equal(t, "Close Fly-by", ModeCloseFlyby.String())
	assert.Equal(t, "Unknown", Mode(99).String())
}

func TestModeByName(t *testing.T) {
	for _, m := range []Mode{ModeManual, ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby} {
		got, err := ModeByName(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ModeByName("wave motion")
	require.NoError(t, err, "names match case-insensitively")
	assert.Equal(t, ModeWaveMotion, got)

	_, err = ModeByName("Spaghettification")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestAngularRates(t *testing.T) {
	assert.Equal(t, 0.0, ModeManual.angularRate())
	assert.Equal(t, 0.25, ModeSmoothOrbit.angularRate())
	assert.Equal(t, 0.3, ModeWaveMotion.angularRate())
	assert.Equal(t, 0.35, ModeRisingSpiral.angularRate())
	assert.Equal(t, 0.5, ModeCloseFlyby.angularRate())
}

func TestSmoothOrbitAtPhaseZero(t *testing.T) {
	pos, radius := smoothOrbitAt(0)
	assert.Equal(t, mgl64.Vec3{15, 3, 0}, pos)
	assert.Equal(t, 15.0, radius)
}

func TestSmoothOrbitStaysOnCylinder(t *testing.T) {
	for _, angle := range []float64{0.1, 1.0, 3.7, 12.0, 100.0} {
		pos, _ := smoothOrbitAt(angle)
		horizontal := math.Hypot(pos.X(), pos.Z())
		assert.InDelta(t, 15.0, horizontal, 1e-9, "angle %v", angle)
		assert.GreaterOrEqual(t, pos.Y(), 1.5-1e-9, "angle %v", angle)
		assert.LessOrEqual(t, pos.Y(), 4.5+1e-9, "angle %v", angle)
	}
}

func TestWaveMotionFigureEight(t *testing.T) {
	assertVec3InDelta(t, mgl64.Vec3{12, 2, 0}, waveMotionAt(0), 1e-9)

	// The doubled Z phase closes a full figure eight while X completes one
	// cycle: at angle pi the Z term is back at zero with X negated.
	assertVec3InDelta(t, mgl64.Vec3{-12, 2 + 3*math.Sin(1.5*math.Pi), 0}, waveMotionAt(math.Pi), 1e-9)
}

func TestRisingSpiralClimbAndWrap(t *testing.T) {
	pos, _, wrapped := risingSpiralAt(0, 0)
	assert.False(t, wrapped)
	assert.Equal(t, 1.0, pos.Y(), "starts at the floor")

	pos, _, wrapped = risingSpiralAt(1.0, 10.0)
	assert.False(t, wrapped)
	assert.InDelta(t, 5.0, pos.Y(), 1e-9, "climbs at 0.4 units per second")

	// Height 8.0 exactly is still inside; the wrap is strict.
	pos, _, wrapped = risingSpiralAt(1.0, 17.5)
	assert.False(t, wrapped)
	assert.InDelta(t, 8.0, pos.Y(), 1e-9)

	pos, _, wrapped = risingSpiralAt(1.0, 17.6)
	assert.True(t, wrapped)
	assert.Equal(t, 1.0, pos.Y(), "snaps back to the floor")
}

func TestRisingSpiralRadiusPulse(t *testing.T) {
	_, radius, _ := risingSpiralAt(0, 0)
	assert.Equal(t, 10.0, radius)

	_, radius, _ = risingSpiralAt(0, math.Pi/2/0.3)
	assert.InDelta(t, 13.0, radius, 1e-9, "peak of the sine pulse")
}

func TestCloseFlybyAtPhaseZero(t *testing.T) {
	pos, radius := closeFlybyAt(0)
	assert.Equal(t, 6.0, radius)
	assertVec3InDelta(t, mgl64.Vec3{6, 3.5, 0}, pos, 1e-9)
}

func TestCloseFlybyRadiusEnvelope(t *testing.T) {
	for _, angle := range []float64{0.3, 1.1, 4.2, 9.9, 50.0} {
		_, radius := closeFlybyAt(angle)
		assert.GreaterOrEqual(t, radius, 4.0-1e-9, "angle %v", angle)
		assert.LessOrEqual(t, radius, 8.0+1e-9, "angle %v", angle)
	}
}
