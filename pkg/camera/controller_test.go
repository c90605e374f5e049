package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRig() (*Camera, *Controller) {
	start := mgl64.Vec3{0, 3, 15}
	cam := NewCamera(start)
	return cam, NewController(cam, start)
}

func TestBasisInvariantUnderMixedInput(t *testing.T) {
	cam, ctrl := newTestRig()

	// A deliberately messy session: every axis held at some point, uneven
	// timesteps, mode changes mid-flight.
	inputs := []KeyState{
		{Forward: true},
		{Forward: true, YawLeft: true},
		{YawLeft: true, PitchUp: true},
		{PitchUp: true, RollRight: true},
		{Back: true, RollRight: true, YawRight: true},
		{Down: true, PitchDown: true},
		{},
		{Up: true, RollLeft: true},
	}
	steps := []float64{1.0 / 240, 1.0 / 60, 1.0 / 30, 0.05, 1.0 / 144}

	for round := 0; round < 20; round++ {
		for i, keys := range inputs {
			ctrl.Update(steps[(round+i)%len(steps)], keys)
			assertValidBasis(t, cam)
		}
		if round%7 == 3 {
			ctrl.CycleMode()
			assertValidBasis(t, cam)
		}
	}
}

func TestManualTranslationFollowsOrientation(t *testing.T) {
	cam, ctrl := newTestRig()
	start := cam.Position
	forward := cam.Forward

	for i := 0; i < 120; i++ {
		ctrl.Update(1.0/60.0, KeyState{Forward: true})
	}

	moved := cam.Position.Sub(start)
	assert.Greater(t, moved.Len(), 0.5, "camera advanced")
	assert.InDelta(t, 1.0, moved.Normalize().Dot(forward), 1e-6, "movement is along forward")
}

func TestManualOpposingKeysCancel(t *testing.T) {
	cam, ctrl := newTestRig()
	start := cam.Position

	for i := 0; i < 60; i++ {
		ctrl.Update(1.0/60.0, KeyState{Forward: true, Back: true, Up: true, Down: true})
	}
	assert.Equal(t, start, cam.Position, "opposing keys produce no motion")
}

func TestManualYawTurnsAboutUp(t *testing.T) {
	cam, ctrl := newTestRig()
	up := cam.Up
	forward := cam.Forward

	for i := 0; i < 300; i++ {
		ctrl.Update(1.0/60.0, KeyState{YawRight: true})
	}

	assert.InDelta(t, 1.0, cam.Up.Dot(up), 1e-6, "up axis is unchanged by pure yaw")
	assert.Less(t, cam.Forward.Dot(forward), 0.999, "forward actually turned")
	assertValidBasis(t, cam)
}

func TestManualRotationIsDamped(t *testing.T) {
	cam, ctrl := newTestRig()
	forward := cam.Forward

	// One frame of input cannot snap the view: the smoothed rate starts
	// from rest.
	ctrl.Update(1.0/60.0, KeyState{YawRight: true})
	firstTurn := math.Acos(clampUnit(cam.Forward.Dot(forward)))
	assert.Less(t, firstTurn, BaseRotationSpeed/60.0, "first step is below the raw rate")

	// After release the motion keeps decaying instead of stopping dead.
	for i := 0; i < 30; i++ {
		ctrl.Update(1.0/60.0, KeyState{YawRight: true})
	}
	heading := cam.Forward
	ctrl.Update(1.0/60.0, KeyState{})
	assert.Less(t, cam.Forward.Dot(heading), 1.0-1e-9, "residual momentum after release")
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func TestCycleModeClosure(t *testing.T) {
	_, ctrl := newTestRig()

	modes := []Mode{}
	for i := 0; i < 5; i++ {
		ctrl.Update(0.02, KeyState{}) // accumulate some phase to discard
		ctrl.CycleMode()
		modes = append(modes, ctrl.Mode())
		assert.Zero(t, ctrl.orbitAngle, "transition %d resets phase", i)
		assert.Zero(t, ctrl.elapsed, "transition %d resets clock", i)
	}

	assert.Equal(t, []Mode{ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby, ModeManual}, modes)
}

func TestModeTransitionZeroesSmoothedSpeeds(t *testing.T) {
	_, ctrl := newTestRig()

	for i := 0; i < 60; i++ {
		ctrl.Update(1.0/60.0, KeyState{Forward: true, Up: true, YawRight: true, PitchUp: true, RollLeft: true})
	}
	assert.NotZero(t, ctrl.moveForward.Speed())
	assert.NotZero(t, ctrl.yaw.Speed())

	ctrl.CycleMode()
	for _, s := range []*Smoother{&ctrl.moveForward, &ctrl.moveUp, &ctrl.yaw, &ctrl.pitch, &ctrl.roll} {
		assert.Zero(t, s.Speed())
	}
}

func TestCycleModeForcesConsistentFrame(t *testing.T) {
	cam, ctrl := newTestRig()

	// Skew the view away from the origin, then enter a cinematic mode.
	for i := 0; i < 200; i++ {
		ctrl.Update(1.0/60.0, KeyState{YawRight: true, PitchDown: true})
	}
	ctrl.CycleMode()
	require.Equal(t, ModeSmoothOrbit, ctrl.Mode())

	// Before any further update the frame already faces the origin.
	want := cam.Position.Mul(-1).Normalize()
	assert.InDelta(t, 1.0, cam.Forward.Dot(want), 1e-9)
}

func TestSetMode(t *testing.T) {
	cam, ctrl := newTestRig()

	require.NoError(t, ctrl.SetMode(ModeCloseFlyby))
	assert.Equal(t, ModeCloseFlyby, ctrl.Mode())
	assert.Equal(t, "Close Fly-by", ctrl.ModeName())
	assertValidBasis(t, cam)
}

func TestSetModeInvalidLeavesStateAlone(t *testing.T) {
	_, ctrl := newTestRig()
	require.NoError(t, ctrl.SetMode(ModeWaveMotion))
	ctrl.Update(0.5, KeyState{})
	angle := ctrl.orbitAngle

	err := ctrl.SetMode(Mode(17))
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.Equal(t, ModeWaveMotion, ctrl.Mode())
	assert.Equal(t, angle, ctrl.orbitAngle)
}

func TestCinematicModesFaceOrigin(t *testing.T) {
	for _, mode := range []Mode{ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby} {
		t.Run(mode.String(), func(t *testing.T) {
			cam, ctrl := newTestRig()
			require.NoError(t, ctrl.SetMode(mode))

			// Held rotation keys must not pull the view off the origin.
			for i := 0; i < 90; i++ {
				ctrl.Update(1.0/60.0, KeyState{YawRight: true, PitchUp: true, RollLeft: true})
				want := cam.Position.Mul(-1).Normalize()
				assert.InDelta(t, 1.0, cam.Forward.Dot(want), 1e-9, "frame %d", i)
				assertValidBasis(t, cam)
			}
		})
	}
}

func TestTrajectoryDeterminism(t *testing.T) {
	steps := []float64{1.0 / 60, 1.0 / 30, 0.02, 1.0 / 144, 0.05}

	for _, mode := range []Mode{ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby} {
		t.Run(mode.String(), func(t *testing.T) {
			_, a := newTestRig()
			_, b := newTestRig()
			require.NoError(t, a.SetMode(mode))
			require.NoError(t, b.SetMode(mode))

			for i := 0; i < 500; i++ {
				dt := steps[i%len(steps)]
				a.Update(dt, KeyState{})
				b.Update(dt, KeyState{})
				assert.Equal(t, a.Camera().Position, b.Camera().Position, "frame %d", i)
			}
		})
	}
}

func TestSmoothOrbitFirstFrameNearStart(t *testing.T) {
	cam, ctrl := newTestRig()
	require.NoError(t, ctrl.SetMode(ModeSmoothOrbit))

	ctrl.Update(1e-9, KeyState{})
	assertVec3InDelta(t, mgl64.Vec3{15, 3, 0}, cam.Position, 1e-6)
}

func TestRisingSpiralWrapResetsClock(t *testing.T) {
	cam, ctrl := newTestRig()
	require.NoError(t, ctrl.SetMode(ModeRisingSpiral))

	const dt = 0.25
	wrapped := false
	for i := 0; i < 200; i++ {
		prevY := cam.Position.Y()
		ctrl.Update(dt, KeyState{})
		if cam.Position.Y() < prevY-5 {
			// The climb collapsed back to the floor in one step.
			assert.Equal(t, 1.0, cam.Position.Y())
			assert.Zero(t, ctrl.elapsed, "clock restarts on the wrap frame")
			assert.Greater(t, float64(i+1)*dt, 17.5, "wrap happens past the ceiling")
			wrapped = true
			break
		}
	}
	assert.True(t, wrapped, "spiral wrapped within the simulated window")
}

func TestResetRestoresInitialPose(t *testing.T) {
	start := mgl64.Vec3{0, 3, 15}
	cam := NewCamera(start)
	ctrl := NewController(cam, start)
	home := *cam

	for i := 0; i < 150; i++ {
		ctrl.Update(1.0/60.0, KeyState{Forward: true, YawLeft: true, RollRight: true})
	}
	require.NotEqual(t, home.Position, cam.Position)

	ctrl.Reset()
	assert.Equal(t, home.Position, cam.Position)
	assertVec3InDelta(t, home.Forward, cam.Forward, 1e-9)
	assertVec3InDelta(t, home.Right, cam.Right, 1e-9)
	assertVec3InDelta(t, home.Up, cam.Up, 1e-9)
	assert.Zero(t, ctrl.orbitAngle)
	assert.Zero(t, ctrl.elapsed)
}

func TestResetStopsMotionAndKeepsMode(t *testing.T) {
	cam, ctrl := newTestRig()
	require.NoError(t, ctrl.SetMode(ModeWaveMotion))
	for i := 0; i < 30; i++ {
		ctrl.Update(1.0/60.0, KeyState{})
	}

	ctrl.Reset()
	assert.Equal(t, ModeWaveMotion, ctrl.Mode(), "reset keeps the active mode")
	for _, s := range []*Smoother{&ctrl.moveForward, &ctrl.moveUp, &ctrl.yaw, &ctrl.pitch, &ctrl.roll} {
		assert.Zero(t, s.Speed())
	}

	// With no input the camera must hold still after a reset in Manual.
	require.NoError(t, ctrl.SetMode(ModeManual))
	ctrl.Reset()
	pos := cam.Position
	ctrl.Update(1.0/60.0, KeyState{})
	assert.Equal(t, pos, cam.Position, "no post-reset drift")
}

func TestDegenerateBasisRecoversInManual(t *testing.T) {
	cam, ctrl := newTestRig()
	cam.Forward = mgl64.Vec3{}
	cam.Right = mgl64.Vec3{}
	cam.Up = mgl64.Vec3{}

	ctrl.Update(1.0/60.0, KeyState{})
	assertValidBasis(t, cam)
	want := cam.Position.Mul(-1).Normalize()
	assert.InDelta(t, 1.0, cam.Forward.Dot(want), 1e-9, "rebuilt frame faces the origin")
}

func TestDegenerateOrientationHoldsFrame(t *testing.T) {
	cam, ctrl := newTestRig()
	cam.Position = mgl64.Vec3{}
	cam.Forward = mgl64.Vec3{}
	cam.Right = mgl64.Vec3{}
	cam.Up = mgl64.Vec3{}
	before := *cam

	// No direction can be derived; the update must neither panic nor
	// invent a frame.
	ctrl.Update(1.0/60.0, KeyState{Forward: true})
	assert.Equal(t, before.Forward, cam.Forward)
	assert.Equal(t, before.Right, cam.Right)
	assert.Equal(t, before.Up, cam.Up)
}

func TestUpdateNeverAltersInitialSnapshot(t *testing.T) {
	start := mgl64.Vec3{2, 4, 8}
	cam := NewCamera(start)
	ctrl := NewController(cam, start)

	for i := 0; i < 50; i++ {
		ctrl.Update(1.0/60.0, KeyState{Forward: true})
	}
	ctrl.CycleMode()
	for i := 0; i < 50; i++ {
		ctrl.Update(1.0/60.0, KeyState{})
	}

	ctrl.Reset()
	assert.Equal(t, start, cam.Position, "reset target survives the session")
}
