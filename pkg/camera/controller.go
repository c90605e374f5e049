package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Controller drives a Camera through the five motion modes. It owns all
// motion state that persists between frames: the active mode, the trajectory
// phase accumulators, and the five smoothed speeds (forward, up, yaw, pitch,
// roll) that give keyboard input its damped feel.
//
// A controller binds to one camera for the session. Calls are not safe for
// concurrent use; the owning render loop must issue one Update per frame and
// serialize CycleMode, SetMode and Reset with it.
//
// Smoothed speeds are zeroed on Reset and on every mode transition, so the
// camera always starts a mode from rest and leftover momentum never bleeds
// across transitions.
type Controller struct {
	cam        *Camera
	initialPos mgl64.Vec3

	mode        Mode
	orbitAngle  float64
	orbitRadius float64
	elapsed     float64

	moveForward Smoother
	moveUp      Smoother
	yaw         Smoother
	pitch       Smoother
	roll        Smoother
}

// NewController binds a controller to cam, starting in Manual mode with
// initialPos as the Reset target.
func NewController(cam *Camera, initialPos mgl64.Vec3) *Controller {
	return &Controller{
		cam:         cam,
		initialPos:  initialPos,
		mode:        ModeManual,
		orbitRadius: 15.0,
		moveForward: Smoother{Easing: MoveEasingFactor},
		moveUp:      Smoother{Easing: MoveEasingFactor},
		yaw:         Smoother{Easing: RotationEasingFactor},
		pitch:       Smoother{Easing: RotationEasingFactor},
		roll:        Smoother{Easing: RotationEasingFactor},
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode { return c.mode }

// ModeName returns the display name of the active mode.
func (c *Controller) ModeName() string { return c.mode.String() }

// Camera returns the camera driven by this controller.
func (c *Controller) Camera() *Camera { return c.cam }

// Update advances the camera by dt seconds using the supplied key snapshot.
// Position moves first (keyboard flight in Manual, the active trajectory
// otherwise), then the orientation pass re-points and repairs the basis.
// Every degenerate case recovers to a usable frame; Update never fails.
func (c *Controller) Update(dt float64, keys KeyState) {
	c.elapsed += dt
	// The phase rate is zero in Manual mode.
	c.orbitAngle += c.mode.angularRate() * dt

	switch c.mode {
	case ModeManual:
		c.stepManual(dt, keys)
	case ModeSmoothOrbit:
		c.cam.Position, c.orbitRadius = smoothOrbitAt(c.orbitAngle)
	case ModeWaveMotion:
		c.cam.Position = waveMotionAt(c.orbitAngle)
	case ModeRisingSpiral:
		var wrapped bool
		c.cam.Position, c.orbitRadius, wrapped = risingSpiralAt(c.orbitAngle, c.elapsed)
		if wrapped {
			c.elapsed = 0
		}
	case ModeCloseFlyby:
		c.cam.Position, c.orbitRadius = closeFlybyAt(c.orbitAngle)
	}

	c.updateOrientation(dt, keys)
}

// stepManual translates the camera along its own forward and up axes with
// per-axis exponential easing. Opposing keys cancel to a zero target.
func (c *Controller) stepManual(dt float64, keys KeyState) {
	forwardSpeed := c.moveForward.Step(axisTarget(keys.Forward, keys.Back, BaseMoveSpeed), dt)
	upSpeed := c.moveUp.Step(axisTarget(keys.Up, keys.Down, BaseMoveSpeed), dt)

	movement := c.cam.Forward.Mul(forwardSpeed * dt).
		Add(c.cam.Up.Mul(upSpeed * dt))
	c.cam.Position = c.cam.Position.Add(movement)
}

// updateOrientation recomputes the basis for this frame. Cinematic modes
// always face the origin, so held rotation keys have no effect there. Manual
// mode keeps the current orientation, applies the smoothed yaw, pitch and
// roll steps about the camera's own axes in that order, then repairs the
// result. If no viewing direction can be established the previous frame is
// held untouched.
func (c *Controller) updateOrientation(dt float64, keys KeyState) {
	if c.mode != ModeManual {
		// Fails only with the camera sitting on the origin; hold the frame.
		_ = c.cam.LookAt(mgl64.Vec3{})
		return
	}

	forward, right, up := c.cam.Forward, c.cam.Right, c.cam.Up
	if forward.Len() < DegenerateEpsilon || right.Len() < DegenerateEpsilon || up.Len() < DegenerateEpsilon {
		if err := c.cam.LookAt(mgl64.Vec3{}); err != nil {
			return
		}
		forward, right, up = c.cam.Forward, c.cam.Right, c.cam.Up
	}

	// Per-frame rotation angles from the smoothed rates. Each axis rotates
	// the two other basis vectors; near-zero steps are skipped. Positive
	// rotation follows the right-hand rule about each axis, so yaw left is
	// the positive direction about up.
	yawStep := c.yaw.Step(axisTarget(keys.YawLeft, keys.YawRight, BaseRotationSpeed), dt) * dt
	pitchStep := c.pitch.Step(axisTarget(keys.PitchUp, keys.PitchDown, BaseRotationSpeed), dt) * dt
	rollStep := c.roll.Step(axisTarget(keys.RollRight, keys.RollLeft, BaseRotationSpeed), dt) * dt

	if math.Abs(yawStep) > RotationStepEpsilon {
		forward = RotateAroundAxis(forward, up, yawStep)
		right = RotateAroundAxis(right, up, yawStep)
	}
	if math.Abs(pitchStep) > RotationStepEpsilon {
		forward = RotateAroundAxis(forward, right, pitchStep)
		up = RotateAroundAxis(up, right, pitchStep)
	}
	if math.Abs(rollStep) > RotationStepEpsilon {
		right = RotateAroundAxis(right, forward, rollStep)
		up = RotateAroundAxis(up, forward, rollStep)
	}

	c.cam.Forward, c.cam.Right, c.cam.Up = forward, right, up
	// Rotation preserves length, so repair cannot hit the degenerate path
	// here.
	_ = c.cam.Orthonormalize()
}

// CycleMode advances to the next mode in the cycle. The trajectory phase, the
// cinematic clock and all smoothed speeds restart from zero, and one
// orientation pass runs immediately at the nominal timestep so the frame is
// consistent before the next real update.
func (c *Controller) CycleMode() {
	c.transitionTo(c.mode.Next())
}

// SetMode jumps directly to mode m with the same state effects as CycleMode.
// An invalid mode is rejected with ErrInvalidMode and leaves all state alone.
func (c *Controller) SetMode(m Mode) error {
	if !m.Valid() {
		return ErrInvalidMode
	}
	c.transitionTo(m)
	return nil
}

func (c *Controller) transitionTo(m Mode) {
	c.mode = m
	c.orbitAngle = 0
	c.elapsed = 0
	c.resetSmoothing()
	c.updateOrientation(NominalTimestep, KeyState{})
}

func (c *Controller) resetSmoothing() {
	c.moveForward.Reset()
	c.moveUp.Reset()
	c.yaw.Reset()
	c.pitch.Reset()
	c.roll.Reset()
}

// Reset returns the camera to its initial position looking at the origin and
// stops all motion. The current mode is kept; trajectory phase, cinematic
// clock and smoothed speeds restart from zero.
func (c *Controller) Reset() {
	c.cam.Position = c.initialPos
	c.orbitAngle = 0
	c.elapsed = 0
	c.resetSmoothing()
	// Fails only when the initial position is the origin itself; the
	// previous frame is held then.
	_ = c.cam.LookAt(mgl64.Vec3{})
}
