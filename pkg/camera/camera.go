// Package camera implements the orientation and motion controller for the
// black hole visualization: a right-handed orthonormal camera basis maintained
// under continuous incremental rotation, damped keyboard-driven translation
// and rotation, and four procedural cinematic trajectories around the scene
// origin where the black hole sits.
package camera

import (
	"github.com/go-gl/mathgl/mgl64"
)

// worldUp is the global up reference used when a basis has to be rebuilt.
var worldUp = mgl64.Vec3{0, 1, 0}

// Camera holds a position and an orthonormal orientation basis. The renderer
// consumes the four vectors directly each frame; mutation goes through the
// Controller or the basis methods below, which keep the frame valid.
type Camera struct {
	Position mgl64.Vec3
	Forward  mgl64.Vec3
	Right    mgl64.Vec3
	Up       mgl64.Vec3
}

// NewCamera returns a camera at pos oriented toward the scene origin.
func NewCamera(pos mgl64.Vec3) *Camera {
	c := &Camera{
		Position: pos,
		Forward:  mgl64.Vec3{0, 0, -1},
		Right:    mgl64.Vec3{1, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
	}
	// LookAt fails only when pos is the origin; the default frame above
	// stands in that case.
	_ = c.LookAt(mgl64.Vec3{})
	return c
}

// LookAt orients the basis so that Forward points at target. If target
// coincides with the camera position within DegenerateEpsilon the frame is
// left untouched and ErrDegenerateAxis is returned.
func (c *Camera) LookAt(target mgl64.Vec3) error {
	forward, ok := safeNormalize(target.Sub(c.Position))
	if !ok {
		return ErrDegenerateAxis
	}
	c.Forward = forward
	c.Right = rightFrom(forward)
	c.Up = c.Right.Cross(c.Forward).Normalize()
	return nil
}

// rightFrom derives a right vector orthogonal to forward, preferring the
// world up reference and falling back to the X axis when forward is vertical.
func rightFrom(forward mgl64.Vec3) mgl64.Vec3 {
	right, ok := safeNormalize(forward.Cross(worldUp))
	if !ok {
		right, _ = safeNormalize(forward.Cross(mgl64.Vec3{1, 0, 0}))
	}
	return right
}

// Orthonormalize repairs the basis with forward-primary Gram-Schmidt: Forward
// keeps its direction, Right and Up are projected orthogonal to it, and the
// frame is forced right-handed. Applying it to an already valid frame leaves
// the frame unchanged. A degenerate Forward falls back to facing the scene
// origin; if the position sits on the origin as well there is no direction to
// face, so the previous frame is kept and ErrDegenerateOrientation returned.
func (c *Camera) Orthonormalize() error {
	forward, ok := safeNormalize(c.Forward)
	if !ok {
		forward, ok = safeNormalize(c.Position.Mul(-1))
		if !ok {
			return ErrDegenerateOrientation
		}
	}

	right, ok := safeNormalize(c.Right.Sub(forward.Mul(forward.Dot(c.Right))))
	if !ok {
		right = rightFrom(forward)
	}

	up, ok := safeNormalize(c.Up.Sub(forward.Mul(forward.Dot(c.Up))).Sub(right.Mul(right.Dot(c.Up))))
	if !ok {
		up = right.Cross(forward).Normalize()
	}

	if right.Cross(forward).Dot(up) < 0 {
		up = up.Mul(-1)
	}

	c.Forward, c.Right, c.Up = forward, right, up
	return nil
}
