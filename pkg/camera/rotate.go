package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotateAroundAxis rotates v about an arbitrary axis by angle radians using
// Rodrigues' rotation formula:
//
//	v' = v*cos(a) + (axis x v)*sin(a) + axis*(axis . v)*(1 - cos(a))
//
// A zero angle or a degenerate axis returns v unchanged. The axis does not
// need to be unit length; it is normalized here.
func RotateAroundAxis(v, axis mgl64.Vec3, angle float64) mgl64.Vec3 {
	if angle == 0 {
		return v
	}
	n, ok := safeNormalize(axis)
	if !ok {
		return v
	}

	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return v.Mul(cos).
		Add(n.Cross(v).Mul(sin)).
		Add(n.Mul(n.Dot(v) * (1 - cos)))
}

// safeNormalize returns the unit vector of v, reporting failure instead of
// dividing by a near-zero length.
func safeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	if v.Len() < DegenerateEpsilon {
		return mgl64.Vec3{}, false
	}
	return v.Normalize(), true
}
