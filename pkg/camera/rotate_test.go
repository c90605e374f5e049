package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRotateAroundAxis(t *testing.T) {
	x := mgl64.Vec3{1, 0, 0}
	y := mgl64.Vec3{0, 1, 0}
	z := mgl64.Vec3{0, 0, 1}

	cases := []struct {
		name  string
		v     mgl64.Vec3
		axis  mgl64.Vec3
		angle float64
		want  mgl64.Vec3
	}{
		{"quarter turn about y", x, y, math.Pi / 2, mgl64.Vec3{0, 0, -1}},
		{"half turn about y", x, y, math.Pi, mgl64.Vec3{-1, 0, 0}},
		{"quarter turn about x", y, x, math.Pi / 2, z},
		{"quarter turn about z", x, z, math.Pi / 2, y},
		{"full turn is identity", mgl64.Vec3{1, 2, 3}, y, 2 * math.Pi, mgl64.Vec3{1, 2, 3}},
		{"axis scaling is irrelevant", x, y.Mul(42), math.Pi / 2, mgl64.Vec3{0, 0, -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RotateAroundAxis(tc.v, tc.axis, tc.angle)
			assertVec3InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestRotateAroundAxisNoOps(t *testing.T) {
	v := mgl64.Vec3{0.3, -1.2, 4.5}

	assert.Equal(t, v, RotateAroundAxis(v, mgl64.Vec3{0, 1, 0}, 0), "zero angle")
	assert.Equal(t, v, RotateAroundAxis(v, mgl64.Vec3{}, 1.0), "zero axis")
	assert.Equal(t, v, RotateAroundAxis(v, mgl64.Vec3{1e-4, 0, 0}, 1.0), "sub-epsilon axis")
}

func TestRotateAroundAxisPreservesLength(t *testing.T) {
	v := mgl64.Vec3{2, -3, 0.5}
	axis := mgl64.Vec3{1, 1, -2}

	for _, angle := range []float64{0.1, 1.0, 2.6, -0.7, 11.0} {
		got := RotateAroundAxis(v, axis, angle)
		assert.InDelta(t, v.Len(), got.Len(), 1e-9, "angle %v", angle)
	}
}

func TestRotateAroundAxisComposes(t *testing.T) {
	// Two quarter turns about the same axis equal one half turn.
	v := mgl64.Vec3{1, 0.5, -0.25}
	axis := mgl64.Vec3{0, 1, 0}

	twice := RotateAroundAxis(RotateAroundAxis(v, axis, math.Pi/2), axis, math.Pi/2)
	once := RotateAroundAxis(v, axis, math.Pi)
	assertVec3InDelta(t, once, twice, 1e-9)
}

func TestSafeNormalize(t *testing.T) {
	n, ok := safeNormalize(mgl64.Vec3{3, 0, 4})
	assert.True(t, ok)
	assertVec3InDelta(t, mgl64.Vec3{0.6, 0, 0.8}, n, 1e-12)

	_, ok = safeNormalize(mgl64.Vec3{})
	assert.False(t, ok)

	_, ok = safeNormalize(mgl64.Vec3{5e-4, 5e-4, 0})
	assert.False(t, ok)
}
