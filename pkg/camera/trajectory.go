package camera

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Mode selects how the controller moves the camera each frame: direct
// keyboard flight, or one of four procedural paths orbiting the origin.
type Mode int

const (
	ModeManual Mode = iota
	ModeSmoothOrbit
	ModeWaveMotion
	ModeRisingSpiral
	ModeCloseFlyby
)

// Next returns the mode that follows m in the cycling order, wrapping from
// CloseFlyby back to Manual. Unknown values restart the cycle at Manual.
func (m Mode) Next() Mode {
	switch m {
	case ModeManual:
		return ModeSmoothOrbit
	case ModeSmoothOrbit:
		return ModeWaveMotion
	case ModeWaveMotion:
		return ModeRisingSpiral
	case ModeRisingSpiral:
		return ModeCloseFlyby
	default:
		return ModeManual
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeManual, ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby:
		return true
	}
	return false
}

// String returns the display name shown in the window title.
func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "Manual Control"
	case ModeSmoothOrbit:
		return "Smooth Orbit"
	case ModeWaveMotion:
		return "Wave Motion"
	case ModeRisingSpiral:
		return "Rising Spiral"
	case ModeCloseFlyby:
		return "Close Fly-by"
	default:
		return "Unknown"
	}
}

// ModeByName resolves a display name back to a mode, ignoring case.
func ModeByName(name string) (Mode, error) {
	for _, m := range []Mode{ModeManual, ModeSmoothOrbit, ModeWaveMotion, ModeRisingSpiral, ModeCloseFlyby} {
		if strings.EqualFold(name, m.String()) {
			return m, nil
		}
	}
	return ModeManual, fmt.Errorf("%w: %q", ErrInvalidMode, name)
}

// angularRate returns how fast the orbit phase advances in mode m, in
// radians per second. Manual mode has no phase.
func (m Mode) angularRate() float64 {
	switch m {
	case ModeSmoothOrbit:
		return 0.25
	case ModeWaveMotion:
		return 0.3
	case ModeRisingSpiral:
		return 0.35
	case ModeCloseFlyby:
		return 0.5
	default:
		return 0
	}
}

// smoothOrbitAt returns the position for phase angle: a fixed-radius circle
// with a slow vertical bob.
func smoothOrbitAt(angle float64) (pos mgl64.Vec3, radius float64) {
	radius = 15.0
	pos = mgl64.Vec3{
		math.Cos(angle) * radius,
		3.0 + math.Sin(angle*0.5)*1.5,
		math.Sin(angle) * radius,
	}
	return pos, radius
}

// waveMotionAt returns the position for phase angle. The Z phase runs at
// twice the X phase, tracing a figure eight.
func waveMotionAt(angle float64) mgl64.Vec3 {
	return mgl64.Vec3{
		math.Cos(angle) * 12.0,
		2.0 + math.Sin(angle*1.5)*3.0,
		math.Sin(angle*2.0) * 8.0,
	}
}

// risingSpiralAt returns the position for phase angle and elapsed climb time.
// wrapped reports that the climb passed the 8.0 ceiling and the height
// snapped back to the floor; the caller restarts its elapsed clock.
func risingSpiralAt(angle, elapsed float64) (pos mgl64.Vec3, radius float64, wrapped bool) {
	radius = 10.0 + math.Sin(elapsed*0.3)*3.0
	height := 1.0 + elapsed*0.4
	if height > 8.0 {
		height = 1.0
		wrapped = true
	}
	pos = mgl64.Vec3{
		math.Cos(angle) * radius,
		height,
		math.Sin(angle) * radius,
	}
	return pos, radius, wrapped
}

// closeFlybyAt returns the position for phase angle: a fast, tight orbit
// whose radius and height pulse at unrelated frequencies so successive passes
// differ.
func closeFlybyAt(angle float64) (pos mgl64.Vec3, radius float64) {
	radius = 6.0 + math.Sin(angle*0.7)*2.0
	pos = mgl64.Vec3{
		math.Cos(angle) * radius,
		1.5 + math.Cos(angle*1.3)*2.0,
		math.Sin(angle) * radius,
	}
	return pos, radius
}
