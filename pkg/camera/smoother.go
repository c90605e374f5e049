package camera

import "math"

// Smoother converges a speed toward a target with a frame-rate independent
// exponential response (a one-pole low-pass filter). The retained speed is
// what turns discrete key presses and releases into gradual acceleration and
// deceleration. Each control axis owns its own Smoother, so separate
// controller instances never share state.
type Smoother struct {
	// Easing sets the response rate; the time constant is 1/Easing seconds.
	Easing float64

	speed float64
}

// Step advances the filter by dt seconds toward target and returns the new
// speed. The blend factor 1-exp(-Easing*dt) stays in [0,1), so the speed
// approaches the target monotonically regardless of timestep.
func (s *Smoother) Step(target, dt float64) float64 {
	alpha := 1 - math.Exp(-s.Easing*dt)
	s.speed += (target - s.speed) * alpha
	return s.speed
}

// Speed returns the current smoothed speed without advancing the filter.
func (s *Smoother) Speed() float64 { return s.speed }

// Reset drops the retained speed to zero.
func (s *Smoother) Reset() { s.speed = 0 }

// axisTarget converts a pair of opposing key states into a target speed:
// +base, -base, or zero when neither or both keys are held.
func axisTarget(positive, negative bool, base float64) float64 {
	var target float64
	if positive {
		target += base
	}
	if negative {
		target -= base
	}
	return target
}
