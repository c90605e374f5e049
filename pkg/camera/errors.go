package camera

import "errors"

// Degenerate geometry and invalid mode selections are always recovered
// locally; these sentinels let callers and tests identify which fallback
// engaged. Nothing in this package panics or halts the frame loop.
var (
	// ErrDegenerateAxis reports a direction too short to normalize, such as
	// a look-at target coinciding with the camera position.
	ErrDegenerateAxis = errors.New("camera: degenerate axis")

	// ErrDegenerateOrientation reports that no viewing direction could be
	// established at all; the previous valid frame is kept.
	ErrDegenerateOrientation = errors.New("camera: degenerate orientation")

	// ErrInvalidMode reports a mode outside the defined set.
	ErrInvalidMode = errors.New("camera: invalid mode")
)
