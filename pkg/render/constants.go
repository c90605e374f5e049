package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Movement key bindings. Translation runs along the camera's own axes,
// rotation about them; opposing keys cancel.
const (
	KeyMoveForward = glfw.KeyD
	KeyMoveBack    = glfw.KeyA
	KeyMoveUp      = glfw.KeyW
	KeyMoveDown    = glfw.KeyS
	KeyYawLeft     = glfw.KeyJ
	KeyYawRight    = glfw.KeyL
	KeyPitchUp     = glfw.KeyI
	KeyPitchDown   = glfw.KeyK
	KeyRollRight   = glfw.KeyU
	KeyRollLeft    = glfw.KeyO
)

// Action key bindings
const (
	KeyCycleMode          = glfw.KeyC
	KeyReset              = glfw.KeyR
	KeyNextResolution     = glfw.KeyN
	KeyPreviousResolution = glfw.KeyP
	KeyToggleFullscreen   = glfw.KeyF11
	KeyScreenshot         = glfw.KeyF2
	KeyQuit               = glfw.KeyEscape
)

const (
	appName = "Black Hole"

	// Seconds between window title refreshes
	titleRefreshInterval = 0.25

	// Default vertical field of view in degrees
	DefaultFOVDegrees = 60.0
)
