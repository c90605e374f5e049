package camera

// KeyState is the per-frame snapshot of held movement keys, expressed as
// semantic axes rather than key codes. The controller reads exactly one
// snapshot per Update; edge-triggered actions such as mode cycling and reset
// stay with the caller.
type KeyState struct {
	// Translation along the camera's own axes.
	Forward bool
	Back    bool
	Up      bool
	Down    bool

	// Rotation about the camera's own axes.
	YawLeft   bool
	YawRight  bool
	PitchUp   bool
	PitchDown bool
	RollLeft  bool
	RollRight bool
}
