package camera

// Motion tuning. Speeds are world units or radians per second; the easing
// factors set the exponential response rate of the input smoothers, where
// higher means a snappier ramp.
const (
	BaseMoveSpeed        = 0.8
	MoveEasingFactor     = 12.0
	BaseRotationSpeed    = 0.3
	RotationEasingFactor = 15.0

	// DegenerateEpsilon is the length below which a vector cannot be
	// normalized and the basis fallback chain engages.
	DegenerateEpsilon = 1e-3

	// RotationStepEpsilon is the smallest per-frame rotation angle worth
	// applying; steps below it are skipped.
	RotationStepEpsilon = 1e-4

	// NominalTimestep is the frame delta used when a mode change forces an
	// orientation refresh outside the regular update cadence.
	NominalTimestep = 0.016
)
