package engine

// Tunables collects every numeric knob of the engine in one place so the
// config layer can override them and tests can pin them independently.
// Zero value is not usable; start from DefaultTunables.
type Tunables struct {
	// View
	FOV             float64 // field of view in degrees; must stay below 180 so fisheye cosine is positive
	Depth           float64 // maximum ray range in grid units
	StepSize        float64 // ray march increment, far smaller than a tile
	EdgeTolerance   float64 // fractional cell distance that counts as a boundary hit
	SpriteTolerance float64 // angular slack in degrees for sprite visibility, wider than column spacing

	// Movement
	MoveStep float64 // grid units per movement intent
	TurnStep float64 // degrees per turn intent

	// Player
	StartHealth int
	StartAmmo   int

	// Combat
	RangeFalloff  float64    // fraction of hit chance lost at maximum range
	ClassFactors  [3]float64 // hit chance multiplier per enemy class
	AccuracyScale float64    // difficulty multiplier applied to every hit roll

	// Floor decoration
	FloorGridSize int // period of the decorative floor grid lines
}

// DefaultTunables returns the values the game shipped with.
func DefaultTunables() Tunables {
	return Tunables{
		FOV:             70,
		Depth:           16,
		StepSize:        0.02,
		EdgeTolerance:   0.02,
		SpriteTolerance: 3,
		MoveStep:        0.3,
		TurnStep:        3,
		StartHealth:     100,
		StartAmmo:       50,
		RangeFalloff:    0.8,
		ClassFactors:    [3]float64{1.0, 0.7, 0.5},
		AccuracyScale:   1.0,
		FloorGridSize:   4,
	}
}
