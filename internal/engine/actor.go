package engine

import "math"

// EnemyClass ranks enemies by how hard they are to hit and how many
// points they are worth.
type EnemyClass int

const (
	ClassNormal EnemyClass = iota
	ClassFast
	ClassStrong
)

// String returns a human-readable class name.
func (c EnemyClass) String() string {
	switch c {
	case ClassNormal:
		return "normal"
	case ClassFast:
		return "fast"
	case ClassStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// Player is the first-person actor. Position uses sub-cell precision;
// the facing angle is in degrees, normalized to [0, 360).
type Player struct {
	X, Y   float64
	Angle  float64
	Health int
	Ammo   int
	Score  int
}

// Enemy is a static hostile actor. Death is a flag flip, never removal:
// slice indices stay stable for the lifetime of the world, which render
// and debug paths rely on.
type Enemy struct {
	X, Y  float64
	Alive bool
	Class EnemyClass
}

// World bundles all mutable game state plus the immutable grid. It is
// passed explicitly through every resolver call; there are no package
// globals.
type World struct {
	Grid    *Grid
	Player  Player
	Enemies []Enemy
}

// NewWorld constructs a world from a built-in level definition.
func NewWorld(level *Level, tun Tunables) (*World, error) {
	grid, err := ParseGrid(level.Layout)
	if err != nil {
		return nil, err
	}

	enemies := make([]Enemy, len(level.Spawns))
	for i, s := range level.Spawns {
		enemies[i] = Enemy{X: s.X, Y: s.Y, Alive: true, Class: s.Class}
	}

	return &World{
		Grid: grid,
		Player: Player{
			X:      level.PlayerX,
			Y:      level.PlayerY,
			Angle:  level.PlayerAngle,
			Health: tun.StartHealth,
			Ammo:   tun.StartAmmo,
		},
		Enemies: enemies,
	}, nil
}

// AliveCount returns the number of enemies still standing.
func (w *World) AliveCount() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// distanceTo returns the Euclidean distance from the player to a point.
func (p Player) distanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// bearingTo returns the angle in degrees from the player to a point.
func (p Player) bearingTo(x, y float64) float64 {
	return math.Atan2(y-p.Y, x-p.X) * 180 / math.Pi
}
