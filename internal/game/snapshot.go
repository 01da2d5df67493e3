package game

// Phase labels the mission status for snapshots.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseWon      Phase = "won"
	PhasePaused   Phase = "paused"
	PhaseTooSmall Phase = "too_small"
	PhaseBroken   Phase = "broken"
)

// Snapshot captures the observable mission state for determinism
// testing and replay.
type Snapshot struct {
	Tick        uint64
	Mission     string
	PlayerX     float64
	PlayerY     float64
	PlayerAngle float64
	Health      int
	Ammo        int
	Score       int
	Alive       int
	AnimFrame   int
	Phase       Phase
}

// Snapshot returns the current mission snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.loadErr != nil:
		phase = PhaseBroken
	case g.tooSmall:
		phase = PhaseTooSmall
	case g.won:
		phase = PhaseWon
	case g.paused:
		phase = PhasePaused
	}

	snap := Snapshot{
		Tick:      g.tick,
		Mission:   g.level.ID,
		AnimFrame: g.animFrame,
		Phase:     phase,
	}
	if g.world != nil {
		snap.PlayerX = g.world.Player.X
		snap.PlayerY = g.world.Player.Y
		snap.PlayerAngle = g.world.Player.Angle
		snap.Health = g.world.Player.Health
		snap.Ammo = g.world.Player.Ammo
		snap.Score = g.world.Player.Score
		snap.Alive = g.world.AliveCount()
	}
	return snap
}
