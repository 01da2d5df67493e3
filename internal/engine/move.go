package engine

import (
	"math"

	"github.com/vovakirdan/tui-raider/internal/core"
)

// Intent is a single movement or turn request for one tick.
type Intent int

const (
	IntentForward Intent = iota
	IntentBackward
	IntentStrafeLeft
	IntentStrafeRight
	IntentTurnLeft
	IntentTurnRight
)

// ResolveIntent applies one intent to the player. Turns always succeed
// and renormalize the angle into [0, 360). Translations are validated
// against the grid first: a destination cell that is out of bounds or
// not passable leaves the position untouched; an illegal move is a
// silent rejection, not an error.
func ResolveIntent(w *World, tun Tunables, intent Intent) {
	p := &w.Player

	switch intent {
	case IntentTurnLeft:
		p.Angle = core.NormalizeDeg(p.Angle - tun.TurnStep)
		return
	case IntentTurnRight:
		p.Angle = core.NormalizeDeg(p.Angle + tun.TurnStep)
		return
	}

	heading := p.Angle
	step := tun.MoveStep
	switch intent {
	case IntentBackward:
		step = -step
	case IntentStrafeLeft:
		heading -= 90
	case IntentStrafeRight:
		heading += 90
	}

	rad := core.Radians(heading)
	newX := p.X + math.Cos(rad)*step
	newY := p.Y + math.Sin(rad)*step

	kind, err := w.Grid.Classify(int(newX), int(newY))
	if err != nil || !Passable(kind) {
		return
	}
	p.X, p.Y = newX, newY
}
