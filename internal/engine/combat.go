package engine

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-raider/internal/core"
)

// ShotResult describes the outcome of a single trigger pull.
type ShotResult struct {
	Fired  bool // false when the shot was dry (no ammo)
	Target int  // index of the killed enemy, -1 if the shot missed
	Points int  // score awarded for the kill
}

// ResolveShot performs hit-scan combat. With no ammo it is a complete
// no-op. Otherwise one round is spent and living enemies are scanned in
// slice order: an enemy is a candidate when inside the view cone and
// engagement range; each candidate gets one uniform roll against
//
//	(1 - dist/Depth*RangeFalloff) * classFactor * AccuracyScale
//
// and the first successful roll kills that enemy and ends the scan, so
// at most one enemy dies per shot. Kills award 100*(class rank+1).
func ResolveShot(w *World, tun Tunables, rng *rand.Rand) ShotResult {
	res := ShotResult{Target: -1}
	if w.Player.Ammo <= 0 {
		return res
	}
	w.Player.Ammo--
	res.Fired = true

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if !e.Alive {
			continue
		}

		dist := w.Player.distanceTo(e.X, e.Y)
		diff := core.AngleDiffDeg(w.Player.bearingTo(e.X, e.Y), w.Player.Angle)
		if math.Abs(diff) >= tun.FOV/2 || dist >= tun.Depth {
			continue
		}

		chance := (1 - dist/tun.Depth*tun.RangeFalloff) * tun.ClassFactors[e.Class] * tun.AccuracyScale
		if rng.Float64() < chance {
			e.Alive = false
			res.Target = i
			res.Points = 100 * (int(e.Class) + 1)
			w.Player.Score += res.Points
			break
		}
	}
	return res
}
