package engine

import (
	"math"
	"testing"
)

func testWorld(t *testing.T, rows []string, px, py, angle float64) *World {
	t.Helper()
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return &World{
		Grid:   g,
		Player: Player{X: px, Y: py, Angle: angle, Health: 100, Ammo: 50},
	}
}

func TestResolveIntentForward(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#...#",
		"#####",
	}, 1.5, 1.5, 0)
	tun := DefaultTunables()

	ResolveIntent(w, tun, IntentForward)
	if math.Abs(w.Player.X-1.8) > 1e-9 || math.Abs(w.Player.Y-1.5) > 1e-9 {
		t.Errorf("player at (%v,%v), want (1.8,1.5)", w.Player.X, w.Player.Y)
	}
}

func TestResolveIntentBlockedIsExactNoop(t *testing.T) {
	// A rejected move leaves the position bit-identical, not merely close.
	w := testWorld(t, []string{
		"###",
		"#.#",
		"###",
	}, 1.9, 1.5, 0)
	tun := DefaultTunables()

	x, y := w.Player.X, w.Player.Y
	ResolveIntent(w, tun, IntentForward)
	if w.Player.X != x || w.Player.Y != y {
		t.Errorf("blocked move shifted player from (%v,%v) to (%v,%v)",
			x, y, w.Player.X, w.Player.Y)
	}
}

func TestResolveIntentTurnWraps(t *testing.T) {
	tun := DefaultTunables()

	cases := []struct {
		name   string
		start  float64
		intent Intent
		want   float64
	}{
		{"left wraps below zero", 1, IntentTurnLeft, 358},
		{"right wraps past 360", 359, IntentTurnRight, 2},
		{"plain left", 90, IntentTurnLeft, 87},
		{"plain right", 90, IntentTurnRight, 93},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := testWorld(t, []string{"###", "#.#", "###"}, 1.5, 1.5, c.start)
			ResolveIntent(w, tun, c.intent)
			if math.Abs(w.Player.Angle-c.want) > 1e-9 {
				t.Errorf("angle = %v, want %v", w.Player.Angle, c.want)
			}
		})
	}
}

func TestResolveIntentStrafe(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	}, 2.5, 2.5, 0)
	tun := DefaultTunables()

	// Facing east, strafe right drifts +y, strafe left drifts -y.
	ResolveIntent(w, tun, IntentStrafeRight)
	if math.Abs(w.Player.Y-2.8) > 1e-9 || math.Abs(w.Player.X-2.5) > 1e-9 {
		t.Errorf("after strafe right: (%v,%v), want (2.5,2.8)", w.Player.X, w.Player.Y)
	}
	ResolveIntent(w, tun, IntentStrafeLeft)
	if math.Abs(w.Player.Y-2.5) > 1e-9 {
		t.Errorf("after strafe left: y = %v, want 2.5", w.Player.Y)
	}
}

func TestResolveIntentBackward(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#...#",
		"#####",
	}, 2.5, 1.5, 0)
	tun := DefaultTunables()

	ResolveIntent(w, tun, IntentBackward)
	if math.Abs(w.Player.X-2.2) > 1e-9 {
		t.Errorf("x = %v, want 2.2", w.Player.X)
	}
}

func TestResolveIntentLowerWallBlocks(t *testing.T) {
	w := testWorld(t, []string{
		"#####",
		"#.L.#",
		"#####",
	}, 1.8, 1.5, 0)
	tun := DefaultTunables()

	ResolveIntent(w, tun, IntentForward)
	if w.Player.X != 1.8 {
		t.Errorf("lower wall should block movement, x = %v", w.Player.X)
	}
}
