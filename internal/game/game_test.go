package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-raider/internal/core"
	"github.com/vovakirdan/tui-raider/internal/engine"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(&engine.Levels[0])
	g.Reset(core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 30})
	if g.loadErr != nil {
		t.Fatalf("level failed to load: %v", g.loadErr)
	}
	return g
}

func TestDeterminism(t *testing.T) {
	// Two missions with the same seed and the same inputs should agree
	// on every snapshot field.
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 30}

	g1 := New(&engine.Levels[0])
	g1.Reset(cfg)
	g2 := New(&engine.Levels[0])
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 200; i++ {
		input.Clear()
		if i%3 == 0 {
			input.Set(core.ActionForward)
		}
		if i%7 == 0 {
			input.Set(core.ActionTurnRight)
		}
		if i%31 == 0 {
			input.Set(core.ActionShoot)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	if snap.Health != 100 || snap.Ammo != 50 || snap.Score != 0 {
		t.Errorf("initial stats = %d/%d/%d, want 100/50/0", snap.Health, snap.Ammo, snap.Score)
	}
	if snap.Alive != len(engine.Levels[0].Spawns) {
		t.Errorf("alive = %d, want %d", snap.Alive, len(engine.Levels[0].Spawns))
	}
	if snap.Phase != PhasePlaying {
		t.Errorf("phase = %v, want playing", snap.Phase)
	}
}

func TestMovementAndTurning(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionForward)
	g.Step(input)

	snap := g.Snapshot()
	if snap.PlayerX <= engine.Levels[0].PlayerX {
		t.Errorf("forward at angle 0 did not advance x: %v", snap.PlayerX)
	}

	input.Clear()
	input.Set(core.ActionTurnRight)
	g.Step(input)
	if got := g.Snapshot().PlayerAngle; got != 3 {
		t.Errorf("angle = %v, want 3", got)
	}
}

func TestShootingSpendsAmmo(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionShoot)
	g.Step(input)

	if got := g.Snapshot().Ammo; got != 49 {
		t.Errorf("ammo = %d, want 49", got)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.State().Paused {
		t.Fatal("pause did not engage")
	}

	before := g.Snapshot()
	input.Clear()
	input.Set(core.ActionForward)
	input.Set(core.ActionShoot)
	for i := 0; i < 10; i++ {
		g.Step(input)
	}
	after := g.Snapshot()

	if before.PlayerX != after.PlayerX || before.Ammo != after.Ammo {
		t.Error("paused mission still simulated movement or shooting")
	}

	input.Clear()
	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("pause did not release")
	}
}

func TestVictoryWhenAllEnemiesDown(t *testing.T) {
	g := newTestGame(t)

	for i := range g.world.Enemies {
		g.world.Enemies[i].Alive = false
	}
	g.Step(core.NewInputFrame())

	if !g.won {
		t.Fatal("mission with no living enemies did not end")
	}
	state := g.State()
	if !state.GameOver {
		t.Error("State().GameOver = false after victory")
	}

	// Restart rebuilds the world.
	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)
	if g.Snapshot().Alive != len(engine.Levels[0].Spawns) {
		t.Error("restart did not respawn enemies")
	}
	if g.won {
		t.Error("restart left the mission in won state")
	}
}

func TestEnemyAnimationAdvances(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	for i := 0; i < animInterval; i++ {
		g.Step(input)
	}
	if got := g.Snapshot().AnimFrame; got != 1 {
		t.Errorf("anim frame = %d after %d ticks, want 1", got, animInterval)
	}

	for i := 0; i < 2*animInterval; i++ {
		g.Step(input)
	}
	if got := g.Snapshot().AnimFrame; got != 0 {
		t.Errorf("anim frame = %d after a full cycle, want 0", got)
	}
}

func TestRenderFrameLayout(t *testing.T) {
	g := newTestGame(t)
	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !strings.Contains(dst.Row(0), "Health: 100") {
		t.Errorf("status row = %q", dst.Row(0))
	}
	if !strings.Contains(dst.Row(23), "Space: Shoot") {
		t.Errorf("controls row = %q", dst.Row(23))
	}

	// Radar label sits above the top-right map window.
	found := false
	for y := 0; y < 4; y++ {
		if strings.Contains(dst.Row(y), "RADAR") {
			found = true
		}
	}
	if !found {
		t.Error("radar label missing on an 80x24 screen")
	}

	// The view itself should not be blank.
	blank := true
	for y := 1; y < 23 && blank; y++ {
		if strings.TrimSpace(dst.Row(y)) != "" {
			blank = false
		}
	}
	if blank {
		t.Error("view rows are empty")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(&engine.Levels[0])
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 6})

	dst := core.NewScreen(20, 6)
	g.Render(dst)

	if !strings.Contains(dst.String(), "too small") {
		t.Error("small screen did not show the resize hint")
	}
}

func TestSetTunables(t *testing.T) {
	tun := engine.DefaultTunables()
	tun.StartAmmo = 7
	SetTunables(&tun)
	defer SetTunables(nil)

	g := New(&engine.Levels[0])
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	if got := g.Snapshot().Ammo; got != 7 {
		t.Errorf("ammo = %d, want 7 from overridden tunables", got)
	}
}
