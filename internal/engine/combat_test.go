package engine

import (
	"math/rand"
	"testing"
)

func combatWorld(t *testing.T, enemies []Enemy) *World {
	t.Helper()
	rows := make([]string, 20)
	rows[0] = "####################"
	rows[19] = rows[0]
	for i := 1; i < 19; i++ {
		rows[i] = "#..................#"
	}
	g, err := ParseGrid(rows)
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}
	return &World{
		Grid:    g,
		Player:  Player{X: 2, Y: 2, Angle: 0, Health: 100, Ammo: 50},
		Enemies: enemies,
	}
}

func TestResolveShotDryFire(t *testing.T) {
	w := combatWorld(t, []Enemy{{X: 4, Y: 2, Alive: true}})
	w.Player.Ammo = 0
	tun := DefaultTunables()
	rng := rand.New(rand.NewSource(1))

	res := ResolveShot(w, tun, rng)
	if res.Fired {
		t.Error("dry fire reported Fired")
	}
	if w.Player.Ammo != 0 {
		t.Errorf("ammo = %d, want 0", w.Player.Ammo)
	}
	if !w.Enemies[0].Alive {
		t.Error("dry fire killed an enemy")
	}
}

func TestResolveShotSpendsAmmoOnMiss(t *testing.T) {
	// No enemies in range at all: the round is still spent.
	w := combatWorld(t, nil)
	w.Player.Ammo = 3
	tun := DefaultTunables()
	rng := rand.New(rand.NewSource(1))

	res := ResolveShot(w, tun, rng)
	if !res.Fired {
		t.Error("shot with ammo should report Fired")
	}
	if res.Target != -1 || res.Points != 0 {
		t.Errorf("miss reported target %d points %d", res.Target, res.Points)
	}
	if w.Player.Ammo != 2 {
		t.Errorf("ammo = %d, want 2", w.Player.Ammo)
	}
}

func TestResolveShotAmmoNeverNegative(t *testing.T) {
	w := combatWorld(t, nil)
	w.Player.Ammo = 2
	tun := DefaultTunables()
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10; i++ {
		ResolveShot(w, tun, rng)
		if w.Player.Ammo < 0 {
			t.Fatalf("ammo went negative: %d", w.Player.Ammo)
		}
	}
	if w.Player.Ammo != 0 {
		t.Errorf("ammo = %d, want 0", w.Player.Ammo)
	}
}

func TestResolveShotKillScoring(t *testing.T) {
	cases := []struct {
		class EnemyClass
		want  int
	}{
		{ClassNormal, 100},
		{ClassFast, 200},
		{ClassStrong, 300},
	}
	for _, c := range cases {
		t.Run(c.class.String(), func(t *testing.T) {
			w := combatWorld(t, []Enemy{{X: 3, Y: 2, Alive: true, Class: c.class}})
			tun := DefaultTunables()
			// Guarantee the roll lands regardless of rng draw.
			tun.AccuracyScale = 100

			res := ResolveShot(w, tun, rand.New(rand.NewSource(7)))
			if res.Target != 0 {
				t.Fatalf("Target = %d, want 0", res.Target)
			}
			if res.Points != c.want {
				t.Errorf("Points = %d, want %d", res.Points, c.want)
			}
			if w.Player.Score != c.want {
				t.Errorf("Score = %d, want %d", w.Player.Score, c.want)
			}
			if w.Enemies[0].Alive {
				t.Error("target still alive")
			}
		})
	}
}

func TestResolveShotAtMostOneKill(t *testing.T) {
	w := combatWorld(t, []Enemy{
		{X: 3, Y: 2, Alive: true},
		{X: 4, Y: 2, Alive: true},
		{X: 5, Y: 2, Alive: true},
	})
	tun := DefaultTunables()
	tun.AccuracyScale = 100

	res := ResolveShot(w, tun, rand.New(rand.NewSource(7)))
	if res.Target != 0 {
		t.Errorf("Target = %d, want first enemy in slice order", res.Target)
	}
	if w.AliveCount() != 2 {
		t.Errorf("AliveCount = %d, want 2", w.AliveCount())
	}
}

func TestResolveShotIgnoresOutOfCone(t *testing.T) {
	// Directly behind the player: never a candidate even with perfect
	// accuracy.
	w := combatWorld(t, []Enemy{{X: 2, Y: 5, Alive: true}})
	tun := DefaultTunables()
	tun.AccuracyScale = 100

	for i := 0; i < 20; i++ {
		ResolveShot(w, tun, rand.New(rand.NewSource(int64(i))))
	}
	if !w.Enemies[0].Alive {
		t.Error("killed an enemy outside the view cone")
	}
}

func TestResolveShotDeathIsMonotonic(t *testing.T) {
	w := combatWorld(t, []Enemy{{X: 3, Y: 2, Alive: true}})
	tun := DefaultTunables()
	tun.AccuracyScale = 100
	rng := rand.New(rand.NewSource(3))

	ResolveShot(w, tun, rng)
	if w.Enemies[0].Alive {
		t.Fatal("first shot should have killed")
	}
	score := w.Player.Score

	// Dead enemies are skipped: no double kill, no extra score.
	res := ResolveShot(w, tun, rng)
	if res.Target != -1 {
		t.Errorf("second shot hit target %d", res.Target)
	}
	if w.Player.Score != score {
		t.Errorf("score changed from %d to %d", score, w.Player.Score)
	}
}

func TestResolveShotHitRateMatchesFormula(t *testing.T) {
	// Normal class at distance 2 with default tunables:
	// (1 - 2/16*0.8) * 1.0 * 1.0 = 0.9
	tun := DefaultTunables()
	rng := rand.New(rand.NewSource(42))

	const trials = 10000
	kills := 0
	for i := 0; i < trials; i++ {
		w := combatWorld(t, []Enemy{{X: 4, Y: 2, Alive: true, Class: ClassNormal}})
		if res := ResolveShot(w, tun, rng); res.Target == 0 {
			kills++
		}
	}

	rate := float64(kills) / trials
	if rate < 0.88 || rate > 0.92 {
		t.Errorf("hit rate = %v, want ~0.9", rate)
	}
}
