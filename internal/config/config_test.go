package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := LoadRaider("")
	if err != nil {
		t.Fatalf("LoadRaider failed: %v", err)
	}
	// The local search paths may pick up a user override, so only pin
	// the invariants, not exact values.
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}

	def := DefaultRaiderConfig()
	if err := def.Validate(); err != nil {
		t.Errorf("hardcoded default invalid: %v", err)
	}
	if def.View.FOV != 70 || def.Player.StartAmmo != 50 {
		t.Errorf("unexpected defaults: fov=%v ammo=%d", def.View.FOV, def.Player.StartAmmo)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "raider.yaml")
	body := `
view:
  fov: 90
  depth: 20
  step_size: 0.05
  edge_tolerance: 0.02
  sprite_tolerance: 4
  floor_grid_size: 4
player:
  move_step: 0.5
  turn_step: 5
  start_health: 100
  start_ammo: 12
combat:
  range_falloff: 0.5
  hit_factors:
    normal: 1.0
    fast: 0.8
    strong: 0.6
  accuracy_scale: 1.0
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRaider(path)
	if err != nil {
		t.Fatalf("LoadRaider failed: %v", err)
	}
	if cfg.View.FOV != 90 || cfg.Player.StartAmmo != 12 {
		t.Errorf("custom values not applied: fov=%v ammo=%d", cfg.View.FOV, cfg.Player.StartAmmo)
	}

	if _, err := LoadRaider(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("view:\n  fov: 300\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRaider(path); err == nil {
		t.Error("invalid fov should be rejected")
	}
}

func TestTunablesMapping(t *testing.T) {
	cfg := DefaultRaiderConfig()
	tun := cfg.Tunables()

	if tun.FOV != cfg.View.FOV || tun.Depth != cfg.View.Depth {
		t.Error("view fields not mapped")
	}
	if tun.ClassFactors != [3]float64{1.0, 0.7, 0.5} {
		t.Errorf("class factors = %v", tun.ClassFactors)
	}
	if tun.StartAmmo != 50 || tun.MoveStep != 0.3 {
		t.Error("player fields not mapped")
	}
}

func TestApplyPreset(t *testing.T) {
	cases := []struct {
		preset   DifficultyPreset
		accuracy float64
		ammo     int
	}{
		{DifficultyEasy, 1.2, 75},
		{DifficultyNormal, 1.0, 50},
		{DifficultyHard, 0.8, 33},
		{DifficultyFixed, 1.0, 50},
	}
	for _, c := range cases {
		t.Run(string(c.preset), func(t *testing.T) {
			cfg := DefaultRaiderConfig()
			ApplyPreset(&cfg, c.preset)
			if cfg.Combat.AccuracyScale != c.accuracy {
				t.Errorf("accuracy = %v, want %v", cfg.Combat.AccuracyScale, c.accuracy)
			}
			if cfg.Player.StartAmmo != c.ammo {
				t.Errorf("ammo = %d, want %d", cfg.Player.StartAmmo, c.ammo)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if _, err := ParsePreset("hard"); err != nil {
		t.Errorf("hard rejected: %v", err)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset accepted")
	}
}
