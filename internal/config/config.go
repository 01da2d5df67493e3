// Package config provides YAML-based configuration loading and
// difficulty presets for the raider missions.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-raider/internal/engine"
)

// RaiderConfig contains every tunable of the raycasting engine.
type RaiderConfig struct {
	View   ViewConfig   `yaml:"view"`
	Player PlayerConfig `yaml:"player"`
	Combat CombatConfig `yaml:"combat"`
}

// ViewConfig defines the raycaster parameters.
type ViewConfig struct {
	FOV             float64 `yaml:"fov"`              // field of view in degrees
	Depth           float64 `yaml:"depth"`            // maximum ray range in cells
	StepSize        float64 `yaml:"step_size"`        // ray march increment
	EdgeTolerance   float64 `yaml:"edge_tolerance"`   // cell fraction treated as a wall seam
	SpriteTolerance float64 `yaml:"sprite_tolerance"` // sprite visibility slack in degrees
	FloorGridSize   int     `yaml:"floor_grid_size"`  // period of the floor grid lines
}

// PlayerConfig defines movement and starting resources.
type PlayerConfig struct {
	MoveStep    float64 `yaml:"move_step"` // cells per move
	TurnStep    float64 `yaml:"turn_step"` // degrees per turn
	StartHealth int     `yaml:"start_health"`
	StartAmmo   int     `yaml:"start_ammo"`
}

// CombatConfig defines the hit-scan parameters.
type CombatConfig struct {
	RangeFalloff  float64    `yaml:"range_falloff"`  // hit chance lost at max range
	HitFactors    HitFactors `yaml:"hit_factors"`    // per-class hit multipliers
	AccuracyScale float64    `yaml:"accuracy_scale"` // global multiplier, set by difficulty
}

// HitFactors holds the per-class hit chance multipliers.
type HitFactors struct {
	Normal float64 `yaml:"normal"`
	Fast   float64 `yaml:"fast"`
	Strong float64 `yaml:"strong"`
}

// Validate rejects configurations the engine cannot run with.
func (c RaiderConfig) Validate() error {
	if c.View.FOV <= 0 || c.View.FOV >= 180 {
		return fmt.Errorf("config: fov %v out of (0, 180)", c.View.FOV)
	}
	if c.View.Depth <= 0 {
		return fmt.Errorf("config: depth %v must be positive", c.View.Depth)
	}
	if c.View.StepSize <= 0 || c.View.StepSize >= 1 {
		return fmt.Errorf("config: step_size %v out of (0, 1)", c.View.StepSize)
	}
	if c.Player.MoveStep <= 0 || c.Player.TurnStep <= 0 {
		return fmt.Errorf("config: move_step and turn_step must be positive")
	}
	if c.Player.StartAmmo < 0 || c.Player.StartHealth <= 0 {
		return fmt.Errorf("config: start_ammo must be >= 0 and start_health > 0")
	}
	if c.Combat.AccuracyScale <= 0 {
		return fmt.Errorf("config: accuracy_scale %v must be positive", c.Combat.AccuracyScale)
	}
	return nil
}

// Tunables converts the configuration into engine tunables.
func (c RaiderConfig) Tunables() engine.Tunables {
	return engine.Tunables{
		FOV:             c.View.FOV,
		Depth:           c.View.Depth,
		StepSize:        c.View.StepSize,
		EdgeTolerance:   c.View.EdgeTolerance,
		SpriteTolerance: c.View.SpriteTolerance,
		FloorGridSize:   c.View.FloorGridSize,
		MoveStep:        c.Player.MoveStep,
		TurnStep:        c.Player.TurnStep,
		StartHealth:     c.Player.StartHealth,
		StartAmmo:       c.Player.StartAmmo,
		RangeFalloff:    c.Combat.RangeFalloff,
		ClassFactors: [3]float64{
			c.Combat.HitFactors.Normal,
			c.Combat.HitFactors.Fast,
			c.Combat.HitFactors.Strong,
		},
		AccuracyScale: c.Combat.AccuracyScale,
	}
}
