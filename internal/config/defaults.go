package config

import (
	_ "embed"
)

//go:embed defaults/raider.yaml
var defaultRaiderYAML []byte

// DefaultRaiderConfig returns the shipped configuration, mirroring
// defaults/raider.yaml.
func DefaultRaiderConfig() RaiderConfig {
	return RaiderConfig{
		View: ViewConfig{
			FOV:             70,
			Depth:           16,
			StepSize:        0.02,
			EdgeTolerance:   0.02,
			SpriteTolerance: 3,
			FloorGridSize:   4,
		},
		Player: PlayerConfig{
			MoveStep:    0.3,
			TurnStep:    3,
			StartHealth: 100,
			StartAmmo:   50,
		},
		Combat: CombatConfig{
			RangeFalloff: 0.8,
			HitFactors: HitFactors{
				Normal: 1.0,
				Fast:   0.7,
				Strong: 0.5,
			},
			AccuracyScale: 1.0,
		},
	}
}
