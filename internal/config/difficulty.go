package config

import "fmt"

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the CLI.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// ApplyPreset scales ammo and accuracy for a difficulty preset. The
// fixed preset leaves the loaded configuration untouched.
func ApplyPreset(cfg *RaiderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Combat.AccuracyScale = 1.2
		cfg.Player.StartAmmo = cfg.Player.StartAmmo * 3 / 2
	case DifficultyNormal:
		cfg.Combat.AccuracyScale = 1.0
	case DifficultyHard:
		cfg.Combat.AccuracyScale = 0.8
		cfg.Player.StartAmmo = cfg.Player.StartAmmo * 2 / 3
	}
}
