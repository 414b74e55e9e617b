package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty resolves a preset name from the command line.
// An empty name resolves to DifficultyNormal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// SpeedFactorForPreset returns the enemy speed multiplier for a preset.
func SpeedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyMuncherPreset scales the enemy speed range by the preset.
func ApplyMuncherPreset(cfg *MuncherConfig, preset DifficultyPreset) {
	f := SpeedFactorForPreset(preset)
	cfg.Enemy.SpeedMin *= f
	cfg.Enemy.SpeedMax *= f
}
