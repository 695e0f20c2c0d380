package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset converts a CLI value into a preset.
// An empty string selects normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyRescuePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyRescuePreset(cfg *RescueConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = string(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Player.StartingLives = 5
		cfg.Spawn.OfficerIntervalMS = 7000
		cfg.Officers.SpeedFactor = 0.5
	case DifficultyHard:
		cfg.Player.StartingLives = 2
		cfg.Spawn.OfficerIntervalMS = 3500
		cfg.Officers.SpeedFactor = 0.85
	}
}
