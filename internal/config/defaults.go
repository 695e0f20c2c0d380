package config

import (
	_ "embed"
)

//go:embed defaults/rescue.yaml
var defaultRescueYAML []byte

// DefaultRescueConfig returns the built-in Rescue Run configuration.
// It mirrors defaults/rescue.yaml and is used when the embedded file cannot be parsed.
func DefaultRescueConfig() RescueConfig {
	return RescueConfig{
		Arena: ArenaConfig{
			Width:      800,
			Height:     600,
			EntitySize: 40,
		},
		Player: PlayerConfig{
			BaseSpeed:        3,
			StartingLives:    3,
			InvincibilityMS:  2000,
			ReferenceFrameMS: 16,
		},
		Spawn: SpawnConfig{
			AnimalIntervalMS:  3000,
			OfficerIntervalMS: 5000,
			PowerupIntervalMS: 8000,
			TruckIntervalMS:   20000,
			TruckVisibleMS:    10000,
			AnimalMinDistance: 3,
		},
		Powerups: PowerupConfig{
			VisibleMS:       5000,
			EffectMS:        10000,
			TeacupFactor:    0.5,
			LightningFactor: 2.0,
		},
		Officers: OfficerConfig{
			SpeedFactor: 0.7,
			MinLevel:    2,
			Max:         0,
		},
		Scoring: ScoringConfig{
			PointsPerAnimal: 10,
			LevelStep:       100,
		},
		Difficulty: DifficultyInfo{
			Preset: string(DifficultyNormal),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRescueYAML
}
