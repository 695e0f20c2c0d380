// Package config provides YAML-based game configuration loading and
// difficulty presets for Rescue Run.
package config

import "time"

// RescueConfig contains all tunables for the Rescue Run simulation.
// Durations are stored in milliseconds to keep the YAML readable.
type RescueConfig struct {
	Arena      ArenaConfig    `yaml:"arena"`
	Player     PlayerConfig   `yaml:"player"`
	Spawn      SpawnConfig    `yaml:"spawn"`
	Powerups   PowerupConfig  `yaml:"powerups"`
	Officers   OfficerConfig  `yaml:"officers"`
	Scoring    ScoringConfig  `yaml:"scoring"`
	Difficulty DifficultyInfo `yaml:"difficulty"`
}

// ArenaConfig defines the playfield and entity dimensions.
type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	EntitySize float64 `yaml:"entity_size"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	BaseSpeed        float64 `yaml:"base_speed"`
	StartingLives    int     `yaml:"starting_lives"`
	InvincibilityMS  int     `yaml:"invincibility_ms"`
	ReferenceFrameMS int     `yaml:"reference_frame_ms"` // Speed is expressed per reference frame
}

// SpawnConfig defines spawn intervals and placement rules.
type SpawnConfig struct {
	AnimalIntervalMS  int     `yaml:"animal_interval_ms"`
	OfficerIntervalMS int     `yaml:"officer_interval_ms"`
	PowerupIntervalMS int     `yaml:"powerup_interval_ms"`
	TruckIntervalMS   int     `yaml:"truck_interval_ms"`
	TruckVisibleMS    int     `yaml:"truck_visible_ms"`
	AnimalMinDistance float64 `yaml:"animal_min_distance"` // In entity sizes
}

// PowerupConfig defines powerup visibility and effect strength.
type PowerupConfig struct {
	VisibleMS       int     `yaml:"visible_ms"`
	EffectMS        int     `yaml:"effect_ms"`
	TeacupFactor    float64 `yaml:"teacup_factor"`
	LightningFactor float64 `yaml:"lightning_factor"`
}

// OfficerConfig defines officer pursuit parameters.
type OfficerConfig struct {
	SpeedFactor float64 `yaml:"speed_factor"` // Fraction of player base speed
	MinLevel    int     `yaml:"min_level"`    // Officers spawn from this level on
	Max         int     `yaml:"max"`          // 0 = unlimited
}

// ScoringConfig defines delivery rewards and level thresholds.
type ScoringConfig struct {
	PointsPerAnimal int `yaml:"points_per_animal"`
	LevelStep       int `yaml:"level_step"` // Level up when score >= level*LevelStep
}

// DifficultyInfo records which preset produced this config.
type DifficultyInfo struct {
	Preset string `yaml:"preset"`
}

// Invincibility returns the post-hit protection window.
func (c RescueConfig) Invincibility() time.Duration {
	return ms(c.Player.InvincibilityMS)
}

// ReferenceFrame returns the frame length that BaseSpeed is expressed against.
func (c RescueConfig) ReferenceFrame() time.Duration {
	return ms(c.Player.ReferenceFrameMS)
}

// AnimalInterval returns the animal spawn cadence.
func (c RescueConfig) AnimalInterval() time.Duration { return ms(c.Spawn.AnimalIntervalMS) }

// OfficerInterval returns the officer spawn cadence.
func (c RescueConfig) OfficerInterval() time.Duration { return ms(c.Spawn.OfficerIntervalMS) }

// PowerupInterval returns the powerup spawn cadence.
func (c RescueConfig) PowerupInterval() time.Duration { return ms(c.Spawn.PowerupIntervalMS) }

// TruckInterval returns the rescue truck spawn cadence.
func (c RescueConfig) TruckInterval() time.Duration { return ms(c.Spawn.TruckIntervalMS) }

// TruckVisible returns how long a rescue truck stays on the field.
func (c RescueConfig) TruckVisible() time.Duration { return ms(c.Spawn.TruckVisibleMS) }

// PowerupVisible returns how long an uncollected powerup stays on the field.
func (c RescueConfig) PowerupVisible() time.Duration { return ms(c.Powerups.VisibleMS) }

// PowerupEffect returns how long a collected powerup modifies speed.
func (c RescueConfig) PowerupEffect() time.Duration { return ms(c.Powerups.EffectMS) }

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}
