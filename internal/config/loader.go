package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "rescue.yaml"

// LoadRescue loads the Rescue Run configuration.
// Search order: customPath -> ~/.rescue/configs/rescue.yaml -> ./configs/rescue.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadRescue(customPath string) (RescueConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RescueConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RescueConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken optional files fall through to the next candidate
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultRescueYAML); err == nil {
		return cfg, nil
	}
	return DefaultRescueConfig(), nil
}

// parse decodes YAML on top of the built-in defaults and validates the result.
func parse(data []byte) (RescueConfig, error) {
	cfg := DefaultRescueConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RescueConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RescueConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the config as YAML.
func Marshal(cfg RescueConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rescue", "configs", filename)
}

// Validate checks that every value the simulation divides by or loops on is usable.
func (c RescueConfig) Validate() error {
	var errs []error

	if c.Arena.EntitySize <= 0 {
		errs = append(errs, fmt.Errorf("arena.entity_size must be positive, got %v", c.Arena.EntitySize))
	}
	// The truck is two entities wide and must fit
	if c.Arena.Width < 2*c.Arena.EntitySize {
		errs = append(errs, fmt.Errorf("arena.width %v is narrower than a rescue truck", c.Arena.Width))
	}
	if c.Arena.Height < c.Arena.EntitySize {
		errs = append(errs, fmt.Errorf("arena.height %v is shorter than an entity", c.Arena.Height))
	}
	if c.Player.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.base_speed must be positive, got %v", c.Player.BaseSpeed))
	}
	if c.Player.StartingLives < 1 {
		errs = append(errs, fmt.Errorf("player.starting_lives must be at least 1, got %d", c.Player.StartingLives))
	}
	if c.Player.ReferenceFrameMS <= 0 {
		errs = append(errs, fmt.Errorf("player.reference_frame_ms must be positive, got %d", c.Player.ReferenceFrameMS))
	}

	intervals := []struct {
		name string
		val  int
	}{
		{"spawn.animal_interval_ms", c.Spawn.AnimalIntervalMS},
		{"spawn.officer_interval_ms", c.Spawn.OfficerIntervalMS},
		{"spawn.powerup_interval_ms", c.Spawn.PowerupIntervalMS},
		{"spawn.truck_interval_ms", c.Spawn.TruckIntervalMS},
		{"spawn.truck_visible_ms", c.Spawn.TruckVisibleMS},
		{"powerups.visible_ms", c.Powerups.VisibleMS},
		{"powerups.effect_ms", c.Powerups.EffectMS},
	}
	for _, iv := range intervals {
		if iv.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", iv.name, iv.val))
		}
	}

	if c.Player.InvincibilityMS < 0 {
		errs = append(errs, fmt.Errorf("player.invincibility_ms must not be negative, got %d", c.Player.InvincibilityMS))
	}
	if c.Officers.Max < 0 {
		errs = append(errs, fmt.Errorf("officers.max must not be negative, got %d", c.Officers.Max))
	}
	if c.Scoring.PointsPerAnimal < 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_animal must not be negative, got %d", c.Scoring.PointsPerAnimal))
	}
	if c.Powerups.TeacupFactor <= 0 {
		errs = append(errs, fmt.Errorf("powerups.teacup_factor must be positive, got %v", c.Powerups.TeacupFactor))
	}
	if c.Powerups.LightningFactor <= 0 {
		errs = append(errs, fmt.Errorf("powerups.lightning_factor must be positive, got %v", c.Powerups.LightningFactor))
	}
	if c.Officers.SpeedFactor < 0 {
		errs = append(errs, fmt.Errorf("officers.speed_factor must not be negative, got %v", c.Officers.SpeedFactor))
	}
	if c.Scoring.LevelStep <= 0 {
		errs = append(errs, fmt.Errorf("scoring.level_step must be positive, got %d", c.Scoring.LevelStep))
	}

	return errors.Join(errs...)
}
