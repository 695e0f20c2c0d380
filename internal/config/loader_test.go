package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultRescueConfig() {
		t.Errorf("embedded YAML and DefaultRescueConfig() disagree:\n%+v\n%+v", cfg, DefaultRescueConfig())
	}
}

func TestLoadRescueFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRescue("")
	if err != nil {
		t.Fatalf("LoadRescue(\"\") failed: %v", err)
	}
	if cfg.Arena.Width != 800 || cfg.Arena.Height != 600 {
		t.Errorf("Arena = %vx%v, expected 800x600", cfg.Arena.Width, cfg.Arena.Height)
	}
	if cfg.Player.StartingLives != 3 {
		t.Errorf("StartingLives = %d, expected 3", cfg.Player.StartingLives)
	}
}

func TestLoadRescueUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".rescue", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rescue.yaml"), []byte("player:\n  starting_lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRescue("")
	if err != nil {
		t.Fatalf("LoadRescue failed: %v", err)
	}
	if cfg.Player.StartingLives != 9 {
		t.Errorf("StartingLives = %d, expected 9 from user config", cfg.Player.StartingLives)
	}
}

func TestLoadRescueCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "arena:\n  width: 1000\nspawn:\n  animal_interval_ms: 1500\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRescue(path)
	if err != nil {
		t.Fatalf("LoadRescue(%q) failed: %v", path, err)
	}
	if cfg.Arena.Width != 1000 {
		t.Errorf("Arena.Width = %v, expected 1000", cfg.Arena.Width)
	}
	// Untouched keys keep defaults
	if cfg.Arena.Height != 600 {
		t.Errorf("Arena.Height = %v, expected default 600", cfg.Arena.Height)
	}
	if cfg.AnimalInterval() != 1500*time.Millisecond {
		t.Errorf("AnimalInterval() = %v, expected 1.5s", cfg.AnimalInterval())
	}
}

func TestLoadRescueCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRescue(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("arena: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRescue(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  base_speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadRescue(invalid)
	if err == nil {
		t.Fatal("expected validation error for zero base speed")
	}
	if !strings.Contains(err.Error(), "base_speed") {
		t.Errorf("error should name the bad key, got %v", err)
	}

	factors := filepath.Join(dir, "factors.yaml")
	yml := "scoring:\n  points_per_animal: -5\npowerups:\n  teacup_factor: 0\n  lightning_factor: -1\n"
	if err := os.WriteFile(factors, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err = LoadRescue(factors)
	if err == nil {
		t.Fatal("expected validation error for negative score and speed factors")
	}
	for _, key := range []string{"points_per_animal", "teacup_factor", "lightning_factor"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should name %s, got %v", key, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RescueConfig)
		wantErr string
	}{
		{"defaults are valid", func(*RescueConfig) {}, ""},
		{"zero entity size", func(c *RescueConfig) { c.Arena.EntitySize = 0 }, "entity_size"},
		{"arena too narrow for truck", func(c *RescueConfig) { c.Arena.Width = 60 }, "rescue truck"},
		{"no lives", func(c *RescueConfig) { c.Player.StartingLives = 0 }, "starting_lives"},
		{"zero interval", func(c *RescueConfig) { c.Spawn.TruckIntervalMS = 0 }, "truck_interval_ms"},
		{"negative officer cap", func(c *RescueConfig) { c.Officers.Max = -1 }, "officers.max"},
		{"zero level step", func(c *RescueConfig) { c.Scoring.LevelStep = 0 }, "level_step"},
		{"negative points", func(c *RescueConfig) { c.Scoring.PointsPerAnimal = -10 }, "points_per_animal"},
		{"zero points allowed", func(c *RescueConfig) { c.Scoring.PointsPerAnimal = 0 }, ""},
		{"zero teacup factor", func(c *RescueConfig) { c.Powerups.TeacupFactor = 0 }, "teacup_factor"},
		{"negative lightning factor", func(c *RescueConfig) { c.Powerups.LightningFactor = -2 }, "lightning_factor"},
		{"negative officer speed", func(c *RescueConfig) { c.Officers.SpeedFactor = -0.5 }, "speed_factor"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRescueConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestMarshalRoundTripKeys(t *testing.T) {
	data, err := Marshal(DefaultRescueConfig())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, key := range []string{"entity_size:", "officer_interval_ms:", "lightning_factor:", "level_step:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshalled YAML missing %q", key)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in        string
		want      DifficultyPreset
		wantLives int
		wantErr   bool
	}{
		{"", DifficultyNormal, 3, false},
		{"normal", DifficultyNormal, 3, false},
		{"easy", DifficultyEasy, 5, false},
		{"hard", DifficultyHard, 2, false},
		{"nightmare", "", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			preset, err := ParseDifficultyPreset(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseDifficultyPreset(%q) should fail", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDifficultyPreset(%q) failed: %v", tc.in, err)
			}
			if preset != tc.want {
				t.Errorf("preset = %q, expected %q", preset, tc.want)
			}

			cfg := DefaultRescueConfig()
			ApplyRescuePreset(&cfg, preset)
			if cfg.Player.StartingLives != tc.wantLives {
				t.Errorf("StartingLives = %d, expected %d", cfg.Player.StartingLives, tc.wantLives)
			}
			if cfg.Difficulty.Preset != string(tc.want) {
				t.Errorf("Difficulty.Preset = %q, expected %q", cfg.Difficulty.Preset, tc.want)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}
