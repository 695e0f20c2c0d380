// Package rescue implements Rescue Run: steer through the arena collecting
// animals, avoid pursuing officers and deliver the trail to the rescue truck.
package rescue

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/rescue-run/internal/config"
	"github.com/vovakirdan/rescue-run/internal/core"
	"github.com/vovakirdan/rescue-run/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
// Unknown names leave the loaded config untouched.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// LoadConfig resolves the config the game will run with, applying the CLI preset.
func LoadConfig() (config.RescueConfig, error) {
	cfg, err := config.LoadRescue(configPath)
	if err != nil {
		return config.DefaultRescueConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyRescuePreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// Game adapts a Session to the registry's Game interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.RescueConfig

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new Rescue Run game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("rescue", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rescue"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rescue Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultRescueConfig()
	}
	g.cfg = cfg

	g.minScreenW = 30
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.session = NewSession(cfg, rand.New(rand.NewSource(runtime.Seed)))
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies input and advances the simulation to the host timestamp now.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	if g.screenTooSmall {
		g.session.Idle(now)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.GameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.session.TogglePause()
	}

	switch {
	case in.Has(core.ActionUp):
		g.session.SetDirection(DirUp)
	case in.Has(core.ActionDown):
		g.session.SetDirection(DirDown)
	case in.Has(core.ActionLeft):
		g.session.SetDirection(DirLeft)
	case in.Has(core.ActionRight):
		g.session.SetDirection(DirRight)
	}

	events := g.session.Frame(now)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	p := g.session.player
	return core.GameState{
		Score:    p.Score,
		Level:    p.Level,
		Lives:    p.Lives,
		GameOver: g.session.gameOver,
		Paused:   g.session.paused,
	}
}

// Resize adapts the game to a new screen size without restarting the run.
// The arena is measured in its own units, so only the viewport changes.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH
}
