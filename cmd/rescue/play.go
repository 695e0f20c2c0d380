package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rescue-run/internal/config"
	"github.com/vovakirdan/rescue-run/internal/core"
	"github.com/vovakirdan/rescue-run/internal/games/rescue"
	"github.com/vovakirdan/rescue-run/internal/platform/tui"
	"github.com/vovakirdan/rescue-run/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Rescue Run",
	Long: `Start a game of Rescue Run.

Controls:
  Arrows/WASD  - Steer
  Space/P      - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot to ~/.rescue/screenshots

Difficulty options:
  easy   - 5 lives, officers slower and rarer
  normal - Values from the config file
  hard   - 2 lives, officers faster and more frequent

Examples:
  rescue play
  rescue play --difficulty easy
  rescue play --config ./my-rescue.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd, configCmd} {
		cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	}
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	return playGame(cfg, flagDifficulty)
}

// playGame configures the rescue game and runs it until the player quits.
func playGame(cfg core.RuntimeConfig, difficulty string) error {
	rescue.SetConfigPath(flagConfig)
	rescue.SetDifficultyPreset(difficulty)

	// Surface config errors before the screen switches to the alt buffer
	if _, err := rescue.LoadConfig(); err != nil {
		return err
	}

	game, err := registry.Create("rescue")
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	logger, closer, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	return tui.Run(game, cfg, logger)
}
