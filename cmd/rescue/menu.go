package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rescue-run/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose a difficulty, then play",
	Long: `Start with a difficulty picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start
  Q/Esc        - Quit

Examples:
  rescue menu
  rescue menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}

	result, err := tui.RunMenu(cfg)
	if err != nil {
		return err
	}
	if result.Quit {
		return nil
	}

	return playGame(result.Config, string(result.Preset))
}
