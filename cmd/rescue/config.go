package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rescue-run/internal/config"
	"github.com/vovakirdan/rescue-run/internal/games/rescue"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the search
order and any difficulty preset are applied. The output is valid YAML and
can be saved as a starting point for a custom config.

Search order:
  --config <path>
  ~/.rescue/configs/rescue.yaml
  ./configs/rescue.yaml
  built-in defaults

Examples:
  rescue config > ~/.rescue/configs/rescue.yaml
  rescue config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if _, err := config.ParseDifficultyPreset(flagDifficulty); err != nil {
		return err
	}

	rescue.SetConfigPath(flagConfig)
	rescue.SetDifficultyPreset(flagDifficulty)

	cfg, err := rescue.LoadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
