// rescue is a terminal arcade game: collect animals, dodge officers and
// deliver your trail to the rescue truck.
//
// Usage:
//
//	rescue play              - Play Rescue Run
//	rescue menu              - Pick a difficulty, then play
//	rescue list              - List registered games
//	rescue config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write game events to a log file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rescue-run/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/rescue-run/internal/games/rescue"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rescue",
	Short: "Rescue Run - save puppies and kittens in your terminal",
	Long: `Rescue Run is a terminal arcade game. Steer through the arena,
pick up puppies and kittens, avoid the officers that appear from level 2
and bring your trail to the rescue truck for points.

Available commands:
  play     - Play the game directly
  menu     - Choose a difficulty, then play
  list     - Show registered games
  config   - Print the effective configuration

Examples:
  rescue play
  rescue play --difficulty hard
  rescue menu --fps 30
  rescue play --seed 42 --log-file rescue.log
  rescue config --config ./my-rescue.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime config from the global flags and the terminal size.
func runtimeConfig() (core.RuntimeConfig, error) {
	if flagFPS <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg, nil
}

// openLogger opens the event log. Without --log-file events are discarded.
func openLogger(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return nil, io.NopCloser(nil), nil
	}

	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "rescue",
	})
	return logger, f, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
