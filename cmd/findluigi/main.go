// findluigi is a timed "find the target among decoys" arcade game for the
// terminal and the desktop.
//
// Usage:
//
//	findluigi play [mode]    - Play a mode in the terminal (or --gui for a window)
//	findluigi menu           - Pick a mode interactively
//	findluigi list           - List available modes
//	findluigi levels         - Show the difficulty table
//	findluigi config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible gameplay
//	--log <path>           - Write debug logs to a file
//	--config <path>        - Custom config YAML
//	--difficulty <preset>  - classic, reset or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagLogPath    string
	flagConfig     string
	flagDifficulty string

	logFile   *os.File
	appLogger *log.Logger
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "findluigi",
	Short: "Find Luigi - spot the target among bouncing decoys",
	Long: `Find Luigi is a timed arcade game. Dozens of characters bounce around
the arena; click Luigi to score and earn time, avoid clicking anyone else.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  list     - Show all modes
  levels   - Show the difficulty table
  config   - Print the effective configuration

Examples:
  findluigi play
  findluigi play findluigi_timed --difficulty fixed
  findluigi play --gui --seed 42
  findluigi levels --difficulty reset`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: classic, reset, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}

	logger, err := newLogger(flagLogPath)
	if err != nil {
		return err
	}
	appLogger = logger
	findluigi.SetLogger(logger)
	findluigi.SetConfigPath(flagConfig)
	findluigi.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger builds the game logger. The terminal UI owns stdout, so logs go to
// a file when one is given and are discarded otherwise.
func newLogger(path string) (*log.Logger, error) {
	var w io.Writer = io.Discard
	level := log.InfoLevel
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logFile = f
		w = f
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "findluigi",
		Level:           level,
	}), nil
}
