package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/find-luigi/internal/core"
	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
	"github.com/vovakirdan/find-luigi/internal/platform/gui"
	"github.com/vovakirdan/find-luigi/internal/platform/tui"
	"github.com/vovakirdan/find-luigi/internal/registry"
)

var flagGUI bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: findluigi).

Modes:
  findluigi        - Losing every life or running out of time ends the game
  findluigi_timed  - Decoys never take your last life; only the clock ends the game

Controls:
  Mouse click  - Pick a character
  P            - Pause
  R            - Restart (after game over)
  Q/Esc        - Quit

Difficulty presets:
  classic - Speed, direction and population grow with the score
  reset   - HARD and IMPOSSIBLE spawn still characters
  fixed   - No progression, stays EASY

Examples:
  findluigi play
  findluigi play findluigi_timed
  findluigi play --gui
  findluigi play --difficulty fixed --config ./my-luigi.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a desktop window instead of the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	modeID := "findluigi"
	if len(args) == 1 {
		modeID = args[0]
	}
	return playMode(modeID, runtimeConfig())
}

// playMode validates the config for a mode and runs it on the chosen driver.
func playMode(modeID string, cfg core.RuntimeConfig) error {
	game, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("%w (run 'findluigi list' to see available modes)", err)
	}

	fl, ok := game.(*findluigi.Game)
	if !ok {
		return fmt.Errorf("mode %q is not a Find Luigi mode", modeID)
	}
	if _, err := findluigi.LoadConfig(fl.Mode()); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if flagGUI {
		// Without a log file the window logs to stderr, which it leaves free
		logger := appLogger
		if flagLogPath == "" {
			logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "findluigi"})
			findluigi.SetLogger(logger)
		}
		if err := gui.Run(fl, cfg, logger); err != nil {
			return fmt.Errorf("failed to run window: %w", err)
		}
		return nil
	}

	if err := tui.Run(game, cfg); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from the flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
