package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/find-luigi/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Quitting a game returns to the menu.

Examples:
  findluigi menu
  findluigi menu --fps 30 --difficulty fixed`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("failed to run menu: %w", err)
		}

		// Update config with any size changes
		cfg = result.Config
		if result.Quit {
			return nil
		}

		if err := playMode(result.GameID, cfg); err != nil {
			return err
		}
	}
}
