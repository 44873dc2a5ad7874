package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
	"github.com/vovakirdan/find-luigi/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty table",
	Long: `Shows each difficulty level, the score that unlocks it and its
multipliers, after --config and --difficulty are applied.

Examples:
  findluigi levels
  findluigi levels --difficulty reset`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	cfg, err := findluigi.LoadConfig(findluigi.ModeClassic)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	table, err := findluigi.NewTable(cfg.Difficulty)
	if err != nil {
		return err
	}

	fmt.Println(tui.LevelsTable(tui.LevelRows(table)))
	if !table.Progression() {
		fmt.Println("Progression is off: every session stays on EASY.")
	}
	return nil
}
