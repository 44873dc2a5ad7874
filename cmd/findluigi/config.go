package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/find-luigi/internal/config"
	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the effective configuration",
	Long: `Prints the configuration a mode would play with, as YAML. The output
is a valid config file; save it to ~/.findluigi/config.yaml to customise.

Examples:
  findluigi config
  findluigi config findluigi_timed --difficulty reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	mode := findluigi.ModeClassic
	if len(args) == 1 {
		switch args[0] {
		case "findluigi":
		case "findluigi_timed":
			mode = findluigi.ModeTimed
		default:
			return fmt.Errorf("unknown mode %q (run 'findluigi list' to see available modes)", args[0])
		}
	}

	cfg, err := findluigi.LoadConfig(mode)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
