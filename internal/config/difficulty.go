package config

import "fmt"

// DifficultyPreset is a named tweak applied on top of the loaded config.
type DifficultyPreset string

const (
	// PresetClassic keeps the configured table. With the defaults, HARD and
	// IMPOSSIBLE inherit direction 1 from the levels before them.
	PresetClassic DifficultyPreset = "classic"
	// PresetReset drops the direction multiplier to 0 on HARD and IMPOSSIBLE,
	// so those levels spawn sprites that stand still until they are nudged.
	PresetReset DifficultyPreset = "reset"
	// PresetFixed disables progression; the session stays on EASY.
	PresetFixed DifficultyPreset = "fixed"
)

// Presets lists the accepted --difficulty values.
var Presets = []DifficultyPreset{PresetClassic, PresetReset, PresetFixed}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset is the same as PresetClassic.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case "", PresetClassic:
		return nil
	case PresetReset:
		levels := make(map[string]MultiplierConfig, len(cfg.Difficulty.Levels))
		for name, m := range cfg.Difficulty.Levels {
			if name == "hard" || name == "impossible" {
				m.Direction = 0
			}
			levels[name] = m
		}
		cfg.Difficulty.Levels = levels
		return nil
	case PresetFixed:
		cfg.Difficulty.Progression = false
		return nil
	default:
		return fmt.Errorf("unknown difficulty preset %q (want one of %v)", preset, Presets)
	}
}
