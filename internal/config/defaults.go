package config

import (
	_ "embed"
)

//go:embed defaults/findluigi.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches the embedded
// defaults/findluigi.yaml and is the fallback when that fails to parse.
func DefaultConfig() GameConfig {
	return GameConfig{
		Session: SessionConfig{
			Lives:        5,
			Time:         30,
			TimeBonus:    5,
			DebounceMS:   500,
			LivesEndGame: true,
		},
		Round: RoundConfig{
			MinDecoys: 75,
			MaxDecoys: 99,
			MinSpeed:  1,
			MaxSpeed:  2,
		},
		Difficulty: DifficultyConfig{
			Progression: true,
			Thresholds: []ThresholdConfig{
				{Score: 5, Level: "medium"},
				{Score: 10, Level: "hard"},
				{Score: 25, Level: "ultra"},
				{Score: 50, Level: "impossible"},
			},
			Levels: map[string]MultiplierConfig{
				"easy":       {Speed: 0, Direction: 0, Population: 1},
				"medium":     {Speed: 0, Direction: 1, Population: 2},
				"hard":       {Speed: 0, Direction: 1, Population: 3},
				"ultra":      {Speed: 2, Direction: 1, Population: 2},
				"impossible": {Speed: 3, Direction: 1, Population: 3},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
