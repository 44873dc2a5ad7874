// Package config provides YAML-based game configuration loading, validation
// and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// LevelNames lists the difficulty levels from easiest to hardest.
var LevelNames = []string{"easy", "medium", "hard", "ultra", "impossible"}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// GameConfig contains all configuration for a Find Luigi session.
type GameConfig struct {
	Session    SessionConfig    `yaml:"session"`
	Round      RoundConfig      `yaml:"round"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SessionConfig defines lives, clock and click handling.
type SessionConfig struct {
	Lives      int `yaml:"lives"`
	Time       int `yaml:"time"`        // Starting countdown in seconds
	TimeBonus  int `yaml:"time_bonus"`  // Seconds added per target found
	DebounceMS int `yaml:"debounce_ms"` // Click lockout after a resolved click
	// LivesEndGame selects the game-over policy. When false, decoy clicks
	// never take the last life and only the countdown ends the game.
	LivesEndGame bool `yaml:"lives_end_game"`
}

// RoundConfig defines the random ranges used to populate a round.
// Both ranges are inclusive.
type RoundConfig struct {
	MinDecoys int `yaml:"min_decoys"`
	MaxDecoys int `yaml:"max_decoys"`
	MinSpeed  int `yaml:"min_speed"`
	MaxSpeed  int `yaml:"max_speed"`
}

// DifficultyConfig defines the level progression and per-level multipliers.
type DifficultyConfig struct {
	Progression bool                        `yaml:"progression"`
	Thresholds  []ThresholdConfig           `yaml:"thresholds"`
	Levels      map[string]MultiplierConfig `yaml:"levels"`
}

// ThresholdConfig moves the session to Level when the score reaches Score.
type ThresholdConfig struct {
	Score int    `yaml:"score"`
	Level string `yaml:"level"`
}

// MultiplierConfig holds the three multipliers for one level.
type MultiplierConfig struct {
	Speed      int `yaml:"speed"`
	Direction  int `yaml:"direction"`
	Population int `yaml:"population"`
}

// Validate checks that the configuration describes a playable game.
func (c GameConfig) Validate() error {
	s := c.Session
	switch {
	case s.Lives <= 0:
		return fmt.Errorf("%w: session.lives must be positive, got %d", ErrInvalid, s.Lives)
	case s.Time <= 0:
		return fmt.Errorf("%w: session.time must be positive, got %d", ErrInvalid, s.Time)
	case s.TimeBonus < 0:
		return fmt.Errorf("%w: session.time_bonus must not be negative", ErrInvalid)
	case s.DebounceMS < 0:
		return fmt.Errorf("%w: session.debounce_ms must not be negative", ErrInvalid)
	}

	r := c.Round
	if r.MinDecoys < 0 || r.MaxDecoys < r.MinDecoys {
		return fmt.Errorf("%w: round decoys range [%d, %d]", ErrInvalid, r.MinDecoys, r.MaxDecoys)
	}
	if r.MinSpeed < 1 || r.MaxSpeed < r.MinSpeed {
		return fmt.Errorf("%w: round speed range [%d, %d]", ErrInvalid, r.MinSpeed, r.MaxSpeed)
	}

	for _, name := range LevelNames {
		m, ok := c.Difficulty.Levels[name]
		if !ok {
			return fmt.Errorf("%w: difficulty.levels.%s is missing", ErrInvalid, name)
		}
		if m.Speed < 0 || m.Direction < 0 || m.Population < 1 {
			return fmt.Errorf("%w: difficulty.levels.%s has out of range multipliers %+v", ErrInvalid, name, m)
		}
	}

	prevScore, prevLevel := 0, 0
	for i, th := range c.Difficulty.Thresholds {
		idx := levelIndex(th.Level)
		if idx < 0 {
			return fmt.Errorf("%w: difficulty.thresholds[%d]: unknown level %q", ErrInvalid, i, th.Level)
		}
		if th.Score <= prevScore {
			return fmt.Errorf("%w: difficulty.thresholds[%d]: scores must increase", ErrInvalid, i)
		}
		if idx <= prevLevel {
			return fmt.Errorf("%w: difficulty.thresholds[%d]: levels must increase", ErrInvalid, i)
		}
		prevScore, prevLevel = th.Score, idx
	}
	return nil
}

func levelIndex(name string) int {
	for i, n := range LevelNames {
		if n == name {
			return i
		}
	}
	return -1
}
