package findluigi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/find-luigi/internal/config"
)

// Level is a difficulty tier. Levels are ordered; a session only moves up.
type Level int

const (
	LevelEasy Level = iota
	LevelMedium
	LevelHard
	LevelUltra
	LevelImpossible

	levelCount = int(LevelImpossible) + 1
)

// ErrUnknownLevel is returned when a level name does not parse.
var ErrUnknownLevel = errors.New("unknown difficulty level")

// String returns the display name of the level.
func (l Level) String() string {
	if l < 0 || int(l) >= levelCount {
		return "UNKNOWN"
	}
	return strings.ToUpper(config.LevelNames[l])
}

// ParseLevel converts a config name ("easy", "hard", ...) to a Level.
func ParseLevel(name string) (Level, error) {
	for i, n := range config.LevelNames {
		if strings.EqualFold(n, name) {
			return Level(i), nil
		}
	}
	return LevelEasy, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
}

// Multipliers scale speed, initial direction and population for a level.
type Multipliers struct {
	Speed      int
	Direction  int
	Population int
}

// Threshold switches to Level when the score reaches exactly Score.
type Threshold struct {
	Score int
	Level Level
}

// Table maps scores to levels and levels to multipliers. It is immutable
// once built.
type Table struct {
	levels      [levelCount]Multipliers
	thresholds  []Threshold
	progression bool
}

// NewTable builds a table from configuration.
func NewTable(cfg config.DifficultyConfig) (Table, error) {
	t := Table{progression: cfg.Progression}

	for i, name := range config.LevelNames {
		m, ok := cfg.Levels[name]
		if !ok {
			return Table{}, fmt.Errorf("difficulty table: level %q has no multipliers", name)
		}
		t.levels[i] = Multipliers{Speed: m.Speed, Direction: m.Direction, Population: m.Population}
	}

	for _, th := range cfg.Thresholds {
		level, err := ParseLevel(th.Level)
		if err != nil {
			return Table{}, fmt.Errorf("difficulty table: %w", err)
		}
		t.thresholds = append(t.thresholds, Threshold{Score: th.Score, Level: level})
	}
	return t, nil
}

// DefaultTable returns the table for the built-in configuration.
func DefaultTable() Table {
	t, err := NewTable(config.DefaultConfig().Difficulty)
	if err != nil {
		panic(err)
	}
	return t
}

// Multipliers returns the multipliers for a level.
func (t Table) Multipliers(l Level) Multipliers {
	if l < 0 || int(l) >= levelCount {
		return t.levels[LevelEasy]
	}
	return t.levels[l]
}

// LevelFor returns the level after reaching score while at current.
// Only an exact threshold hit changes the level, and never downwards.
func (t Table) LevelFor(current Level, score int) Level {
	if !t.progression {
		return current
	}
	for _, th := range t.thresholds {
		if th.Score == score && th.Level > current {
			return th.Level
		}
	}
	return current
}

// Thresholds returns a copy of the score thresholds.
func (t Table) Thresholds() []Threshold {
	out := make([]Threshold, len(t.thresholds))
	copy(out, t.thresholds)
	return out
}

// Progression reports whether the level advances with the score.
func (t Table) Progression() bool {
	return t.progression
}
