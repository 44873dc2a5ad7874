// Package findluigi implements the "find the target among decoys" game:
// bouncing sprites, round generation, difficulty progression, click
// resolution and the session state machine.
//
// A Session is single-threaded and fully deterministic for a given seed.
// Drivers call Tick once per frame, OnPointerPress for clicks and
// OnRestartRequested for the restart key, then draw from Snapshot.
package findluigi

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/find-luigi/internal/config"
	"github.com/vovakirdan/find-luigi/internal/core"
)

// Hit describes how a pointer press was resolved.
type Hit int

const (
	HitIgnored Hit = iota // Debounced or game over
	HitMiss               // Nothing under the pointer
	HitTarget             // Found the target
	HitDecoy              // Clicked a decoy
)

// String returns a short name for the hit.
func (h Hit) String() string {
	switch h {
	case HitIgnored:
		return "ignored"
	case HitMiss:
		return "miss"
	case HitTarget:
		return "target"
	case HitDecoy:
		return "decoy"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger for round and state events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// Session is the game state machine.
type Session struct {
	cfg    config.SessionConfig
	rng    *Random
	gen    *RoundGenerator
	table  Table
	speeds SpeedRange
	logger *log.Logger

	sprites       []*Sprite // Draw order; last is topmost
	score         int
	lives         int
	timeRemaining int
	highScore     int
	level         Level
	mult          Multipliers
	gameOver      bool
	round         int

	debounce Debounce
	clock    secondClock
}

// NewSession validates cfg, seeds the random source and generates the first round.
func NewSession(cfg config.GameConfig, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	table, err := NewTable(cfg.Difficulty)
	if err != nil {
		return nil, err
	}

	rng := NewRandom(seed)
	params := RoundParams{
		MinDecoys: cfg.Round.MinDecoys,
		MaxDecoys: cfg.Round.MaxDecoys,
		Speeds:    SpeedRange{Min: cfg.Round.MinSpeed, Max: cfg.Round.MaxSpeed},
	}

	s := &Session{
		cfg:      cfg.Session,
		rng:      rng,
		gen:      NewRoundGenerator(rng, params),
		table:    table,
		speeds:   params.Speeds,
		logger:   log.New(io.Discard),
		debounce: NewDebounce(time.Duration(cfg.Session.DebounceMS) * time.Millisecond),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.start()
	return s, nil
}

// start puts the session in its initial PLAYING state with a fresh round.
func (s *Session) start() {
	s.score = 0
	s.lives = s.cfg.Lives
	s.timeRemaining = s.cfg.Time
	s.level = LevelEasy
	s.mult = s.table.Multipliers(LevelEasy)
	s.gameOver = false
	s.round = 0
	s.debounce.Reset()
	s.clock.Reset()
	s.newRound()
}

// newRound replaces the live set with a freshly generated one.
func (s *Session) newRound() {
	sprites := s.gen.Generate(s.mult)
	mustHaveOneTarget(sprites)
	s.sprites = sprites
	s.round++
	s.logger.Debug("round generated",
		"round", s.round, "sprites", len(sprites), "level", s.level,
		"speed", s.mult.Speed, "direction", s.mult.Direction, "population", s.mult.Population)
}

// Tick advances one frame: sprite motion, the click lockout and the countdown.
// It does nothing once the game is over.
func (s *Session) Tick(elapsed time.Duration) {
	if s.gameOver {
		return
	}
	if elapsed < 0 {
		elapsed = 0
	}

	for _, sp := range s.sprites {
		sp.Update(s.rng, s.mult, s.speeds)
	}

	s.debounce.Advance(elapsed)

	for n := s.clock.Advance(elapsed); n > 0 && !s.gameOver; n-- {
		if s.timeRemaining > 0 {
			s.timeRemaining--
		}
		if s.timeRemaining == 0 {
			s.endGame("time")
		}
	}
}

// OnPointerPress resolves a click at arena coordinates.
func (s *Session) OnPointerPress(x, y int) Hit {
	if s.gameOver || s.debounce.Armed() {
		return HitIgnored
	}

	i := s.pick(x, y)
	if i < 0 {
		return HitMiss
	}

	if s.sprites[i].Kind.IsTarget() {
		s.foundTarget()
		return HitTarget
	}
	s.hitDecoy(i)
	return HitDecoy
}

// pick returns the index of the sprite a click at (x, y) lands on, or -1.
// Candidates are walked topmost first; the target wins even when covered.
func (s *Session) pick(x, y int) int {
	winner := -1
	for i := len(s.sprites) - 1; i >= 0; i-- {
		sp := s.sprites[i]
		if !sp.Bounds().Contains(x, y) {
			continue
		}
		if sp.Kind.IsTarget() {
			return i
		}
		if winner < 0 {
			winner = i
		}
	}
	return winner
}

func (s *Session) foundTarget() {
	s.score++

	if next := s.table.LevelFor(s.level, s.score); next != s.level {
		s.logger.Debug("difficulty changed", "from", s.level, "to", next, "score", s.score)
		s.level = next
		s.mult = s.table.Multipliers(next)
	}

	s.newRound()
	s.debounce.Arm()
	s.timeRemaining += s.cfg.TimeBonus
}

func (s *Session) hitDecoy(i int) {
	s.sprites = append(s.sprites[:i], s.sprites[i+1:]...)

	if s.cfg.LivesEndGame {
		s.lives--
	} else {
		s.lives = max(s.lives-1, 1)
	}
	s.debounce.Arm()

	if s.lives <= 0 {
		s.lives = 0
		s.endGame("lives")
	}
}

// endGame moves to GAME_OVER and records the high score.
func (s *Session) endGame(reason string) {
	s.gameOver = true
	s.highScore = max(s.highScore, s.score)
	s.debounce.Reset()
	s.logger.Info("game over", "reason", reason, "score", s.score, "high_score", s.highScore, "round", s.round)
}

// OnRestartRequested starts a new game. It only has an effect after game over.
func (s *Session) OnRestartRequested() {
	if !s.gameOver {
		return
	}
	s.start()
	s.logger.Info("restarted", "high_score", s.highScore)
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// TimeRemaining returns the countdown in seconds.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// HighScore returns the best score reached in this process.
func (s *Session) HighScore() int { return s.highScore }

// Level returns the current difficulty level.
func (s *Session) Level() Level { return s.level }

// Multipliers returns the multipliers in effect.
func (s *Session) Multipliers() Multipliers { return s.mult }

// GameOver reports whether the session is in GAME_OVER.
func (s *Session) GameOver() bool { return s.gameOver }

// Debounced reports whether clicks are currently locked out.
func (s *Session) Debounced() bool { return s.debounce.Armed() }

// Snapshot returns a read-only copy of the state for rendering.
func (s *Session) Snapshot() core.Snapshot {
	views := make([]core.SpriteView, len(s.sprites))
	for i, sp := range s.sprites {
		views[i] = sp.View()
	}
	return core.Snapshot{
		Sprites:       views,
		Score:         s.score,
		Lives:         s.lives,
		TimeRemaining: s.timeRemaining,
		GameOver:      s.gameOver,
		HighScore:     s.highScore,
		Level:         s.level.String(),
		Round:         s.round,
		Debounced:     s.debounce.Armed(),
	}
}
