package findluigi

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/find-luigi/internal/config"
	"github.com/vovakirdan/find-luigi/internal/core"
	"github.com/vovakirdan/find-luigi/internal/registry"
)

// Mode selects the game-over policy.
type Mode int

const (
	ModeClassic Mode = iota // Losing every life or running out of time ends the game
	ModeTimed               // Lives never drop below 1; only the clock ends the game
)

// Package-level settings applied on Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// SetLogger sets the logger handed to new sessions.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig resolves the configuration a mode will play with.
func LoadConfig(mode Mode) (config.GameConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if err := applyMode(&cfg, mode); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyMode sets the mode's game-over policy and the difficulty preset.
func applyMode(cfg *config.GameConfig, mode Mode) error {
	if mode == ModeTimed {
		cfg.Session.LivesEndGame = false
	}
	return config.ApplyPreset(cfg, difficultyPreset)
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	mode    Mode
	session *Session
}

// New creates a classic-mode game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewTimed creates a timed-mode game.
func NewTimed() *Game {
	return &Game{mode: ModeTimed}
}

func init() {
	registry.Register("findluigi", func() registry.Game {
		return New()
	})
	registry.Register("findluigi_timed", func() registry.Game {
		return NewTimed()
	})
}

// Mode returns the game-over policy of this game.
func (g *Game) Mode() Mode {
	return g.mode
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	if g.mode == ModeTimed {
		return "findluigi_timed"
	}
	return "findluigi"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	if g.mode == ModeTimed {
		return "Find Luigi (Timed)"
	}
	return "Find Luigi"
}

// Reset creates a fresh session. Config errors fall back to the defaults;
// the CLI validates the config before getting here.
func (g *Game) Reset(rc core.RuntimeConfig) {
	l := logger
	if l == nil {
		l = log.Default()
	}

	cfg, err := LoadConfig(g.mode)
	if err != nil {
		l.Warn("using default config", "error", err)
		cfg = config.DefaultConfig()
		if err := applyMode(&cfg, g.mode); err != nil {
			l.Warn("ignoring difficulty preset", "error", err)
		}
	}

	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s, err := NewSession(cfg, seed, WithLogger(logger))
	if err != nil {
		// Defaults always validate.
		panic(err)
	}
	g.session = s
}

// Step runs one frame: time first, then clicks, then the restart key.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.session.Tick(in.Elapsed)
	for _, p := range in.Presses {
		g.session.OnPointerPress(p.X, p.Y)
	}
	if in.Has(core.ActionRestart) {
		g.session.OnRestartRequested()
	}
	return core.StepResult{State: g.State()}
}

// Snapshot returns the current frame for rendering.
func (g *Game) Snapshot() core.Snapshot {
	return g.session.Snapshot()
}

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
	}
}

// Session exposes the underlying session to drivers that need hit results.
func (g *Game) Session() *Session {
	return g.session
}
