// Package loop runs driver frames against a Find Luigi session and keeps
// the bonus popups in step with it. It does no input polling or drawing, so
// the window driver's frame order is testable without a display.
package loop

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/find-luigi/internal/core"
	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
	"github.com/vovakirdan/find-luigi/internal/platform/fx"
)

// BonusText is shown where the target was found.
const BonusText = "+5s"

// Runner feeds input frames to a game.
type Runner struct {
	game   *findluigi.Game
	popups fx.Popups
	logger *log.Logger
}

// NewRunner wraps a game that has already been Reset.
func NewRunner(game *findluigi.Game, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{game: game, logger: logger}
}

// Step runs one frame: time, then popups, then each press, then the
// restart action. It returns how each press resolved.
func (r *Runner) Step(in core.InputFrame) []findluigi.Hit {
	s := r.game.Session()
	s.Tick(in.Elapsed)
	r.popups.Update(float32(in.Elapsed.Seconds()))

	var hits []findluigi.Hit
	for _, p := range in.Presses {
		hit := s.OnPointerPress(p.X, p.Y)
		r.logger.Debug("click", "x", p.X, "y", p.Y, "hit", hit)
		if hit == findluigi.HitTarget {
			r.popups.Add(fx.NewPopup(BonusText, float32(p.X), float32(p.Y)))
		}
		hits = append(hits, hit)
	}

	if in.Has(core.ActionRestart) && s.GameOver() {
		s.OnRestartRequested()
		r.popups.Clear()
	}
	return hits
}

// Popups returns the live bonus popups.
func (r *Runner) Popups() []*fx.Popup {
	return r.popups.Items()
}

// Snapshot returns the game's current frame.
func (r *Runner) Snapshot() core.Snapshot {
	return r.game.Snapshot()
}

// GameOver reports whether the session has ended.
func (r *Runner) GameOver() bool {
	return r.game.Session().GameOver()
}
