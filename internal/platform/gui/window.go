// Package gui is the windowed driver built on Ebitengine. The window's
// logical size is the arena, so cursor positions are arena coordinates.
package gui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/find-luigi/internal/core"
	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
	"github.com/vovakirdan/find-luigi/internal/platform/loop"
)

// Window scale: the arena is drawn at this fraction of its logical size.
const windowScale = 0.8

// Window implements ebiten.Game for one Find Luigi game.
type Window struct {
	runner *loop.Runner
	input  core.InputFrame
	paused bool
}

// NewWindow wraps a game that has already been Reset.
func NewWindow(game *findluigi.Game, logger *log.Logger) *Window {
	return &Window{
		runner: loop.NewRunner(game, logger),
		input:  core.NewInputFrame(),
	}
}

// Update polls input and runs one frame.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !w.runner.GameOver() {
		w.paused = !w.paused
	}
	if w.paused {
		return nil
	}

	w.input.Clear()
	w.input.Elapsed = time.Second / time.Duration(ebiten.TPS())
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.input.Press(ebiten.CursorPosition())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.input.Set(core.ActionRestart)
	}
	w.runner.Step(w.input)
	return nil
}

// Draw renders the arena, HUD and overlays.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := w.runner.Snapshot()
	for _, sp := range snap.Sprites {
		if snap.GameOver && !sp.Kind.IsTarget() {
			continue
		}
		drawSprite(screen, sp)
	}

	for _, p := range w.runner.Popups() {
		x, y := p.Pos()
		drawLabel(screen, p.Text, int(x), int(y), p.Alpha())
	}

	hud := fmt.Sprintf("Score: %d\nLives: %d\nTime:  %d\nLevel: %s\nBest:  %d",
		snap.Score, snap.Lives, snap.TimeRemaining, snap.Level, snap.HighScore)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	switch {
	case snap.GameOver:
		drawPanel(screen,
			"GAME OVER",
			fmt.Sprintf("Score %d   High score %d", snap.Score, snap.HighScore),
			"Press R to restart, Esc to quit")
	case w.paused:
		drawPanel(screen, "PAUSED", "Press P to resume")
	}
}

// Layout fixes the logical screen to the arena.
func (w *Window) Layout(_, _ int) (int, int) {
	return findluigi.ArenaSize, findluigi.ArenaSize
}

func drawSprite(screen *ebiten.Image, sp core.SpriteView) {
	l := lookFor(sp.Kind)
	x, y := float32(sp.X), float32(sp.Y)
	size := float32(findluigi.SpriteSize)

	vector.DrawFilledRect(screen, x, y, size, size, l.Fill, false)
	vector.StrokeRect(screen, x, y, size, size, 2, color.Black, false)
	ebitenutil.DebugPrintAt(screen, l.Label, sp.X+findluigi.SpriteSize/2-3, sp.Y+findluigi.SpriteSize/2-8)
}

func drawLabel(screen *ebiten.Image, text string, x, y int, alpha float32) {
	c := bonusColor
	c.A = uint8(alpha * 255)
	vector.DrawFilledRect(screen, float32(x-4), float32(y-2), float32(len(text)*6+8), 20, c, false)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

func drawPanel(screen *ebiten.Image, lines ...string) {
	const lineH = 20
	w, h := 360, len(lines)*lineH+40
	x := (findluigi.ArenaSize - w) / 2
	y := (findluigi.ArenaSize - h) / 2

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), overlayColor, false)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x+(w-len(l)*6)/2, y+20+i*lineH)
	}
}

// Run opens the window and plays until it is closed.
func Run(game *findluigi.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	game.Reset(cfg)

	size := int(findluigi.ArenaSize * windowScale)
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowTitle(game.Title())
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	// RunGame returns nil when Update returns ebiten.Termination
	return ebiten.RunGame(NewWindow(game, logger))
}
