package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/find-luigi/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Renderer draws a snapshot into a screen buffer.
type Renderer struct {
	skin Skin
}

// NewRenderer creates a renderer with the given skin.
func NewRenderer(skin Skin) *Renderer {
	return &Renderer{skin: skin}
}

// Draw renders the HUD, the arena and any overlay for one frame.
// After game over only the target is drawn, so the player sees where it was.
func (r *Renderer) Draw(s *core.Screen, b Board, snap core.Snapshot, paused bool) {
	s.Clear()
	r.drawHUD(s, snap)
	s.DrawBox(b.Frame, core.ColorGray)

	for _, sp := range snap.Sprites {
		if snap.GameOver && !sp.Kind.IsTarget() {
			continue
		}
		g := r.skin.Glyph(sp.Kind)
		s.DrawRect(b.SpriteCells(sp), g.Rune, g.Color)
	}

	switch {
	case snap.GameOver:
		r.drawPanel(s, b, core.ColorRed,
			"GAME OVER",
			fmt.Sprintf("Score %d   High score %d", snap.Score, snap.HighScore),
			"R to restart, Q to quit")
	case paused:
		r.drawPanel(s, b, core.ColorCyan, "PAUSED", "P to resume")
	}
}

func (r *Renderer) drawHUD(s *core.Screen, snap core.Snapshot) {
	left := fmt.Sprintf(" Score %d  Lives %d  Time %d  Level %s", snap.Score, snap.Lives, snap.TimeRemaining, snap.Level)
	s.DrawText(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf("Best %d ", snap.HighScore)
	s.DrawText(s.Width()-len(right), 0, right, core.ColorYellow)
}

// drawPanel draws a boxed block of centred lines in the middle of the arena.
func (r *Renderer) drawPanel(s *core.Screen, b Board, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = core.Max(w, len(l))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect(
		b.Inner.X+(b.Inner.W-w)/2,
		b.Inner.Y+(b.Inner.H-h)/2,
		w, h,
	)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len(l))/2
		s.DrawText(x, box.Y+1+i, l, c)
	}
}
