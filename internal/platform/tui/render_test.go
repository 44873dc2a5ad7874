package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/find-luigi/internal/core"
)

// countInArena counts occurrences of r inside the board.
func countInArena(s *core.Screen, b Board, r rune) int {
	n := 0
	for y := b.Inner.Y; y < b.Inner.Bottom(); y++ {
		for x := b.Inner.X; x < b.Inner.Right(); x++ {
			if s.Get(x, y) == r {
				n++
			}
		}
	}
	return n
}

func testSnapshot() core.Snapshot {
	return core.Snapshot{
		Sprites: []core.SpriteView{
			{ID: 1, Kind: core.KindDecoyA, X: 100, Y: 100},
			{ID: 2, Kind: core.KindTarget, X: 500, Y: 500},
			{ID: 3, Kind: core.KindDecoyC, X: 800, Y: 200},
		},
		Score:         3,
		Lives:         4,
		TimeRemaining: 27,
		Level:         "EASY",
		HighScore:     11,
		Round:         4,
	}
}

func TestRendererHUD(t *testing.T) {
	s := core.NewScreen(80, 23)
	b := NewBoard(80, 23)
	NewRenderer(DefaultSkin()).Draw(s, b, testSnapshot(), false)

	hud := s.Row(0)
	for _, want := range []string{"Score 3", "Lives 4", "Time 27", "Level EASY", "Best 11"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if s.Get(0, 1) != '┌' {
		t.Errorf("frame corner = %q", s.Get(0, 1))
	}
}

func TestRendererDrawsAllSpritesWhilePlaying(t *testing.T) {
	s := core.NewScreen(80, 23)
	b := NewBoard(80, 23)
	NewRenderer(DefaultSkin()).Draw(s, b, testSnapshot(), false)

	for _, r := range []rune{'L', 'M', 'Y'} {
		if countInArena(s, b, r) == 0 {
			t.Errorf("no %q drawn", r)
		}
	}
	if strings.Contains(s.String(), "GAME OVER") {
		t.Error("game over panel while playing")
	}
}

func TestRendererGameOverRevealsTarget(t *testing.T) {
	// The target sits in a corner, away from the centred panel
	snap := testSnapshot()
	snap.Sprites[1].X, snap.Sprites[1].Y = 0, 0
	snap.GameOver = true

	s := core.NewScreen(80, 23)
	b := NewBoard(80, 23)
	NewRenderer(DefaultSkin()).Draw(s, b, snap, false)

	if countInArena(s, b, 'L') == 0 {
		t.Error("target should stay visible after game over")
	}
	// Panel text may contain decoy letters, so look at the decoy cells only
	skin := DefaultSkin()
	for _, sp := range snap.Sprites {
		if sp.Kind.IsTarget() {
			continue
		}
		r := b.SpriteCells(sp)
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if s.Get(x, y) == skin.Glyph(sp.Kind).Rune {
					t.Fatalf("decoy %d still drawn at (%d, %d) after game over", sp.ID, x, y)
				}
			}
		}
	}

	out := s.String()
	for _, want := range []string{"GAME OVER", "High score 11", "R to restart"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q", want)
		}
	}
}

func TestRendererPaused(t *testing.T) {
	s := core.NewScreen(80, 23)
	b := NewBoard(80, 23)
	NewRenderer(DefaultSkin()).Draw(s, b, testSnapshot(), true)

	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("paused panel missing")
	}
}

func TestSkinUnknownKind(t *testing.T) {
	if g := DefaultSkin().Glyph(core.Kind(42)); g.Rune != '?' {
		t.Errorf("unknown kind glyph = %q", g.Rune)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 1)
	s.DrawText(0, 0, "Luigi", core.ColorBrightGreen)
	s.DrawText(6, 0, "Mario", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "Luigi") || !strings.Contains(out, "Mario") {
		t.Errorf("rendered output lost text: %q", out)
	}
}
