package tui

import (
	"testing"

	"github.com/vovakirdan/find-luigi/internal/core"
	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
)

func TestNewBoardLayout(t *testing.T) {
	b := NewBoard(80, 23)

	if b.Frame != core.NewRect(0, 1, 80, 22) {
		t.Errorf("frame = %+v", b.Frame)
	}
	if b.Inner != core.NewRect(1, 2, 78, 20) {
		t.Errorf("inner = %+v", b.Inner)
	}
}

func TestNewBoardTinyScreen(t *testing.T) {
	b := NewBoard(2, 2)
	if b.Inner.W < minInner || b.Inner.H < minInner {
		t.Errorf("inner too small: %+v", b.Inner)
	}
}

func TestToArenaRoundTrip(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 23}, {120, 40}, {200, 60}, {10, 8}}

	for _, sz := range sizes {
		b := NewBoard(sz.w, sz.h)
		for row := b.Inner.Y; row < b.Inner.Bottom(); row++ {
			for col := b.Inner.X; col < b.Inner.Right(); col++ {
				x, y, ok := b.ToArena(col, row)
				if !ok {
					t.Fatalf("%dx%d: cell (%d, %d) not in arena", sz.w, sz.h, col, row)
				}
				if x < 0 || x >= findluigi.ArenaSize || y < 0 || y >= findluigi.ArenaSize {
					t.Fatalf("%dx%d: cell (%d, %d) -> (%d, %d) outside arena", sz.w, sz.h, col, row, x, y)
				}
				if c, r := b.ToCell(x, y); c != col || r != row {
					t.Fatalf("%dx%d: cell (%d, %d) -> (%d, %d) -> (%d, %d)", sz.w, sz.h, col, row, x, y, c, r)
				}
			}
		}
	}
}

func TestToArenaOutside(t *testing.T) {
	b := NewBoard(80, 23)

	cells := []struct{ col, row int }{
		{0, 5},  // left border
		{79, 5}, // right border
		{10, 0}, // HUD
		{10, 1}, // top border
		{10, 22},
		{-1, -1},
	}
	for _, c := range cells {
		if _, _, ok := b.ToArena(c.col, c.row); ok {
			t.Errorf("cell (%d, %d) should be outside the arena", c.col, c.row)
		}
	}
}

func TestSpriteCells(t *testing.T) {
	b := NewBoard(80, 23)

	tests := []struct {
		name string
		x, y int
	}{
		{"origin", 0, 0},
		{"max corner", findluigi.MaxCoord, findluigi.MaxCoord},
		{"middle", 480, 520},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := b.SpriteCells(core.SpriteView{X: tt.x, Y: tt.y})
			if r.W < 1 || r.H < 1 {
				t.Fatalf("empty sprite rect %+v", r)
			}
			if r.X < b.Inner.X || r.Y < b.Inner.Y || r.Right() > b.Inner.Right() || r.Bottom() > b.Inner.Bottom() {
				t.Errorf("sprite rect %+v leaves arena %+v", r, b.Inner)
			}
		})
	}
}

func TestSpriteCellsAreClickable(t *testing.T) {
	sizes := []struct{ w, h int }{{120, 39}, {80, 23}, {200, 60}}

	for _, sz := range sizes {
		b := NewBoard(sz.w, sz.h)
		drawn := 0
		for x := 0; x <= findluigi.MaxCoord; x += 7 {
			for _, y := range []int{x, findluigi.MaxCoord - x} {
				sp := core.SpriteView{X: x, Y: y}
				box := core.NewRect(sp.X, sp.Y, findluigi.SpriteSize, findluigi.SpriteSize)
				cells := b.SpriteCells(sp)
				if cells.W < 1 || cells.H < 1 {
					t.Fatalf("%dx%d: sprite at (%d, %d) has no cells", sz.w, sz.h, x, y)
				}
				for row := cells.Y; row < cells.Bottom(); row++ {
					for col := cells.X; col < cells.Right(); col++ {
						ax, ay, ok := b.ToArena(col, row)
						if !ok || !box.Contains(ax, ay) {
							t.Fatalf("%dx%d: sprite at (%d, %d): cell (%d, %d) maps to (%d, %d) outside the sprite",
								sz.w, sz.h, x, y, col, row, ax, ay)
						}
						drawn++
					}
				}
			}
		}
		if drawn == 0 {
			t.Errorf("%dx%d: nothing drawn", sz.w, sz.h)
		}
	}
}

func TestSpriteCellsLargeCells(t *testing.T) {
	// Cells wider than a sprite still show it on one cell
	b := NewBoard(10, 8)
	for x := 0; x <= findluigi.MaxCoord; x += 13 {
		r := b.SpriteCells(core.SpriteView{X: x, Y: x})
		if r.W < 1 || r.H < 1 {
			t.Fatalf("sprite at %d has no cells", x)
		}
		if r.X < b.Inner.X || r.Right() > b.Inner.Right() || r.Y < b.Inner.Y || r.Bottom() > b.Inner.Bottom() {
			t.Fatalf("sprite at %d drawn outside the arena: %+v", x, r)
		}
	}
}
