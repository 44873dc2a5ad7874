package tui

import (
	"github.com/vovakirdan/find-luigi/internal/core"
	"github.com/vovakirdan/find-luigi/internal/games/findluigi"
)

// Screen layout: one HUD row, then the framed arena.
const (
	hudRows  = 1
	minInner = 4
)

// Board maps the square arena onto the cells inside the frame.
type Board struct {
	Frame core.Rect // Outline including the border
	Inner core.Rect // Cells covered by the arena
}

// NewBoard lays out the arena for a screen of the given size.
func NewBoard(width, height int) Board {
	frame := core.NewRect(0, hudRows, core.Max(width, minInner+2), core.Max(height-hudRows, minInner+2))
	inner := core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2)
	return Board{Frame: frame, Inner: inner}
}

// ToArena converts a cell position to the arena point at the centre of that
// cell. ok is false for cells outside the arena.
func (b Board) ToArena(col, row int) (x, y int, ok bool) {
	if !b.Inner.Contains(col, row) {
		return 0, 0, false
	}
	return cellCentre(col-b.Inner.X, b.Inner.W), cellCentre(row-b.Inner.Y, b.Inner.H), true
}

// ToCell converts an arena point to the cell containing it.
func (b Board) ToCell(x, y int) (col, row int) {
	x = core.Clamp(x, 0, findluigi.ArenaSize-1)
	y = core.Clamp(y, 0, findluigi.ArenaSize-1)
	return b.Inner.X + x*b.Inner.W/findluigi.ArenaSize,
		b.Inner.Y + y*b.Inner.H/findluigi.ArenaSize
}

// SpriteCells returns the cells a sprite is drawn on: those whose centre,
// as reported by ToArena, lies inside the sprite box. Clicking any of them
// lands on the sprite. When cells are larger than a sprite no centre may
// fall inside, and the cell holding the sprite's middle is used instead.
func (b Board) SpriteCells(sp core.SpriteView) core.Rect {
	c0, cn := spanCells(sp.X, b.Inner.W)
	r0, rn := spanCells(sp.Y, b.Inner.H)
	return core.NewRect(b.Inner.X+c0, b.Inner.Y+r0, cn, rn)
}

// cellCentre returns the arena coordinate at the middle of cell i of n.
func cellCentre(i, n int) int {
	return (2*i + 1) * findluigi.ArenaSize / (2 * n)
}

// spanCells returns the first cell and the cell count, out of n cells, whose
// centres lie in [lo, lo+SpriteSize). The count is at least 1.
func spanCells(lo, n int) (first, count int) {
	hi := lo + findluigi.SpriteSize
	first = -1
	for i := core.Clamp(lo*n/findluigi.ArenaSize, 0, n-1); i < n; i++ {
		c := cellCentre(i, n)
		if c >= hi {
			break
		}
		if c < lo {
			continue
		}
		if first < 0 {
			first = i
		}
		count++
	}
	if count == 0 {
		mid := core.Clamp(lo+findluigi.SpriteSize/2, 0, findluigi.ArenaSize-1)
		return mid * n / findluigi.ArenaSize, 1
	}
	return first, count
}
