package findluigi

import "github.com/vovakirdan/find-luigi/internal/core"

// Arena geometry in pixels.
const (
	ArenaSize  = 1000
	SpriteSize = 64
	MaxCoord   = ArenaSize - SpriteSize // Largest X or Y that keeps a sprite inside
)

// SpeedRange is the closed range speeds are drawn from before scaling.
type SpeedRange struct {
	Min, Max int
}

// Sprite is one character moving around the arena.
// Velocity on each axis is direction times speed: the sign lives in Dir and
// the magnitude in Speed.
type Sprite struct {
	ID     int
	Kind   core.Kind
	X, Y   int
	DirX   int
	DirY   int
	SpeedX int
	SpeedY int
	box    core.Rect
}

func newSprite(id int, kind core.Kind, x, y int) *Sprite {
	s := &Sprite{
		ID:     id,
		Kind:   kind,
		X:      x,
		Y:      y,
		DirX:   1,
		DirY:   1,
		SpeedX: 1,
		SpeedY: 1,
	}
	s.box = core.NewRect(x, y, SpriteSize, SpriteSize)
	return s
}

// Bounds returns the hit box as of the last update.
func (s *Sprite) Bounds() core.Rect {
	return s.box
}

// Velocity returns the per-frame displacement on each axis.
func (s *Sprite) Velocity() (int, int) {
	return s.DirX * s.SpeedX, s.DirY * s.SpeedY
}

// View returns the read-only view handed to renderers.
func (s *Sprite) View() core.SpriteView {
	return core.SpriteView{ID: s.ID, Kind: s.Kind, X: s.X, Y: s.Y}
}

// Update moves the sprite one frame and bounces it off the arena walls.
//
// On a bounce the axis flips direction, draws a new speed and is clamped back
// inside. If the other axis is standing still it gets a fresh direction, so a
// sprite sliding along one axis can start moving diagonally.
func (s *Sprite) Update(rng *Random, m Multipliers, speeds SpeedRange) {
	s.X += s.DirX * s.SpeedX
	s.Y += s.DirY * s.SpeedY

	if s.X > MaxCoord || s.X < 0 {
		s.DirX = -s.DirX
		s.SpeedX = rng.Between(speeds.Min, speeds.Max) * (1 + m.Speed)
		s.X = core.Clamp(s.X, 0, MaxCoord)

		if s.DirY == 0 {
			s.DirY = rng.Between(-1, 1) * (1 + m.Direction)
		}
	}
	if s.Y > MaxCoord || s.Y < 0 {
		s.DirY = -s.DirY
		s.SpeedY = rng.Between(speeds.Min, speeds.Max) * (1 + m.Speed)
		s.Y = core.Clamp(s.Y, 0, MaxCoord)

		if s.DirX == 0 {
			s.DirX = rng.Between(-1, 1) * (1 + m.Direction)
		}
	}

	s.box = core.NewRect(s.X, s.Y, SpriteSize, SpriteSize)
}
