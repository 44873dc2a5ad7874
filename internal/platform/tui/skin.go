package tui

import "github.com/vovakirdan/find-luigi/internal/core"

// Glyph is how one sprite kind looks in the terminal.
type Glyph struct {
	Rune  rune
	Color core.Color
}

// Skin maps sprite kinds to glyphs.
type Skin map[core.Kind]Glyph

// DefaultSkin uses the initial of each character.
func DefaultSkin() Skin {
	return Skin{
		core.KindTarget: {Rune: 'L', Color: core.ColorBrightGreen},
		core.KindDecoyA: {Rune: 'M', Color: core.ColorRed},
		core.KindDecoyB: {Rune: 'W', Color: core.ColorYellow},
		core.KindDecoyC: {Rune: 'Y', Color: core.ColorGreen},
	}
}

// Glyph returns the glyph for a kind, '?' for kinds the skin does not know.
func (s Skin) Glyph(k core.Kind) Glyph {
	if g, ok := s[k]; ok {
		return g
	}
	return Glyph{Rune: '?', Color: core.ColorWhite}
}
