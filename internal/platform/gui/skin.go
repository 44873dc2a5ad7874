package gui

import (
	"image/color"

	"github.com/vovakirdan/find-luigi/internal/core"
)

// Look is how one sprite kind is drawn in the window.
type Look struct {
	Fill  color.RGBA
	Label string
}

var looks = map[core.Kind]Look{
	core.KindTarget: {Fill: color.RGBA{R: 0x2e, G: 0xb8, B: 0x3c, A: 0xff}, Label: "L"},
	core.KindDecoyA: {Fill: color.RGBA{R: 0xd8, G: 0x28, B: 0x28, A: 0xff}, Label: "M"},
	core.KindDecoyB: {Fill: color.RGBA{R: 0xe8, G: 0xc8, B: 0x20, A: 0xff}, Label: "W"},
	core.KindDecoyC: {Fill: color.RGBA{R: 0x50, G: 0xc8, B: 0x78, A: 0xff}, Label: "Y"},
}

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xff}
	overlayColor    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xc0}
	bonusColor      = color.RGBA{R: 0xff, G: 0xf0, B: 0x60, A: 0xff}
)

func lookFor(k core.Kind) Look {
	if l, ok := looks[k]; ok {
		return l
	}
	return Look{Fill: color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, Label: "?"}
}
