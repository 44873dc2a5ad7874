package core

// Color is a foreground colour for a screen cell. Drivers map it to their own
// palette.
type Color uint8

// Palette used by the sprite skins and the HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorGray
)
