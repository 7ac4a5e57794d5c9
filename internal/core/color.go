package core

// Color is a palette entry used by both renderers. The terminal maps it to
// ANSI colors, the window maps it to RGBA.
type Color uint8

// Palette colors for battle elements and text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorDarkBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorDarkGreen
	ColorOrange
)
