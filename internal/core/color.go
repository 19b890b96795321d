package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Element aliases, so render code names what it draws rather than a
// raw terminal color.
const (
	ColorWall      = ColorGray
	ColorCheese    = ColorBrightYellow
	ColorHole      = ColorBrightGreen
	ColorObstacle  = ColorBrightBlue
	ColorMouse     = ColorBrightCyan
	ColorCatCalm   = ColorWhite
	ColorCatChase  = ColorBrightRed
	ColorCatSearch = ColorBrightYellow
)
