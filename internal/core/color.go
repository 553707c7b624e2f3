package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Palette used by the tadpole renderer and the menus.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorBrown
	ColorGray
)

// ansiCodes holds the ANSI 256-color code of each palette entry.
var ansiCodes = [...]string{
	ColorDefault:      "",
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorMagenta:      "5",
	ColorCyan:         "6",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorBrightCyan:   "14",
	ColorOrange:       "208",
	ColorBrown:        "130",
	ColorGray:         "245",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
