package core

// Color is the foreground of one cell. Every value maps to a fixed ANSI
// 256-color code so a frame looks the same in a local terminal and over SSH.
type Color uint8

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
	ColorOrange // Coral
	ColorGray
	ColorSand  // Dunes and seabed
	ColorPink  // Sea flowers, starfish
	colorCount // Sentinel, keep last
)

var palette = [colorCount]struct {
	name string
	ansi string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright-red", "9"},
	ColorBrightGreen:   {"bright-green", "10"},
	ColorBrightYellow:  {"bright-yellow", "11"},
	ColorBrightBlue:    {"bright-blue", "12"},
	ColorBrightMagenta: {"bright-magenta", "13"},
	ColorBrightCyan:    {"bright-cyan", "14"},
	ColorBrightWhite:   {"bright-white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
	ColorSand:          {"sand", "180"},
	ColorPink:          {"pink", "213"},
}

// Colors returns every palette entry in declaration order.
func Colors() []Color {
	out := make([]Color, colorCount)
	for i := range out {
		out[i] = Color(i)
	}
	return out
}

// ANSI returns the 256-color code, or "" for the terminal default.
// Unknown values fall back to the default.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return palette[c].ansi
}

func (c Color) String() string {
	if c >= colorCount {
		return "default"
	}
	return palette[c].name
}
