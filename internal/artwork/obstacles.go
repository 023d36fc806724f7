package artwork

import "github.com/vovakirdan/reef-runner/internal/core"

var jellyfishFrames = []sprite{
	{
		" ▄▄▄ ",
		"█████",
		"│╎│╎│",
	},
	{
		" ▄▄▄ ",
		"█████",
		"╎│╎│╎",
	},
}

var anchorSprite = sprite{
	"  ◯  ",
	"──┼──",
	"  │  ",
	"  │  ",
	"╰─┴─╯",
}

var coralFrames = []sprite{
	{
		"Y ψ Y",
		"╲│Y│╱",
		" ╲│╱ ",
	},
	{
		"ψ Y ψ",
		"╲│ψ│╱",
		" ╲│╱ ",
	},
}

var pattySprite = sprite{
	"▄▀▀▀▄",
	"≈≈≈≈≈",
	"▀▄▄▄▀",
}

// DrawJellyfish paints a jellyfish with pulsing tentacles.
func DrawJellyfish(dst *core.Screen, x, y, w, h int, frame int) {
	stamp(dst, x, y, w, h, animate(jellyfishFrames, frame, 10), core.ColorBrightMagenta)
}

// DrawAnchor paints an anchor.
func DrawAnchor(dst *core.Screen, x, y, w, h int, _ int) {
	stamp(dst, x, y, w, h, anchorSprite, core.ColorGray)
}

// DrawCoral paints swaying coral.
func DrawCoral(dst *core.Screen, x, y, w, h int, frame int) {
	stamp(dst, x, y, w, h, animate(coralFrames, frame, 20), core.ColorOrange)
}

// DrawKrabbyPatty paints a burger.
func DrawKrabbyPatty(dst *core.Screen, x, y, w, h int, _ int) {
	stamp(dst, x, y, w, h, pattySprite, core.ColorYellow)
}
