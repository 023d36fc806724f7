package artwork

import (
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/registry"
)

var spongeFrames = []sprite{
	{
		"▛▀▀▀▜",
		"▌◉ ◉▐",
		"▙▄▄▄▟",
		"╱   ╲",
	},
	{
		"▛▀▀▀▜",
		"▌◉ ◉▐",
		"▙▄▄▄▟",
		" ╲ ╱ ",
	},
}

var starfishFrames = []sprite{
	{
		"  ▲  ",
		"◀●●●▶",
		" ●●● ",
		"╱   ╲",
	},
	{
		"  ▲  ",
		"◀●●●▶",
		" ●●● ",
		" ╲ ╱ ",
	},
}

var squidFrames = []sprite{
	{
		" ▄▀▄ ",
		"▐◉ ◉▌",
		" ▐█▌ ",
		"╱╿ ╿╲",
	},
	{
		" ▄▀▄ ",
		"▐◉ ◉▌",
		" ▐█▌ ",
		" ╿╲╱╿",
	},
}

// DrawSponge paints the sponge character.
func DrawSponge(dst *core.Screen, x, y, w, h int, frame int) {
	stamp(dst, x, y, w, h, animate(spongeFrames, frame, 6), core.ColorBrightYellow)
}

// DrawStarfish paints the starfish character.
func DrawStarfish(dst *core.Screen, x, y, w, h int, frame int) {
	stamp(dst, x, y, w, h, animate(starfishFrames, frame, 6), core.ColorPink)
}

// DrawSquid paints the squid character.
func DrawSquid(dst *core.Screen, x, y, w, h int, frame int) {
	stamp(dst, x, y, w, h, animate(squidFrames, frame, 8), core.ColorCyan)
}

func init() {
	registry.Register(registry.Character{ID: "sponge", Title: "Sponge", Color: core.ColorBrightYellow, Draw: DrawSponge})
	registry.Register(registry.Character{ID: "starfish", Title: "Starfish", Color: core.ColorPink, Draw: DrawStarfish})
	registry.Register(registry.Character{ID: "squid", Title: "Squid", Color: core.ColorCyan, Draw: DrawSquid})
}
