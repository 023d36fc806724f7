// Package artwork holds the decorative sprites for characters, obstacles
// and scenery. Every function only paints; none of them hold state.
package artwork

import (
	"github.com/vovakirdan/reef-runner/internal/core"
)

// sprite is a small rune picture scaled to whatever cell rect it is drawn in.
// Spaces are left untouched.
type sprite []string

// stamp draws the sprite into the rect using nearest-neighbor sampling.
func stamp(dst *core.Screen, x, y, w, h int, s sprite, c core.Color) {
	if w <= 0 || h <= 0 || len(s) == 0 {
		return
	}
	rows := make([][]rune, len(s))
	for i, line := range s {
		rows[i] = []rune(line)
	}
	for cy := 0; cy < h; cy++ {
		row := rows[cy*len(rows)/h]
		if len(row) == 0 {
			continue
		}
		for cx := 0; cx < w; cx++ {
			r := row[cx*len(row)/w]
			if r == ' ' {
				continue
			}
			dst.SetColor(x+cx, y+cy, r, c)
		}
	}
}

// animate picks one of the frames, switching every period ticks.
func animate(frames []sprite, frame, period int) sprite {
	if period < 1 {
		period = 1
	}
	if frame < 0 {
		frame = -frame
	}
	return frames[(frame/period)%len(frames)]
}
