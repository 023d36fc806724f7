package artwork

import (
	"math"

	"github.com/vovakirdan/reef-runner/internal/core"
)

// DrawDune paints a sand hill whose base sits on the bottom row of the rect.
func DrawDune(dst *core.Screen, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	bottom := y + h - 1
	for cx := 0; cx < w; cx++ {
		t := (float64(cx) + 0.5) / float64(w)
		col := int(math.Round(math.Sin(t*math.Pi) * float64(h)))
		for cy := 0; cy < col; cy++ {
			r := '░'
			if cy == col-1 {
				r = '▁'
			}
			dst.SetColor(x+cx, bottom-cy, r, core.ColorSand)
		}
	}
}

// DrawFlower paints a sea flower: a stem topped by a bloom.
func DrawFlower(dst *core.Screen, x, y, w, h int) {
	if h <= 0 {
		return
	}
	cx := x + w/2
	dst.SetColor(cx, y, '✿', core.ColorPink)
	for cy := y + 1; cy < y+h; cy++ {
		dst.SetColor(cx, cy, '│', core.ColorGreen)
	}
}

// DrawSeaSurface paints the rippling water surface on row y.
func DrawSeaSurface(dst *core.Screen, y int, offset int) {
	for cx := 0; cx < dst.Width(); cx++ {
		r := '~'
		if (cx+offset)%4 == 0 {
			r = '≈'
		}
		dst.SetColor(cx, y, r, core.ColorBlue)
	}
}

// DrawSeabed paints the ground line and the sand below it.
func DrawSeabed(dst *core.Screen, y int) {
	for cx := 0; cx < dst.Width(); cx++ {
		dst.SetColor(cx, y, '▀', core.ColorSand)
		for cy := y + 1; cy < dst.Height(); cy++ {
			dst.SetColor(cx, cy, '▒', core.ColorSand)
		}
	}
}
