package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/reef-runner/internal/artwork"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// Render draws the current state onto dst, back to front:
// sky, dunes, flowers, seabed, obstacles, player, particles, then HUD and
// overlays. World units are mapped to cells by the viewport cell size.
// A nil dst is a no-op.
func (s *Sim) Render(dst *core.Screen) {
	if dst == nil {
		return
	}
	dst.Clear()

	groundRow := s.row(s.GroundY())

	// Sky
	artwork.DrawSeaSurface(dst, 0, s.col(s.progress.Distance*0.05))

	// Background parallax
	for _, l := range s.scene.Layers() {
		for _, e := range l.Elements {
			x, y := s.col(e.X), s.row(e.Y)
			w, h := s.span(e.Width, s.cfg.Viewport.CellWidth), s.span(e.Height, s.cfg.Viewport.CellHeight)
			switch e.Kind {
			case Dune:
				artwork.DrawDune(dst, x, groundRow-h, w, h)
			case Flower:
				artwork.DrawFlower(dst, x, y, w, groundRow-y)
			}
		}
	}

	// Ground
	artwork.DrawSeabed(dst, groundRow)

	// Obstacles
	for _, o := range s.spawner.Obstacles() {
		s.drawObstacle(dst, o)
	}

	// Player
	s.drawPlayer(dst)

	// Particles
	for _, p := range s.emitter.Particles() {
		dst.SetColor(s.col(p.X), s.row(p.Y), particleGlyph(s.emitter.Opacity(p), p.Size), p.Color)
	}

	s.drawHUD(dst)

	switch s.phase {
	case PhaseStart:
		drawCenteredMessage(dst, s.character.Title, "Space to start  |  Q to quit")
	case PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score()))
	}
}

// drawObstacle dispatches on the closed kind set. Bobbing only moves the
// sprite, never the hitbox.
func (s *Sim) drawObstacle(dst *core.Screen, o Obstacle) {
	x := s.col(o.X)
	y := s.row(o.Y + o.BobOffset(s.frame))
	w := s.span(o.Width, s.cfg.Viewport.CellWidth)
	h := s.span(o.Height, s.cfg.Viewport.CellHeight)

	switch o.Kind {
	case Jellyfish:
		artwork.DrawJellyfish(dst, x, y, w, h, s.frame)
	case Anchor:
		artwork.DrawAnchor(dst, x, y, w, h, s.frame)
	case Coral:
		artwork.DrawCoral(dst, x, y, w, h, s.frame)
	case KrabbyPatty:
		artwork.DrawKrabbyPatty(dst, x, y, w, h, s.frame)
	default:
		panic(fmt.Sprintf("runner: no artwork for %s", o.Kind))
	}
}

// drawPlayer draws the character through its registered artwork. A
// character rotated past a quarter turn is drawn upside down.
func (s *Sim) drawPlayer(dst *core.Screen) {
	p := s.player
	w := s.span(p.Width, s.cfg.Viewport.CellWidth)
	h := s.span(p.Height, s.cfg.Viewport.CellHeight)
	x, y := s.col(p.X), s.row(p.Y)

	// Lean forward by a cell when pitched down noticeably.
	if p.Life != Dying && p.Rotation > p.physics.MaxPitch/2 {
		x++
	}

	s.scratch.Resize(w, h)
	s.scratch.Clear()
	s.character.Draw(s.scratch, 0, 0, w, h, s.frame)
	dst.Blit(s.scratch, x, y, math.Cos(p.Rotation) < 0)
}

// drawHUD draws score, best and speed on the top row.
func (s *Sim) drawHUD(dst *core.Screen) {
	score := fmt.Sprintf(" Score: %d ", s.Score())
	dst.DrawTextColor(2, 0, score, core.ColorBrightWhite)

	best := fmt.Sprintf(" Best: %d ", s.highScore)
	dst.DrawTextColor(4+len(score), 0, best, core.ColorYellow)

	speed := fmt.Sprintf(" Spd: %.1f ", s.progress.Speed)
	dst.DrawTextColor(dst.Width()-len(speed)-2, 0, speed, core.ColorBrightCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(tw, sw) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColor(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}

// particleGlyph picks a glyph that fades with the particle's opacity.
func particleGlyph(opacity, size float64) rune {
	switch {
	case opacity > 0.66 && size >= 4:
		return '●'
	case opacity > 0.66:
		return '•'
	case opacity > 0.33:
		return '∙'
	default:
		return '·'
	}
}

func (s *Sim) col(x float64) int {
	return int(math.Floor(x / s.cfg.Viewport.CellWidth))
}

func (s *Sim) row(y float64) int {
	return int(math.Floor(y / s.cfg.Viewport.CellHeight))
}

// span converts a world length to a cell count, never below one cell.
func (s *Sim) span(v, cell float64) int {
	n := int(math.Round(v / cell))
	if n < 1 {
		return 1
	}
	return n
}
