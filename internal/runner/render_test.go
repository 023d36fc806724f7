package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/reef-runner/internal/artwork"
	"github.com/vovakirdan/reef-runner/internal/core"
)

func TestRenderNilScreen(t *testing.T) {
	s := newTestSim(t, nil, Events{})
	s.Start()
	s.Tick()
	s.Render(nil)
	s.Tick()

	if s.State().FrameCounter != 2 {
		t.Errorf("FrameCounter = %d, want 2", s.State().FrameCounter)
	}
}

func TestRenderStartOverlay(t *testing.T) {
	s := newTestSim(t, nil, Events{})
	dst := core.NewScreen(80, 24)
	s.Render(dst)

	if !strings.Contains(dst.String(), "Sponge") {
		t.Error("start overlay does not show the character title")
	}
}

func TestRenderPlaying(t *testing.T) {
	s := newTestSim(t, nil, Events{})
	s.Start()
	for i := 0; i < 15; i++ {
		s.Tick()
	}
	dst := core.NewScreen(80, 24)
	s.Render(dst)

	if !strings.Contains(dst.Row(0), "Score: 1") {
		t.Errorf("HUD row = %q, want score", dst.Row(0))
	}
	if !strings.Contains(dst.Row(0), "Spd:") {
		t.Errorf("HUD row = %q, want speed", dst.Row(0))
	}
	// Ground at y=400 is row 20.
	if !strings.ContainsRune(dst.Row(20), '▀') {
		t.Errorf("seabed missing from row 20: %q", dst.Row(20))
	}
	// Player spans columns 10-14, rows 17-19.
	found := false
	for y := 17; y < 20; y++ {
		for x := 10; x < 15; x++ {
			if dst.GetCell(x, y).Color == core.ColorBrightYellow {
				found = true
			}
		}
	}
	if !found {
		t.Error("player sprite not drawn at its cell rectangle")
	}
}

func TestRenderLayerOrder(t *testing.T) {
	s := newTestSim(t, noSpawns, Events{})
	s.Start()
	s.Tick()
	p := s.Player()
	ground := s.GroundY()

	var flower Element
	for _, e := range s.Scene().Flowers.Elements {
		if e.X > 300 && e.X < 700 {
			flower = e
			break
		}
	}
	if flower.Width == 0 {
		t.Fatal("no flower in the middle of the screen")
	}

	background := core.NewScreen(80, 24)
	s.Render(background)

	// One coral behind the player, one in front of a flower.
	s.spawner.obstacles = []Obstacle{
		{Kind: Coral, X: p.X, Y: ground - 60, Width: 60, Height: 60},
		{Kind: Coral, X: flower.X, Y: ground - 60, Width: 60, Height: 60},
	}
	dst := core.NewScreen(80, 24)
	s.Render(dst)

	isPlayer := func(c core.Cell) bool { return c.Color == core.ColorBrightYellow }

	playerCells := 0
	for y := 1; y < 24; y++ {
		for x := 0; x < 80; x++ {
			want := background.GetCell(x, y)
			if !isPlayer(want) {
				continue
			}
			playerCells++
			if got := dst.GetCell(x, y); got != want {
				t.Errorf("cell (%d, %d) = %q, obstacle drawn over the player", x, y, got.Rune)
			}
		}
	}
	if playerCells == 0 {
		t.Fatal("player not drawn")
	}

	coralCells := 0
	for _, o := range s.spawner.obstacles {
		sprite := core.NewScreen(80, 24)
		artwork.DrawCoral(sprite, s.col(o.X), s.row(o.Y),
			s.span(o.Width, s.cfg.Viewport.CellWidth), s.span(o.Height, s.cfg.Viewport.CellHeight), s.frame)
		for y := 0; y < 24; y++ {
			for x := 0; x < 80; x++ {
				want := sprite.GetCell(x, y)
				if want.Rune == ' ' || isPlayer(background.GetCell(x, y)) {
					continue
				}
				coralCells++
				if got := dst.GetCell(x, y); got != want {
					t.Errorf("cell (%d, %d) = %q, background drawn over the obstacle", x, y, got.Rune)
				}
			}
		}
	}
	if coralCells == 0 {
		t.Fatal("obstacles not drawn")
	}

	// Seabed covers the whole ground row.
	if row := dst.Row(s.row(ground)); strings.Trim(row, "▀") != "" {
		t.Errorf("ground row = %q, want seabed only", row)
	}

	// A mote in the middle of the player is drawn on top of it.
	cx, cy := p.X+p.Width/2, p.Y+p.Height/2
	s.emitter.particles = append(s.emitter.particles, Particle{X: cx, Y: cy, Life: 30, Size: 5, Color: ParticleColor})
	s.Render(dst)
	if got := dst.GetCell(s.col(cx), s.row(cy)); got.Rune != '●' || got.Color != ParticleColor {
		t.Errorf("particle cell = %q color %v, want the particle over the player", got.Rune, got.Color)
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	s := newTestSim(t, nil, Events{})
	s.Start()
	s.Tick()
	s.TogglePause()
	s.Tick()

	dst := core.NewScreen(80, 24)
	s.Render(dst)
	if !strings.Contains(dst.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}
}

func TestRenderUnknownKindPanics(t *testing.T) {
	s := newTestSim(t, nil, Events{})
	defer func() {
		if recover() == nil {
			t.Error("drawing an unknown obstacle kind did not panic")
		}
	}()
	s.drawObstacle(core.NewScreen(10, 10), Obstacle{Kind: ObstacleKind(99), Width: 10, Height: 10})
}

func TestParticleGlyphFades(t *testing.T) {
	if particleGlyph(1, 2) == particleGlyph(0.1, 2) {
		t.Error("particle glyph does not change as it fades")
	}
}
