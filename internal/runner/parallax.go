package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/reef-runner/internal/config"
)

// ElementKind identifies the artwork of a parallax element.
type ElementKind int

const (
	Dune ElementKind = iota
	Flower
)

// Element is one long-lived background decoration.
type Element struct {
	Kind          ElementKind
	X, Y          float64 // Top-left corner; Y+Height is the ground line
	Width, Height float64
}

// Layer is a family of elements scrolling at a fraction of the run speed.
// Elements that leave the left edge re-enter on the right, so the
// element count never changes.
type Layer struct {
	Kind        ElementKind
	ScrollRatio float64
	Span        float64 // Width the elements are spread over; grows with the viewport
	Elements    []Element
}

// newLayer lays the elements out evenly across a span at least one
// element wider than the viewport, so the wrap is never visible.
func newLayer(kind ElementKind, spec config.LayerSpec, viewportW, groundY float64, rng *rand.Rand) Layer {
	count := spec.Count
	if count < 1 || spec.Width <= 0 {
		return Layer{Kind: kind, ScrollRatio: spec.ScrollRatio}
	}
	span := math.Max(float64(count)*spec.Width, viewportW+spec.Width)
	step := span / float64(count)

	l := Layer{
		Kind:        kind,
		ScrollRatio: spec.ScrollRatio,
		Span:        span,
		Elements:    make([]Element, count),
	}
	for i := range l.Elements {
		h := spec.MinHeight + rng.Float64()*(spec.MaxHeight-spec.MinHeight)
		l.Elements[i] = Element{
			Kind:   kind,
			X:      float64(i) * step,
			Y:      groundY - h,
			Width:  spec.Width,
			Height: h,
		}
	}
	return l
}

// Scroll advances the layer for the given run speed. viewportW is the
// current viewport width: after it grows, the span widens and wrapped
// elements re-enter spaced for the new span. Elements that do not wrap
// keep their positions.
func (l *Layer) Scroll(speed, viewportW float64) {
	if len(l.Elements) == 0 {
		return
	}
	l.Span = math.Max(l.Span, viewportW+l.Elements[0].Width)
	step := l.Span / float64(len(l.Elements))

	dx := speed * l.ScrollRatio
	for i := range l.Elements {
		l.Elements[i].X -= dx
	}
	for i := range l.Elements {
		e := &l.Elements[i]
		if e.X+e.Width >= 0 {
			continue
		}
		// Re-enter one step behind the rightmost element, never inside
		// the visible area.
		x := viewportW - math.Min(dx, e.Width)
		if r, ok := l.rightmost(i); ok {
			x = math.Max(x, r+step)
		}
		e.X = x
	}
}

// rightmost returns the largest X among the elements other than skip.
func (l *Layer) rightmost(skip int) (float64, bool) {
	found := false
	best := 0.0
	for i, e := range l.Elements {
		if i == skip {
			continue
		}
		if !found || e.X > best {
			best = e.X
			found = true
		}
	}
	return best, found
}

// Scene is the parallax compositor: distant dunes behind nearer flowers.
type Scene struct {
	Dunes   Layer
	Flowers Layer
}

// NewScene lays out both layers for the given viewport.
func NewScene(seed int64, cfg config.Parallax, viewportW, groundY float64) Scene {
	rng := rand.New(rand.NewSource(seed))
	return Scene{
		Dunes:   newLayer(Dune, cfg.Dunes, viewportW, groundY, rng),
		Flowers: newLayer(Flower, cfg.Flowers, viewportW, groundY, rng),
	}
}

// Update scrolls both layers across the current viewport width.
func (s *Scene) Update(speed, viewportW float64) {
	s.Dunes.Scroll(speed, viewportW)
	s.Flowers.Scroll(speed, viewportW)
}

// Layers returns the layers back-to-front.
func (s *Scene) Layers() []*Layer {
	return []*Layer{&s.Dunes, &s.Flowers}
}
