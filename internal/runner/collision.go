package runner

import "github.com/vovakirdan/reef-runner/internal/core"

// Collides is the padded AABB test. Both boxes are shrunk by the same
// padding, so silhouettes may overlap slightly before a hit registers.
// The padding is a tunable fairness margin, not a precise hitbox.
func Collides(a, b core.Box, padding float64) bool {
	return a.Inset(padding).Intersects(b.Inset(padding))
}

// FirstHit returns the index of the first obstacle the box collides with.
func FirstHit(box core.Box, obstacles []Obstacle, padding float64) (int, bool) {
	for i, o := range obstacles {
		if Collides(box, o.Box(), padding) {
			return i, true
		}
	}
	return -1, false
}
