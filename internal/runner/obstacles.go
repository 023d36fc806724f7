package runner

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

// ObstacleKind is the closed set of obstacle types.
type ObstacleKind int

const (
	Jellyfish ObstacleKind = iota
	Anchor
	Coral
	KrabbyPatty
)

// String returns the config name of the kind.
func (k ObstacleKind) String() string {
	switch k {
	case Jellyfish:
		return "jellyfish"
	case Anchor:
		return "anchor"
	case Coral:
		return "coral"
	case KrabbyPatty:
		return "krabby_patty"
	default:
		return fmt.Sprintf("ObstacleKind(%d)", int(k))
	}
}

// ParseObstacleKind converts a config name to a kind.
func ParseObstacleKind(s string) (ObstacleKind, error) {
	switch s {
	case "jellyfish":
		return Jellyfish, nil
	case "anchor":
		return Anchor, nil
	case "coral":
		return Coral, nil
	case "krabby_patty":
		return KrabbyPatty, nil
	default:
		return 0, fmt.Errorf("runner: unknown obstacle kind %q", s)
	}
}

// KindSpec is one resolved row of the obstacle kind table.
type KindSpec struct {
	Kind         ObstacleKind
	Width        float64
	Height       float64
	YOffset      float64
	BobAmplitude float64
}

// kindTable resolves the configured kind table.
func kindTable(specs []config.ObstacleSpec) ([]KindSpec, error) {
	table := make([]KindSpec, 0, len(specs))
	for _, s := range specs {
		kind, err := ParseObstacleKind(s.Kind)
		if err != nil {
			return nil, err
		}
		table = append(table, KindSpec{
			Kind:         kind,
			Width:        s.Width,
			Height:       s.Height,
			YOffset:      s.YOffset,
			BobAmplitude: s.BobAmplitude,
		})
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("runner: obstacle kind table is empty")
	}
	return table, nil
}

// Obstacle is a live obstacle scrolling towards the player.
type Obstacle struct {
	Kind          ObstacleKind
	X, Y          float64
	Width, Height float64
	BobPhase      float64 // Random per instance, desynchronizes the bob animation
	BobAmplitude  float64
	Passed        bool // Set once the obstacle is fully behind the player
}

// Box returns the obstacle's visual bounds in world units.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// BobOffset returns the vertical draw offset at the given frame.
// Bobbing is cosmetic: the hitbox stays at Y.
func (o Obstacle) BobOffset(frame int) float64 {
	if o.BobAmplitude == 0 {
		return 0
	}
	return math.Sin(float64(frame)*0.1+o.BobPhase) * o.BobAmplitude
}

// Spawner handles spawning, movement, and removal of obstacles.
type Spawner struct {
	obstacles []Obstacle
	kinds     []KindSpec
	rng       *rand.Rand
	cfg       config.Spawner
	world     config.World
	spawned   int
	passed    int
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, kinds []KindSpec, cfg config.Spawner, world config.World) *Spawner {
	return &Spawner{
		obstacles: make([]Obstacle, 0, 8),
		kinds:     kinds,
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
		world:     world,
	}
}

// MinGap returns the minimum distance between the right edge of the
// viewport and the last obstacle before another may spawn.
func (sp *Spawner) MinGap(speed float64) float64 {
	return sp.cfg.BaseGap + speed*sp.cfg.GapPerSpeed
}

// Update moves obstacles left, drops the ones far off-screen, marks the
// ones the player has cleared and possibly spawns a new one.
// It returns the spawned obstacle, if any.
func (sp *Spawner) Update(speed, viewportW, groundY, playerX float64) (Obstacle, bool) {
	for i := range sp.obstacles {
		o := &sp.obstacles[i]
		o.X -= speed
		if !o.Passed && o.X+o.Width < playerX {
			o.Passed = true
			sp.passed++
		}
	}

	// Remove obstacles that have moved well past the left edge
	valid := sp.obstacles[:0]
	for _, o := range sp.obstacles {
		if o.X+o.Width >= -sp.world.DespawnMargin {
			valid = append(valid, o)
		}
	}
	sp.obstacles = valid

	if !sp.Eligible(speed, viewportW) {
		return Obstacle{}, false
	}
	if sp.rng.Float64() >= sp.cfg.SpawnChance {
		return Obstacle{}, false
	}
	return sp.spawn(viewportW, groundY), true
}

// Eligible reports whether the gap policy allows a spawn this tick.
func (sp *Spawner) Eligible(speed, viewportW float64) bool {
	last, ok := sp.Last()
	if !ok {
		return true
	}
	return viewportW-last.X > sp.MinGap(speed)
}

// spawn appends an obstacle of a uniformly chosen kind past the right edge.
func (sp *Spawner) spawn(viewportW, groundY float64) Obstacle {
	k := sp.kinds[sp.rng.Intn(len(sp.kinds))]
	o := Obstacle{
		Kind:         k.Kind,
		X:            viewportW + sp.world.SpawnOffset,
		Y:            groundY - k.Height - k.YOffset,
		Width:        k.Width,
		Height:       k.Height,
		BobPhase:     sp.rng.Float64() * 2 * math.Pi,
		BobAmplitude: k.BobAmplitude,
	}
	sp.obstacles = append(sp.obstacles, o)
	sp.spawned++
	return o
}

// Last returns the most recently spawned obstacle still alive.
func (sp *Spawner) Last() (Obstacle, bool) {
	if len(sp.obstacles) == 0 {
		return Obstacle{}, false
	}
	return sp.obstacles[len(sp.obstacles)-1], true
}

// Obstacles returns the live obstacles in spawn order.
func (sp *Spawner) Obstacles() []Obstacle {
	return sp.obstacles
}

// Spawned returns the number of obstacles spawned this run.
func (sp *Spawner) Spawned() int {
	return sp.spawned
}

// Passed returns the number of obstacles the player has cleared this run.
func (sp *Spawner) Passed() int {
	return sp.passed
}
