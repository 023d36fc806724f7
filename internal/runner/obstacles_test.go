package runner

import (
	"testing"

	"github.com/vovakirdan/reef-runner/internal/config"
)

func testKinds(t *testing.T) []KindSpec {
	t.Helper()
	kinds, err := kindTable(config.DefaultRunnerConfig().Obstacles)
	if err != nil {
		t.Fatalf("kindTable() failed: %v", err)
	}
	return kinds
}

func TestParseObstacleKind(t *testing.T) {
	for _, k := range []ObstacleKind{Jellyfish, Anchor, Coral, KrabbyPatty} {
		got, err := ParseObstacleKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseObstacleKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseObstacleKind("shark"); err == nil {
		t.Error("ParseObstacleKind(shark) should fail")
	}
}

func TestKindTableEmpty(t *testing.T) {
	if _, err := kindTable(nil); err == nil {
		t.Error("kindTable(nil) should fail")
	}
}

func TestMinGap(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	sp := NewSpawner(1, testKinds(t), cfg.Spawner, cfg.World)

	if got := sp.MinGap(9); got != 558 {
		t.Errorf("MinGap(9) = %v, want 558", got)
	}
	if got := sp.MinGap(6); got != 522 {
		t.Errorf("MinGap(6) = %v, want 522", got)
	}
}

// The gap policy must hold no matter how the Bernoulli trial comes out.
func TestSpawnGapInvariant(t *testing.T) {
	const (
		speed     = 9.0
		viewportW = 800.0
		groundY   = 400.0
		minGap    = 558.0
	)

	for _, chance := range []float64{1, 0.04} {
		cfg := config.DefaultRunnerConfig()
		cfg.Spawner.SpawnChance = chance

		for seed := int64(1); seed <= 5; seed++ {
			sp := NewSpawner(seed, testKinds(t), cfg.Spawner, cfg.World)
			for tick := 0; tick < 2000; tick++ {
				_, spawned := sp.Update(speed, viewportW, groundY, 100)
				obs := sp.Obstacles()

				if spawned && len(obs) >= 2 {
					prev := obs[len(obs)-2]
					if viewportW-prev.X <= minGap {
						t.Fatalf("chance %v seed %d tick %d: spawned with gap %v <= %v",
							chance, seed, tick, viewportW-prev.X, minGap)
					}
				}
				if chance == 1 && !spawned {
					last, ok := sp.Last()
					if !ok || viewportW-last.X > minGap {
						t.Fatalf("seed %d tick %d: eligible but nothing spawned", seed, tick)
					}
				}
			}
		}
	}
}

func TestSpawnPlacement(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.SpawnChance = 1
	sp := NewSpawner(3, testKinds(t), cfg.Spawner, cfg.World)

	o, ok := sp.Update(6, 800, 400, 100)
	if !ok {
		t.Fatal("first eligible tick with chance 1 did not spawn")
	}
	if o.X != 900 {
		t.Errorf("spawn x = %v, want 900", o.X)
	}

	var spec KindSpec
	for _, k := range testKinds(t) {
		if k.Kind == o.Kind {
			spec = k
		}
	}
	if o.Width != spec.Width || o.Height != spec.Height {
		t.Errorf("%s size = %vx%v, want %vx%v", o.Kind, o.Width, o.Height, spec.Width, spec.Height)
	}
	if want := 400 - spec.Height - spec.YOffset; o.Y != want {
		t.Errorf("%s y = %v, want %v", o.Kind, o.Y, want)
	}
}

func TestSpawnerMovesPassesAndRemoves(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawner.SpawnChance = 0
	sp := NewSpawner(1, testKinds(t), cfg.Spawner, cfg.World)
	sp.obstacles = []Obstacle{
		{Kind: Coral, X: 40, Width: 60, Height: 60},
		{Kind: Anchor, X: -205, Width: 50, Height: 80},
		{Kind: Coral, X: 500, Width: 60, Height: 60},
	}

	sp.Update(10, 800, 400, 100)
	obs := sp.Obstacles()

	if len(obs) != 2 {
		t.Fatalf("obstacles = %d, want 2 (anchor past the despawn margin)", len(obs))
	}
	if obs[0].X != 30 || obs[1].X != 490 {
		t.Errorf("positions = %v, %v, want 30, 490", obs[0].X, obs[1].X)
	}
	if !obs[0].Passed || obs[1].Passed {
		t.Errorf("passed = %v, %v, want true, false", obs[0].Passed, obs[1].Passed)
	}
	if sp.Passed() != 2 {
		t.Errorf("Passed() = %d, want 2", sp.Passed())
	}

	sp.Update(10, 800, 400, 100)
	if sp.Passed() != 2 {
		t.Errorf("obstacle counted twice, Passed() = %d", sp.Passed())
	}
}

func TestBobOffsetVisualOnly(t *testing.T) {
	o := Obstacle{Kind: Jellyfish, X: 10, Y: 20, Width: 50, Height: 50, BobAmplitude: 8}
	box := o.Box()

	seen := false
	for frame := 0; frame < 100; frame++ {
		off := o.BobOffset(frame)
		if off < -8 || off > 8 {
			t.Fatalf("frame %d: offset %v outside amplitude", frame, off)
		}
		if off != 0 {
			seen = true
		}
	}
	if !seen {
		t.Error("jellyfish never bobbed")
	}
	if o.Box() != box {
		t.Error("bobbing moved the hitbox")
	}
	if (Obstacle{Kind: Coral}).BobOffset(17) != 0 {
		t.Error("coral should not bob")
	}
}
