// Package config provides YAML-based configuration loading and difficulty
// presets for the runner simulation.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables of the runner simulation.
type RunnerConfig struct {
	Physics     Physics          `yaml:"physics"`
	Progression Progression      `yaml:"progression"`
	Player      Player           `yaml:"player"`
	World       World            `yaml:"world"`
	Spawner     Spawner          `yaml:"spawner"`
	Obstacles   []ObstacleSpec   `yaml:"obstacles"`
	Particles   Particles        `yaml:"particles"`
	Parallax    Parallax         `yaml:"parallax"`
	Viewport    Viewport         `yaml:"viewport"`
	Difficulty  DifficultyConfig `yaml:"difficulty"`
}

// Physics defines player kinematics. Velocities are world units per tick,
// positive y pointing down.
type Physics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpForce    float64 `yaml:"jump_force"`
	MaxJumpCount int     `yaml:"max_jump_count"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	DeathBounce  float64 `yaml:"death_bounce"`
	DeathSpin    float64 `yaml:"death_spin"`  // Rotation added per tick while dying
	PitchFactor  float64 `yaml:"pitch_factor"` // Rotation per unit of vertical speed
	MaxPitch     float64 `yaml:"max_pitch"`
}

// Progression defines how speed and score grow per tick.
type Progression struct {
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	ScorePerTick   float64 `yaml:"score_per_tick"`
}

// Player defines the player's fixed horizontal position and size.
type Player struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// World defines the ground line and the margins around the viewport.
type World struct {
	GroundOffset  float64 `yaml:"ground_offset"`  // Distance from viewport bottom to ground line
	HitboxPadding float64 `yaml:"hitbox_padding"` // Fairness margin applied to every hitbox
	DespawnMargin float64 `yaml:"despawn_margin"` // Obstacles are dropped once fully past -margin
	SpawnOffset   float64 `yaml:"spawn_offset"`   // New obstacles appear this far past the right edge
	DeathDepth    float64 `yaml:"death_depth"`    // Dying ends this far below the viewport
}

// Spawner defines the gap policy and spawn probability.
type Spawner struct {
	BaseGap     float64 `yaml:"base_gap"`
	GapPerSpeed float64 `yaml:"gap_per_speed"`
	SpawnChance float64 `yaml:"spawn_chance"`
}

// ObstacleSpec describes one row of the obstacle kind table.
type ObstacleSpec struct {
	Kind         string  `yaml:"kind"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	YOffset      float64 `yaml:"y_offset"`      // Height of the obstacle's bottom above the ground
	BobAmplitude float64 `yaml:"bob_amplitude"` // Visual vertical oscillation
}

// Particles defines the jump dust burst.
type Particles struct {
	Count   int     `yaml:"count"`
	Life    int     `yaml:"life"`
	Gravity float64 `yaml:"gravity"`
	SpreadX float64 `yaml:"spread_x"` // vx is uniform in [-spread_x/2, spread_x/2]
	MinVY   float64 `yaml:"min_vy"`
	MaxVY   float64 `yaml:"max_vy"`
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
}

// Parallax defines the two background layer families.
type Parallax struct {
	Dunes   LayerSpec `yaml:"dunes"`
	Flowers LayerSpec `yaml:"flowers"`
}

// LayerSpec describes one parallax layer.
type LayerSpec struct {
	ScrollRatio float64 `yaml:"scroll_ratio"`
	Count       int     `yaml:"count"`
	Width       float64 `yaml:"width"`
	MinHeight   float64 `yaml:"min_height"`
	MaxHeight   float64 `yaml:"max_height"`
}

// Viewport defines how world units map onto terminal cells.
type Viewport struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	MinWidth   float64 `yaml:"min_width"`
	MaxWidth   float64 `yaml:"max_width"`
	MinHeight  float64 `yaml:"min_height"`
	MaxHeight  float64 `yaml:"max_height"`
}

// DifficultyConfig selects how the progression is scaled.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// Validate reports configuration values the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, errors.New("physics.gravity must be positive"))
	}
	if c.Physics.JumpForce >= 0 {
		errs = append(errs, errors.New("physics.jump_force must be negative (upwards)"))
	}
	if c.Physics.MaxJumpCount < 1 {
		errs = append(errs, errors.New("physics.max_jump_count must be at least 1"))
	}
	if c.Physics.MaxFallSpeed <= 0 {
		errs = append(errs, errors.New("physics.max_fall_speed must be positive"))
	}
	if c.Progression.InitialSpeed <= 0 {
		errs = append(errs, errors.New("progression.initial_speed must be positive"))
	}
	if c.Progression.SpeedIncrement <= 0 {
		errs = append(errs, errors.New("progression.speed_increment must be positive"))
	}
	if c.World.HitboxPadding < 0 {
		errs = append(errs, errors.New("world.hitbox_padding must not be negative"))
	}
	// A hitbox padded down to nothing can never be hit.
	minSize := 2 * c.World.HitboxPadding
	if c.Player.Width <= minSize || c.Player.Height <= minSize {
		errs = append(errs, fmt.Errorf("player width and height must exceed twice world.hitbox_padding (%g)", minSize))
	}
	if c.Spawner.SpawnChance < 0 || c.Spawner.SpawnChance > 1 {
		errs = append(errs, errors.New("spawner.spawn_chance must be within [0, 1]"))
	}
	if len(c.Obstacles) == 0 {
		errs = append(errs, errors.New("obstacles: kind table is empty"))
	}
	for i, o := range c.Obstacles {
		if o.Width <= minSize || o.Height <= minSize {
			errs = append(errs, fmt.Errorf("obstacles[%d] (%s): width and height must exceed twice world.hitbox_padding (%g)", i, o.Kind, minSize))
		}
	}
	if c.Particles.Life <= 0 {
		errs = append(errs, errors.New("particles.life must be positive"))
	}
	if c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0 {
		errs = append(errs, errors.New("viewport cell size must be positive"))
	}
	if c.Viewport.MinWidth > c.Viewport.MaxWidth || c.Viewport.MinHeight > c.Viewport.MaxHeight {
		errs = append(errs, errors.New("viewport min bounds exceed max bounds"))
	}

	return errors.Join(errs...)
}
