package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration. It mirrors the
// embedded defaults/runner.yaml and is used when that file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: Physics{
			Gravity:      0.6,
			JumpForce:    -13,
			MaxJumpCount: 2,
			MaxFallSpeed: 40,
			DeathBounce:  -15,
			DeathSpin:    0.2,
			PitchFactor:  0.05,
			MaxPitch:     0.4,
		},
		Progression: Progression{
			InitialSpeed:   6,
			SpeedIncrement: 0.002,
			ScorePerTick:   0.1,
		},
		Player: Player{
			X:      100,
			Width:  50,
			Height: 60,
		},
		World: World{
			GroundOffset:  80,
			HitboxPadding: 10,
			DespawnMargin: 150,
			SpawnOffset:   100,
			DeathDepth:    200,
		},
		Spawner: Spawner{
			BaseGap:     450,
			GapPerSpeed: 12,
			SpawnChance: 0.04,
		},
		Obstacles: []ObstacleSpec{
			{Kind: "jellyfish", Width: 50, Height: 50, YOffset: 50, BobAmplitude: 8},
			{Kind: "anchor", Width: 50, Height: 80},
			{Kind: "coral", Width: 60, Height: 60},
			{Kind: "krabby_patty", Width: 60, Height: 40, BobAmplitude: 4},
		},
		Particles: Particles{
			Count:   8,
			Life:    30,
			Gravity: 0.2,
			SpreadX: 4,
			MinVY:   -0.5,
			MaxVY:   1.5,
			MinSize: 2,
			MaxSize: 5,
		},
		Parallax: Parallax{
			Dunes:   LayerSpec{ScrollRatio: 0.1, Count: 3, Width: 400, MinHeight: 40, MaxHeight: 90},
			Flowers: LayerSpec{ScrollRatio: 0.2, Count: 6, Width: 60, MinHeight: 20, MaxHeight: 50},
		},
		Viewport: Viewport{
			CellWidth:  10,
			CellHeight: 20,
			MinWidth:   200,
			MaxWidth:   10000,
			MinHeight:  200,
			MaxHeight:  4000,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyNormal,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
