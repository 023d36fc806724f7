package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. An empty string means
// "keep whatever the config file says".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScale returns the multipliers applied to the initial speed and the
// per-tick speed increment.
func presetScale(preset DifficultyPreset) (speed, increment float64) {
	switch preset {
	case DifficultyEasy:
		return 0.8, 0.5
	case DifficultyHard:
		return 1.3, 2.0
	default:
		return 1.0, 1.0
	}
}

// Scaled returns the progression after applying the configured preset.
// Both values stay positive so speed keeps rising on every preset.
func (c RunnerConfig) Scaled() Progression {
	speed, inc := presetScale(c.Difficulty.Preset)
	p := c.Progression
	p.InitialSpeed *= speed
	p.SpeedIncrement *= inc
	return p
}

// ApplyPreset overrides the configured preset. An empty preset is ignored.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset
}
