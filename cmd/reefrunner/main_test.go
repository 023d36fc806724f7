package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/reef-runner/internal/config"
)

func withFlags(t *testing.T, cfgPath, difficulty string) {
	t.Helper()
	oldCfg, oldDiff := flagConfig, flagDifficulty
	flagConfig, flagDifficulty = cfgPath, difficulty
	t.Cleanup(func() { flagConfig, flagDifficulty = oldCfg, oldDiff })
}

func TestLoadRunnerConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	yaml := "physics:\n  max_jump_count: 3\ndifficulty:\n  preset: easy\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		difficulty string
		want       config.DifficultyPreset
		wantErr    bool
	}{
		{"file preset kept", "", config.DifficultyEasy, false},
		{"flag overrides file", "hard", config.DifficultyHard, false},
		{"unknown preset", "nightmare", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t, path, tt.difficulty)

			cfg, err := loadRunnerConfig()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("loadRunnerConfig() failed: %v", err)
			}
			if cfg.Difficulty.Preset != tt.want {
				t.Errorf("preset = %q, want %q", cfg.Difficulty.Preset, tt.want)
			}
			if cfg.Physics.MaxJumpCount != 3 {
				t.Errorf("MaxJumpCount = %d, want 3 from file", cfg.Physics.MaxJumpCount)
			}
		})
	}
}

func TestLoadRunnerConfigMissingFile(t *testing.T) {
	withFlags(t, filepath.Join(t.TempDir(), "nope.yaml"), "")

	if _, err := loadRunnerConfig(); err == nil {
		t.Error("missing --config file should be an error")
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"characters", "play", "scores", "simulate", "serve"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}
