// reefrunner is an underwater endless runner for the terminal.
//
// Usage:
//
//	reefrunner characters          - List playable characters
//	reefrunner play [character]    - Play (no character: pick one from the menu)
//	reefrunner scores [character]  - Show high scores and score statistics
//	reefrunner simulate            - Run headless autopilot runs
//	reefrunner serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.reefrunner/scores.db)
//	--config <path>       - Use a custom runner.yaml
//	--difficulty <preset> - Override the difficulty preset
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "reefrunner",
	Short: "Reef Runner - an underwater endless runner in your terminal",
	Long: `Reef Runner is an endless side-scroller set on the sea floor.
Swim along the seabed, jump (twice in a row if you must) over jellyfish,
anchors, coral and the odd krabby patty, and see how far you get.

Available commands:
  characters - Show the playable characters
  play       - Play, optionally with a given character
  scores     - View high scores
  simulate   - Headless autopilot runs with optional CSV telemetry
  serve      - Start SSH server for remote play

Examples:
  reefrunner play
  reefrunner play squid --difficulty hard
  reefrunner scores sponge
  reefrunner simulate --runs 20 --telemetry runs.csv
  reefrunner serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reefrunner/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(charactersCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the CLI logger. Warnings go to stderr so they never
// mix with table output on stdout.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadRunnerConfig applies --config and --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// runtimeConfig builds the runtime config for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
