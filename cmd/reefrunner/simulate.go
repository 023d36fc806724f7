package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/platform/tui"
	"github.com/vovakirdan/reef-runner/internal/registry"
	"github.com/vovakirdan/reef-runner/internal/runner"
	"github.com/vovakirdan/reef-runner/internal/storage"
	"github.com/vovakirdan/reef-runner/internal/telemetry"
)

var (
	flagSimRuns      int
	flagSimFrames    int
	flagSimCharacter string
	flagSimTelemetry string
	flagSimRealtime  bool
	flagSimSave      bool
	flagSimLead      float64
	flagSimWidth     int
	flagSimHeight    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless autopilot runs",
	Long: `Play runs without a UI, steered by a simple autopilot that jumps over
anything it would otherwise swim into. Runs are deterministic for a given
--seed, so this is handy for tuning a config file.

With --realtime a single run is played at --fps and drawn to the terminal.

Examples:
  reefrunner simulate --seed 42
  reefrunner simulate --runs 50 --telemetry ./runs.csv --difficulty hard
  reefrunner simulate --realtime --character squid`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 10, "Number of runs")
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 36000, "Frame cap per run (0 = until game over)")
	simulateCmd.Flags().StringVar(&flagSimCharacter, "character", "sponge", "Character to play")
	simulateCmd.Flags().StringVar(&flagSimTelemetry, "telemetry", "", "Write one CSV row per run to this path")
	simulateCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Play one run in real time and draw it")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished runs in the scores database")
	simulateCmd.Flags().Float64Var(&flagSimLead, "lead", runner.DefaultAutopilot().Lead, "Autopilot lookahead in ticks")
	simulateCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Viewport width in cells")
	simulateCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Viewport height in cells")
}

func runSimulate(_ *cobra.Command, _ []string) {
	logger := newLogger("reefrunner-sim")

	if !registry.Exists(flagSimCharacter) {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", flagSimCharacter)
		os.Exit(1)
	}

	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := runtimeConfig(flagSimWidth, flagSimHeight)
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	sim, err := runner.New(runner.Options{
		Config:    runnerCfg,
		Runtime:   rt,
		Character: flagSimCharacter,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	pilot := runner.Autopilot{Lead: flagSimLead}

	if flagSimRealtime {
		sum := watchRun(sim, pilot, rt.TickRate)
		fmt.Printf("score %d  frames %d  jumps %d  passed %d  hit by %s\n",
			sum.Score, sum.Frames, sum.Jumps, sum.Passed, orNone(sum.HitBy))
		return
	}

	tw, err := telemetry.Create(flagSimTelemetry)
	if err != nil {
		logger.Warn("telemetry disabled", "error", err)
		tw = nil
	}
	defer func() {
		if err := tw.Close(); err != nil {
			logger.Warn("could not close telemetry file", "error", err)
		}
	}()

	var store *storage.Store
	if flagSimSave {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database, runs will not be saved", "error", err)
			store = nil
		}
		defer func() {
			if store != nil {
				store.Close()
			}
		}()
	}

	preset := string(runnerCfg.Difficulty.Preset)
	entries := make([]storage.ScoreEntry, 0, flagSimRuns)

	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-6s  %s\n", "Run", "Score", "Frames", "Jumps", "Passed", "Hit by")
	for i := 1; i <= flagSimRuns; i++ {
		sum := pilot.Play(sim, flagSimFrames)
		fmt.Printf("  %-4d  %-8d  %-7d  %-6d  %-6d  %s\n", i, sum.Score, sum.Frames, sum.Jumps, sum.Passed, orNone(sum.HitBy))
		logger.Debug("run finished", "run", i, "seed", sum.Seed, "speed", sum.Speed, "distance", sum.Distance)

		entries = append(entries, storage.ScoreEntry{CharacterID: sum.Character, Score: sum.Score})

		if err := tw.Write(telemetry.NewRunRecord(i, preset, sum)); err != nil {
			logger.Warn("could not write telemetry", "run", i, "error", err)
		}
		if store != nil && sum.Score > 0 {
			if _, err := store.SaveScore(sum.Character, sum.Score); err != nil {
				logger.Warn("could not save score", "run", i, "error", err)
			}
		}
	}

	stats := storage.Summarize(entries)
	fmt.Println()
	fmt.Printf("Best: %d  Mean: %.1f  StdDev: %.1f  Median: %.0f  P90: %.0f\n",
		stats.Best, stats.Mean, stats.StdDev, stats.Median, stats.P90)
}

// watchRun plays one autopilot run on the ticker-driven loop and draws each
// frame to the terminal until the run ends or the user interrupts.
func watchRun(sim *runner.Sim, pilot runner.Autopilot, tickRate int) runner.Summary {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	screen := core.NewScreen(width, height-1)
	sim.Resize(width, height-1)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	over := make(chan struct{})
	loop, cancel := runner.Start(ctx, sim, tickRate, func(s *runner.Sim) {
		if s.Halted() {
			select {
			case <-over:
			default:
				close(over)
			}
			return
		}
		if pilot.Decide(s) {
			s.Jump()
		}
		s.Render(screen)
		fmt.Print("\x1b[H" + tui.RenderScreen(screen))
	})
	loop.Post(func(s *runner.Sim) { s.Start() })

	fmt.Print("\x1b[2J\x1b[?25l") // Clear, hide cursor
	defer fmt.Print("\x1b[?25h\n")

	select {
	case <-over:
	case <-ctx.Done():
	}
	cancel()

	return sim.Summary()
}

func orNone(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
