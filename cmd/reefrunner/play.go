package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/reef-runner/internal/audio"
	"github.com/vovakirdan/reef-runner/internal/config"
	"github.com/vovakirdan/reef-runner/internal/core"
	"github.com/vovakirdan/reef-runner/internal/platform/tui"
	"github.com/vovakirdan/reef-runner/internal/registry"
	"github.com/vovakirdan/reef-runner/internal/runner"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [character]",
	Short: "Play Reef Runner",
	Long: `Start a run. Without a character, a menu lets you pick one and
the difficulty; after each run you return to the menu.

Controls:
  Space/Up/W/Click - Jump (press again in the air for a double jump)
  Enter            - Start
  P                - Pause
  R                - New run (after game over)
  Esc/B            - Pause while swimming, back to the menu otherwise
  Ctrl+S           - Save a text screenshot to ~/.reefrunner/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower start, speed rises at half the rate
  normal - Config values as written
  hard   - Faster start, speed rises twice as fast

Examples:
  reefrunner play
  reefrunner play sponge
  reefrunner play starfish --difficulty hard
  reefrunner play squid --config ./my-runner.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, args []string) {
	logger := newLogger("reefrunner")

	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'reefrunner characters' to see who can swim.")
		os.Exit(1)
	}

	runnerCfg, err := loadRunnerConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	sounds := openSounds(logger)
	if sm, ok := sounds.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rt := runtimeConfig(width, height)

	if len(args) == 1 {
		_, err := tui.Run(tui.GameOptions{
			Config:    runnerCfg,
			Runtime:   rt,
			Character: args[0],
			Store:     store,
			Sounds:    sounds,
			Logger:    logger,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runMenuLoop(runnerCfg, rt, store, sounds, logger)
}

// openSounds returns the speaker-backed sound manager, or silence when
// muted or when no audio device is available.
func openSounds(logger *log.Logger) runner.Sounds {
	if flagMute {
		return runner.NopSounds{}
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing without sound", "error", err)
		return runner.NopSounds{}
	}
	return sm
}

// runMenuLoop alternates between the menu, the scoreboard and runs until
// the player quits.
func runMenuLoop(runnerCfg config.RunnerConfig, rt core.RuntimeConfig, store *storage.Store, sounds runner.Sounds, logger *log.Logger) {
	preset := runnerCfg.Difficulty.Preset

	for {
		menuResult, err := tui.RunMenu(store, rt, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		rt = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		if menuResult.CharacterID == "" {
			return
		}

		cfg := runnerCfg
		config.ApplyPreset(&cfg, preset)

		// Fresh seed for each run unless one was pinned on the command line
		if flagSeed == 0 {
			rt.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(tui.GameOptions{
			Config:    cfg,
			Runtime:   rt,
			Character: menuResult.CharacterID,
			Store:     store,
			Sounds:    sounds,
			Logger:    logger,
			AllowBack: true,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
