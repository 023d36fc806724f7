package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/registry"
	"github.com/vovakirdan/reef-runner/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [character]",
	Short: "Show high scores",
	Long: `Display the top high scores for one character, or for all of them
when no character is given, followed by score statistics.

Examples:
  reefrunner scores
  reefrunner scores sponge --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
}

func runScores(_ *cobra.Command, args []string) {
	characterID := ""
	title := "All swimmers"
	if len(args) == 1 {
		characterID = args[0]
		c, err := registry.Lookup(characterID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown character %q\n", characterID)
			fmt.Fprintln(os.Stderr, "Run 'reefrunner characters' to see who can swim.")
			os.Exit(1)
		}
		title = c.Title
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(characterID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'reefrunner play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "Rank", "Score", "Swimmer", "Date")
	fmt.Printf("  %-4s  %-8s  %-10s  %s\n", "----", "-----", "-------", "----")

	for i, entry := range scores {
		name := entry.CharacterID
		if c, err := registry.Lookup(entry.CharacterID); err == nil {
			name = c.Title
		}
		fmt.Printf("  %-4d  %-8d  %-10s  %s\n", i+1, entry.Score, name, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	all, err := store.AllScores(characterID)
	if err != nil {
		return
	}
	sum := storage.Summarize(all)
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d\n", sum.Best, sum.Runs)
	fmt.Printf("Mean: %.1f  StdDev: %.1f  Median: %.0f  P90: %.0f\n", sum.Mean, sum.StdDev, sum.Median, sum.P90)
}
