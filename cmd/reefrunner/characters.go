package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reef-runner/internal/registry"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"list"},
	Short:   "List all playable characters",
	Long:    `Shows every character registered with the runner.`,
	Run:     runCharacters,
}

func runCharacters(_ *cobra.Command, _ []string) {
	characters := registry.List()

	if len(characters) == 0 {
		fmt.Println("No characters available.")
		return
	}

	fmt.Println("Playable characters:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range characters {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	for _, c := range characters {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'reefrunner play <id>' to dive in.")
}
