package storage

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("sponge", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("squid", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("sponge", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}
	if scores[0].CharacterID != "sponge" {
		t.Errorf("CharacterID = %q, want sponge", scores[0].CharacterID)
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores(\"\") failed: %v", err)
	}
	if len(all) != 4 || all[0].CharacterID != "squid" {
		t.Errorf("Overall scoreboard = %v", all)
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("sponge", -1); err == nil {
		t.Error("SaveScore() accepted a negative score")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("starfish", (i+1)*100)
	}

	scores, err := store.TopScores("starfish", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("sponge")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 with no runs, got %d", high)
	}

	store.SaveScore("sponge", 100)
	store.SaveScore("sponge", 300)
	store.SaveScore("sponge", 200)
	store.SaveScore("squid", 250)

	tests := []struct {
		character string
		want      int
	}{
		{"sponge", 300},
		{"squid", 250},
		{"starfish", 0},
		{"", 300},
	}
	for _, tt := range tests {
		high, err := store.HighScore(tt.character)
		if err != nil {
			t.Fatalf("HighScore(%q) failed: %v", tt.character, err)
		}
		if high != tt.want {
			t.Errorf("HighScore(%q) = %d, want %d", tt.character, high, tt.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sponge", 100)
	store.SaveScore("sponge", 200)
	store.SaveScore("squid", 300)

	if err := store.ClearScores("sponge"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	sponge, _ := store.TopScores("sponge", 10)
	if len(sponge) != 0 {
		t.Errorf("Expected 0 sponge scores after clear, got %d", len(sponge))
	}
	squid, _ := store.TopScores("squid", 10)
	if len(squid) != 1 {
		t.Errorf("Squid scores should not be affected by clearing sponge")
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("sponge", i*10)
	}

	scores, err := store.AllScores("sponge")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreCharacterStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("sponge", 10)
	store.SaveScore("sponge", 30)
	store.SaveScore("squid", 7)

	stats, err := store.GetCharacterStats("sponge")
	if err != nil {
		t.Fatalf("GetCharacterStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 30 || stats.TotalScore != 40 {
		t.Errorf("stats = %+v", stats)
	}
	if math.Abs(stats.AvgScore-20) > 1e-9 {
		t.Errorf("AvgScore = %v, want 20", stats.AvgScore)
	}

	empty, err := store.GetCharacterStats("starfish")
	if err != nil {
		t.Fatalf("GetCharacterStats() for unplayed character failed: %v", err)
	}
	if empty.RunsCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("stats for unplayed character = %+v", empty)
	}

	all, err := store.GetAllCharacterStats()
	if err != nil {
		t.Fatalf("GetAllCharacterStats() failed: %v", err)
	}
	if len(all) != 2 || all["squid"].HighScore != 7 {
		t.Errorf("all stats = %v", all)
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSummarize(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, want zero", got)
	}

	var entries []ScoreEntry
	for i := 10; i >= 1; i-- {
		entries = append(entries, ScoreEntry{Score: i * 10})
	}
	sum := Summarize(entries)

	if sum.Runs != 10 || sum.Best != 100 {
		t.Errorf("Runs = %d, Best = %d", sum.Runs, sum.Best)
	}
	if math.Abs(sum.Mean-55) > 1e-9 {
		t.Errorf("Mean = %v, want 55", sum.Mean)
	}
	if sum.Median != 50 || sum.P90 != 90 {
		t.Errorf("Median = %v, P90 = %v, want 50, 90", sum.Median, sum.P90)
	}
	if sum.StdDev <= 0 {
		t.Errorf("StdDev = %v, want positive", sum.StdDev)
	}

	one := Summarize([]ScoreEntry{{Score: 42}})
	if one.StdDev != 0 || one.Median != 42 {
		t.Errorf("single run summary = %+v", one)
	}
}
