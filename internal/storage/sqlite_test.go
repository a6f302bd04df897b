package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some scores
	_, err = store.SaveScore("play", 100, 30*time.Second)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("play", 50, 10*time.Second)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	_, err = store.SaveScore("play", 200, 90*time.Second)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different state
	_, err = store.SaveScore("bonus", 500, time.Minute)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for play
	scores, err := store.TopScores("play", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	// Duration should round-trip in whole seconds
	if scores[0].DurationSecs != 90 {
		t.Errorf("Expected duration 90s, got %d", scores[0].DurationSecs)
	}

	// Retrieve top scores for the other state
	bonusScores, err := store.TopScores("bonus", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(bonusScores) != 1 {
		t.Errorf("Expected 1 bonus score, got %d", len(bonusScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("play", (i+1)*100, time.Second)
	}

	// Request only top 3
	scores, err := store.TopScores("play", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No scores yet
	high, err := store.HighScore("play")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty state, got %d", high)
	}

	// Add scores
	store.SaveScore("play", 100, time.Second)
	store.SaveScore("play", 300, time.Second)
	store.SaveScore("play", 200, time.Second)

	high, err = store.HighScore("play")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("play", 100, time.Second)
	store.SaveScore("play", 200, time.Second)
	store.SaveScore("bonus", 300, time.Second)

	// Clear only play scores
	err = store.ClearScores("play")
	if err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Play should be empty
	playScores, _ := store.TopScores("play", 10)
	if len(playScores) != 0 {
		t.Errorf("Expected 0 play scores after clear, got %d", len(playScores))
	}

	// The other state should still have scores
	bonusScores, _ := store.TopScores("bonus", 10)
	if len(bonusScores) != 1 {
		t.Errorf("Bonus scores should not be affected by clearing play")
	}
}

func TestStoreAllScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Add many scores
	for i := 0; i < 20; i++ {
		store.SaveScore("play", i*10, time.Second)
	}

	scores, err := store.AllScores("play")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}

	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}
}

func TestStoreStateStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("play", 100, time.Second)
	store.SaveScore("play", 300, time.Second)

	stats, err := store.GetStateStats("play")
	if err != nil {
		t.Fatalf("GetStateStats() failed: %v", err)
	}

	if stats.Sessions != 2 {
		t.Errorf("Expected 2 sessions, got %d", stats.Sessions)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("Expected average 200, got %f", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total 400, got %d", stats.TotalScore)
	}

	// Stats for a state with no sessions should be all zero
	empty, err := store.GetStateStats("bonus")
	if err != nil {
		t.Fatalf("GetStateStats() for empty state failed: %v", err)
	}
	if empty.Sessions != 0 || empty.HighScore != 0 {
		t.Errorf("Expected zeroed stats for empty state, got %+v", empty)
	}
}

func TestStoreGetAllStats(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("play", 100, time.Second)
	store.SaveScore("bonus", 50, time.Second)

	stats, err := store.GetAllStats()
	if err != nil {
		t.Fatalf("GetAllStats() failed: %v", err)
	}

	if len(stats) != 2 {
		t.Errorf("Expected stats for 2 states, got %d", len(stats))
	}
	if stats["play"] == nil || stats["play"].HighScore != 100 {
		t.Errorf("Unexpected play stats: %+v", stats["play"])
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
