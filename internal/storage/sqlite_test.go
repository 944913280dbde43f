package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	// Save some scores
	if _, err := store.SaveScore("bulbs", 100); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("bulbs", 50); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore("bulbs", 200); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Different mode
	if _, err := store.SaveScore("bulbs_timed", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	// Retrieve top scores for classic
	scores, err := store.TopScores("bulbs", 10)
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

	// Retrieve top scores for the timed mode
	timedScores, err := store.TopScores("bulbs_timed", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(timedScores) != 1 {
		t.Errorf("Expected 1 timed score, got %d", len(timedScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	// Save 5 scores
	for i := 0; i < 5; i++ {
		store.SaveScore("bulbs", (i+1)*100)
	}

	// Request only top 3
	scores, err := store.TopScores("bulbs", 3)
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
	store := openTestStore(t)

	// No scores yet
	high, err := store.HighScore("bulbs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty mode, got %d", high)
	}

	// Add scores
	store.SaveScore("bulbs", 100)
	store.SaveScore("bulbs", 300)
	store.SaveScore("bulbs", 200)

	high, err = store.HighScore("bulbs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("bulbs", 100)
	store.SaveScore("bulbs", 200)
	store.SaveScore("bulbs_moves", 300)

	// Clear only classic scores
	if err := store.ClearScores("bulbs"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	// Classic should be empty
	classicScores, _ := store.TopScores("bulbs", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	// Moves mode should still have scores
	movesScores, _ := store.TopScores("bulbs_moves", 10)
	if len(movesScores) != 1 {
		t.Errorf("Moves scores should not be affected by clearing classic")
	}
}

func TestStoreSessions(t *testing.T) {
	store := openTestStore(t)

	sessions := []SessionResult{
		{ModeID: "bulbs_moves", Score: 900, Moves: 30, MaxChain: 4, DurationSecs: 210, EndReason: "out_of_moves"},
		{ModeID: "bulbs_timed", Score: 1200, Moves: 41, MaxChain: 3, DurationSecs: 120, EndReason: "time_up"},
		{ModeID: "bulbs_moves", Score: 450, Moves: 30, MaxChain: 2, DurationSecs: 180, EndReason: "out_of_moves"},
	}
	for _, r := range sessions {
		if _, err := store.SaveSession(r); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	// All modes
	all, err := store.RecentSessions("", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 sessions, got %d", len(all))
	}

	// Filtered by mode
	moves, err := store.RecentSessions("bulbs_moves", 10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(moves) != 2 {
		t.Errorf("Expected 2 moves-mode sessions, got %d", len(moves))
	}
	for _, r := range moves {
		if r.ModeID != "bulbs_moves" {
			t.Errorf("Unexpected mode in filtered result: %s", r.ModeID)
		}
		if r.EndReason != "out_of_moves" {
			t.Errorf("EndReason not persisted: %s", r.EndReason)
		}
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(SessionResult{ModeID: "bulbs", Score: 100, MaxChain: 2, EndReason: "quit"})
	store.SaveSession(SessionResult{ModeID: "bulbs", Score: 300, MaxChain: 5, EndReason: "board_stuck"})
	store.SaveSession(SessionResult{ModeID: "bulbs_timed", Score: 700, MaxChain: 3, EndReason: "time_up"})

	stats, err := store.GetModeStats("bulbs")
	if err != nil {
		t.Fatalf("GetModeStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.BestChain != 5 {
		t.Errorf("BestChain = %d, want 5", stats.BestChain)
	}

	all, err := store.GetAllModeStats()
	if err != nil {
		t.Fatalf("GetAllModeStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected stats for 2 modes, got %d", len(all))
	}
	if all["bulbs_timed"] == nil || all["bulbs_timed"].HighScore != 700 {
		t.Errorf("Timed mode stats missing or wrong: %+v", all["bulbs_timed"])
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
