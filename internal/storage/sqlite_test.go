package storage

import (
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

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(RunRecord{Player: "santa", LevelReached: 2, Cleared: 1}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Player != "santa" {
		t.Errorf("expected the saved run after reopening, got %+v", runs)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	in := RunRecord{Player: "santa", LevelReached: 4, Cleared: 3, Deaths: 2, Frames: 3600, Completed: true}
	id, err := store.SaveRun(in)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected a positive ID, got %d", id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != id || got.Player != in.Player || got.LevelReached != in.LevelReached ||
		got.Cleared != in.Cleared || got.Deaths != in.Deaths || got.Frames != in.Frames || !got.Completed {
		t.Errorf("round trip mismatch: got %+v, saved %+v", got, in)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}
}

func TestStoreTopRunsRanking(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Player: "quit early", LevelReached: 1, Cleared: 0, Deaths: 0, Frames: 100},
		{Player: "slow finish", LevelReached: 4, Cleared: 3, Deaths: 1, Frames: 9000, Completed: true},
		{Player: "two levels", LevelReached: 3, Cleared: 2, Deaths: 0, Frames: 2000},
		{Player: "clean finish", LevelReached: 4, Cleared: 3, Deaths: 0, Frames: 5000, Completed: true},
		{Player: "fast finish", LevelReached: 4, Cleared: 3, Deaths: 1, Frames: 4000, Completed: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	expected := []string{"clean finish", "fast finish", "slow finish", "two levels", "quit early"}
	if len(top) != len(expected) {
		t.Fatalf("expected %d runs, got %d", len(expected), len(top))
	}
	for i, name := range expected {
		if top[i].Player != name {
			t.Errorf("rank %d = %q, expected %q", i+1, top[i].Player, name)
		}
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{LevelReached: 1, Cleared: i})
	}

	top, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 runs with limit, got %d", len(top))
	}
	if top[0].Cleared != 4 || top[1].Cleared != 3 || top[2].Cleared != 2 {
		t.Errorf("runs not in expected order: %+v", top)
	}
}

func TestStoreRecentRunsOrder(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		store.SaveRun(RunRecord{LevelReached: i})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].LevelReached != 3 || recent[1].LevelReached != 2 {
		t.Errorf("expected newest first, got %+v", recent)
	}
}

func TestStoreBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best != nil {
		t.Errorf("expected no best run on empty history, got %+v", best)
	}

	store.SaveRun(RunRecord{Player: "a", LevelReached: 2, Cleared: 1})
	store.SaveRun(RunRecord{Player: "b", LevelReached: 3, Cleared: 2})

	best, err = store.BestRun()
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Player != "b" {
		t.Errorf("expected b as best run, got %+v", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 0 || stats.Completions != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunRecord{LevelReached: 4, Cleared: 3, Deaths: 5, Frames: 100, Completed: true})
	store.SaveRun(RunRecord{LevelReached: 4, Cleared: 3, Deaths: 2, Frames: 200, Completed: true})
	store.SaveRun(RunRecord{LevelReached: 2, Cleared: 1, Deaths: 0, Frames: 300})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 {
		t.Errorf("Runs = %d, expected 3", stats.Runs)
	}
	if stats.Completions != 2 {
		t.Errorf("Completions = %d, expected 2", stats.Completions)
	}
	if stats.BestCleared != 3 {
		t.Errorf("BestCleared = %d, expected 3", stats.BestCleared)
	}
	if stats.FewestDeaths != 2 {
		t.Errorf("FewestDeaths = %d, expected 2 (incomplete runs do not count)", stats.FewestDeaths)
	}
	if stats.TotalFrames != 600 {
		t.Errorf("TotalFrames = %d, expected 600", stats.TotalFrames)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{LevelReached: 1})
	store.SaveRun(RunRecord{LevelReached: 2})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.RecentRuns(10)
	if len(runs) != 0 {
		t.Errorf("expected 0 runs after clear, got %d", len(runs))
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
