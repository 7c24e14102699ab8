package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/presents/internal/storage"
)

func TestFormatFrames(t *testing.T) {
	tests := []struct {
		frames, fps int
		expected    string
	}{
		{0, 60, "0:00"},
		{59, 60, "0:00"},
		{60, 60, "0:01"},
		{3600, 60, "1:00"},
		{5430, 60, "1:30"},
		{120, 0, "0:02"},
	}

	for _, tc := range tests {
		if got := FormatFrames(tc.frames, tc.fps); got != tc.expected {
			t.Errorf("FormatFrames(%d, %d) = %q, expected %q", tc.frames, tc.fps, got, tc.expected)
		}
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.RunRecord{
		{Player: "santa", LevelReached: 4, Cleared: 3, Deaths: 1, Frames: 3600, Completed: true},
		{LevelReached: 2, Cleared: 1, Frames: 60},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "santa" || rows[0][2] != "complete" || rows[0][5] != "1:00" {
		t.Errorf("unexpected first row %v", rows[0])
	}
	if rows[1][1] != "-" || rows[1][2] != "1 cleared" {
		t.Errorf("unexpected second row %v", rows[1])
	}
}

func TestRunsModelSwitchesView(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.RunRecord{Player: "old", LevelReached: 4, Cleared: 3, Completed: true})
	store.SaveRun(storage.RunRecord{Player: "new", LevelReached: 1})

	m := NewRunsModel(store, 100, 30)
	if m.view != RunsBest || m.runs[0].Player != "old" {
		t.Fatalf("best view should list the completed run first, got %+v", m.runs)
	}

	next, _ := m.Update(keyMsg("tab"))
	m = next.(RunsModel)
	if m.view != RunsRecent || m.runs[0].Player != "new" {
		t.Errorf("recent view should list the newest run first, got %+v", m.runs)
	}

	view := m.View()
	if !strings.Contains(view, "2 runs, 1 completed") {
		t.Errorf("stats line missing from view:\n%s", view)
	}
}

func TestRunsModelWithoutStore(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("missing store should be reported")
	}
}
