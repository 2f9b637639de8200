package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const seedFixture = `[
  {
    "id": "evt-1",
    "title": "Team sync",
    "start": "2025-05-05T09:00:00Z",
    "end": "2025-05-05T09:30:00Z",
    "color": "#3b82f6",
    "category": "work"
  },
  {
    "title": "Dentist",
    "description": "Bring insurance card",
    "start": "2025-05-06T14:00",
    "end": "2025-05-06T15:00"
  }
]`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "events.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadSeed(t *testing.T) {
	events, err := LoadSeed(writeSeed(t, seedFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if events[0].ID != "evt-1" {
		t.Fatalf("expected seed id preserved, got %q", events[0].ID)
	}
	if events[1].ID == "" {
		t.Fatalf("expected fresh id assigned to record without one")
	}
	if events[1].Duration() != time.Hour {
		t.Fatalf("expected 1h event, got %v", events[1].Duration())
	}
}

func TestLoadSeedRejectsInvalidRecord(t *testing.T) {
	bad := `[{"title": "", "start": "2025-05-05T09:00:00Z", "end": "2025-05-05T09:30:00Z"}]`
	if _, err := LoadSeed(writeSeed(t, bad)); err == nil {
		t.Fatalf("expected validation failure")
	}
}

func TestLoadSeedIfPresentMissingFile(t *testing.T) {
	events, err := LoadSeedIfPresent(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing seed must not error, got %v", err)
	}
	if events != nil {
		t.Fatalf("expected nil events, got %v", events)
	}
}
