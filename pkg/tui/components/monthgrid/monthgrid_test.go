package monthgrid

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"almanac/pkg/calendar"
	"almanac/pkg/event"
)

func TestBuildCellsFlags(t *testing.T) {
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, time.Local)
	state := calendar.NewState(now).Select(now.AddDate(0, 0, 1))

	busyStart := time.Date(2025, time.June, 12, 9, 0, 0, 0, time.Local)
	events := []*event.Event{{
		ID:    "e1",
		Title: "Busy",
		Start: event.Timestamp{Time: busyStart},
		End:   event.Timestamp{Time: busyStart.Add(time.Hour)},
	}}

	cells := BuildCells(state, now, events)
	if len(cells)%7 != 0 {
		t.Fatalf("cell count %d not a multiple of 7", len(cells))
	}

	var sawToday, sawSelected, sawBusy bool
	for _, c := range cells {
		if c.IsToday {
			if c.Date.Day() != 10 {
				t.Fatalf("today flag on day %d", c.Date.Day())
			}
			sawToday = true
		}
		if c.IsSelected {
			if c.Date.Day() != 11 {
				t.Fatalf("selected flag on day %d", c.Date.Day())
			}
			sawSelected = true
		}
		if c.Count > 0 {
			if c.Date.Day() != 12 {
				t.Fatalf("event count on day %d", c.Date.Day())
			}
			sawBusy = true
		}
	}
	if !sawToday || !sawSelected || !sawBusy {
		t.Fatalf("missing flags: today=%v selected=%v busy=%v", sawToday, sawSelected, sawBusy)
	}

	// June 2025 starts on a Sunday; the first cell is June 1st itself.
	if cells[0].Date.Day() != 1 || !cells[0].InMonth {
		t.Fatalf("unexpected first cell %v", cells[0].Date)
	}
}

func TestRenderRowsHaveUniformWidth(t *testing.T) {
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
	state := calendar.NewState(now)

	out := Render(BuildCells(state, now, nil), DefaultOptions())
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("expected header plus week rows, got %d lines", len(lines))
	}

	width := ansi.PrintableRuneWidth(lines[0])
	for i, line := range lines {
		if got := ansi.PrintableRuneWidth(line); got != width {
			t.Fatalf("line %d width %d, want %d", i, got, width)
		}
	}
}

func TestRenderMarksBusyDays(t *testing.T) {
	now := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.Local)
	state := calendar.NewState(now)

	start := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.Local)
	events := []*event.Event{{
		ID:    "e1",
		Title: "Busy",
		Start: event.Timestamp{Time: start},
		End:   event.Timestamp{Time: start.Add(time.Hour)},
	}}

	out := Render(BuildCells(state, now, events), DefaultOptions())
	if !strings.Contains(out, "7•") {
		t.Fatalf("expected busy marker on day 7:\n%s", out)
	}
}
