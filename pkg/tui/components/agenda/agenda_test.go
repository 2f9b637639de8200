package agenda

import (
	"strings"
	"testing"
	"time"

	"github.com/muesli/reflow/ansi"

	"almanac/pkg/event"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func newEvent(id, title, category string, start time.Time) *event.Event {
	return &event.Event{
		ID:       id,
		Title:    title,
		Category: category,
		Start:    event.Timestamp{Time: start},
		End:      event.Timestamp{Time: start.Add(time.Hour)},
	}
}

func TestSetEventsGroupsByDayInOrder(t *testing.T) {
	m := New()
	m.SetSize(80, 20)

	mon := time.Date(2025, time.June, 9, 9, 0, 0, 0, time.Local)
	tue := time.Date(2025, time.June, 10, 14, 0, 0, 0, time.Local)
	events := []*event.Event{
		newEvent("e2", "Review", "work", tue),
		newEvent("e1", "Standup", "work", mon),
	}

	grouped := event.GroupByDate(events)
	m.SetEvents(grouped, event.DayKeys(grouped))

	view := stripANSI(m.View())
	monIdx := strings.Index(view, "Monday, June 9, 2025")
	tueIdx := strings.Index(view, "Tuesday, June 10, 2025")
	if monIdx < 0 || tueIdx < 0 {
		t.Fatalf("expected both day headings:\n%s", view)
	}
	if monIdx > tueIdx {
		t.Fatalf("expected Monday heading before Tuesday:\n%s", view)
	}

	if !strings.Contains(view, "09:00–10:00") || !strings.Contains(view, "[work]") {
		t.Fatalf("expected event span and category:\n%s", view)
	}
}

func TestEmptyStateShowsHint(t *testing.T) {
	m := New()
	m.SetSize(80, 20)
	m.SetEvents(nil, nil)

	view := stripANSI(m.View())
	if !strings.Contains(view, "No events yet") {
		t.Fatalf("expected empty-state hint:\n%s", view)
	}
}
