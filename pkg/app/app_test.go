package app

import (
	"context"
	"testing"
	"time"

	"almanac/pkg/event"
	"almanac/pkg/store"
)

func TestServiceGuardsNilStore(t *testing.T) {
	ctx := context.Background()
	s := &Service{}

	if _, err := s.Events(ctx); err == nil {
		t.Fatalf("expected error without store")
	}
	if _, err := s.Add(ctx, event.Draft{Title: "x"}); err == nil {
		t.Fatalf("expected error without store")
	}
	if err := s.Delete(ctx, "id"); err == nil {
		t.Fatalf("expected error without store")
	}
}

func TestAgendaGroupsAndSortsKeys(t *testing.T) {
	ctx := context.Background()
	s := &Service{Store: store.NewStore()}

	base := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.Local)
	for _, offset := range []int{2, 0, 1} {
		start := base.AddDate(0, 0, offset)
		if _, err := s.Add(ctx, event.Draft{Title: "E", Start: start, End: start.Add(time.Hour)}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	grouped, keys, err := s.Agenda(ctx)
	if err != nil {
		t.Fatalf("agenda: %v", err)
	}
	if len(grouped) != 3 || len(keys) != 3 {
		t.Fatalf("expected 3 groups, got %d/%d", len(grouped), len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not ascending: %v", keys)
		}
	}
}

func TestOnReturnsSortedDay(t *testing.T) {
	ctx := context.Background()
	s := &Service{Store: store.NewStore()}

	day := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.Local)
	late := day.Add(15 * time.Hour)
	early := day.Add(9 * time.Hour)
	if _, err := s.Add(ctx, event.Draft{Title: "Late", Start: late, End: late.Add(time.Hour)}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := s.Add(ctx, event.Draft{Title: "Early", Start: early, End: early.Add(time.Hour)}); err != nil {
		t.Fatalf("add: %v", err)
	}

	events, err := s.On(ctx, day)
	if err != nil {
		t.Fatalf("on: %v", err)
	}
	if len(events) != 2 || events[0].Title != "Early" || events[1].Title != "Late" {
		t.Fatalf("unexpected order: %v", events)
	}
}

func TestOverlapping(t *testing.T) {
	ctx := context.Background()
	s := &Service{Store: store.NewStore()}

	start := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.Local)
	a, _ := s.Add(ctx, event.Draft{Title: "A", Start: start, End: start.Add(30 * time.Minute)})
	if got, _ := s.Overlapping(ctx, a); got {
		t.Fatalf("single event must not overlap")
	}

	b, _ := s.Add(ctx, event.Draft{Title: "B", Start: start.Add(15 * time.Minute), End: start.Add(45 * time.Minute)})
	if got, _ := s.Overlapping(ctx, a); !got {
		t.Fatalf("expected overlap with %s", b.ID)
	}
}
