package app

import (
	"context"
	"errors"
	"time"

	"almanac/pkg/event"
	"almanac/pkg/store"
)

// Service provides the high-level calendar operations shared by the CLI
// and the TUI. It wraps the store so both surfaces mutate through one
// validated path.
type Service struct {
	Store *store.Store
}

var errNoStore = errors.New("app: no store configured")

// Events returns every stored event in insertion order.
func (s *Service) Events(ctx context.Context) ([]*event.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Events(), nil
}

// On returns the events starting on the given day, sorted by start time.
func (s *Service) On(ctx context.Context, date time.Time) ([]*event.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return event.SortByStart(event.ForDate(s.Store.Events(), date)), nil
}

// Agenda returns events grouped by day plus the chronologically sorted
// group keys.
func (s *Service) Agenda(ctx context.Context) (map[string][]*event.Event, []string, error) {
	if s.Store == nil {
		return nil, nil, errNoStore
	}
	grouped := event.GroupByDate(s.Store.Events())
	return grouped, event.DayKeys(grouped), nil
}

// Add admits a new event through validation.
func (s *Service) Add(ctx context.Context, d event.Draft) (*event.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Add(d)
}

// Update applies a patch to the event with the given id.
func (s *Service) Update(ctx context.Context, id string, p store.Patch) (*event.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Update(id, p)
}

// Delete removes an event; absent ids are a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	if s.Store == nil {
		return errNoStore
	}
	s.Store.Delete(id)
	return nil
}

// Get looks up an event by id, nil when absent.
func (s *Service) Get(ctx context.Context, id string) (*event.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Get(id), nil
}

// Reschedule moves an event to a target day and time slot, preserving
// duration.
func (s *Service) Reschedule(ctx context.Context, id string, day time.Time, slot string) (*event.Event, error) {
	if s.Store == nil {
		return nil, errNoStore
	}
	return s.Store.Reschedule(id, day, slot)
}

// Overlapping reports whether e collides with another event on its day.
func (s *Service) Overlapping(ctx context.Context, e *event.Event) (bool, error) {
	if s.Store == nil {
		return false, errNoStore
	}
	return event.Overlaps(e, s.Store.Events()), nil
}
