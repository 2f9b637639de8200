// Package store owns the in-memory event list. Mutations validate before
// they commit and never partially apply; state lives for the process
// lifetime only.
package store

import (
	"fmt"
	"time"

	"almanac/pkg/dates"
	"almanac/pkg/event"
)

// NotFoundError reports a mutation against an id the store does not hold.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("store: event %q not found", e.ID)
}

// Patch carries replacement values for an update; nil fields keep the
// stored value.
type Patch struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Color       *string
	Category    *string
}

func (p Patch) apply(e *event.Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Start != nil {
		e.Start = event.Timestamp{Time: *p.Start}
	}
	if p.End != nil {
		e.End = event.Timestamp{Time: *p.End}
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
}

// Store is the authoritative event list. It is driven from a single
// goroutine of control; each mutation is atomic with respect to the next
// interaction.
type Store struct {
	events []*event.Event
}

// NewStore seeds a store with already-validated events.
func NewStore(events ...*event.Event) *Store {
	s := &Store{events: make([]*event.Event, 0, len(events))}
	s.events = append(s.events, events...)
	return s
}

// Add validates the draft and, only on success, assigns a fresh id and
// appends the event. On failure the store is unchanged and the returned
// error is a *event.ValidationError.
func (s *Store) Add(d event.Draft) (*event.Event, error) {
	if errs := event.Validate(d); len(errs) > 0 {
		return nil, &event.ValidationError{Errors: errs}
	}
	e := d.Event(event.NewID())
	s.events = append(s.events, e)
	return e, nil
}

// Update merges the patch onto the stored event, re-validates the merged
// result, and replaces it in place (preserving position) only when valid.
// A missing id yields *NotFoundError; an invalid merge leaves the store
// untouched.
func (s *Store) Update(id string, p Patch) (*event.Event, error) {
	idx := s.index(id)
	if idx < 0 {
		return nil, &NotFoundError{ID: id}
	}

	merged := *s.events[idx]
	p.apply(&merged)
	if errs := event.Validate(merged.Draft()); len(errs) > 0 {
		return nil, &event.ValidationError{Errors: errs}
	}

	s.events[idx] = &merged
	return &merged, nil
}

// Delete removes the event with the given id. An absent id is a silent
// no-op; callers cannot distinguish "deleted" from "was already absent".
func (s *Store) Delete(id string) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	s.events = append(s.events[:idx], s.events[idx+1:]...)
}

// Get returns the event with the given id, or nil.
func (s *Store) Get(id string) *event.Event {
	if idx := s.index(id); idx >= 0 {
		return s.events[idx]
	}
	return nil
}

// Events returns a copy of the event list in insertion order.
func (s *Store) Events() []*event.Event {
	out := make([]*event.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

// Reschedule moves an event to the given day and "HH:MM" time slot,
// preserving its duration. This is the whole drop contract: whatever
// input layer produced the (id, day, slot) triple, the move lands here.
func (s *Store) Reschedule(id string, day time.Time, slot string) (*event.Event, error) {
	e := s.Get(id)
	if e == nil {
		return nil, &NotFoundError{ID: id}
	}

	offset, err := dates.ParseSlot(slot)
	if err != nil {
		return nil, err
	}

	start := dates.StartOfDay(day).Add(offset)
	end := start.Add(e.Duration())
	return s.Update(id, Patch{Start: &start, End: &end})
}

func (s *Store) index(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}
