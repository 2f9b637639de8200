package event

import (
	"sort"
	"time"
)

const dayKeyLayout = "2006-01-02"

// DayKey normalizes a time to its calendar-day grouping key. Keys sort
// lexicographically in chronological order.
func DayKey(t time.Time) string {
	return t.Local().Format(dayKeyLayout)
}

// ForDate returns the events whose start falls on the same calendar day
// as date, preserving their relative order.
func ForDate(events []*Event, date time.Time) []*Event {
	var out []*Event
	for _, e := range events {
		if e.Start.SameDay(date) {
			out = append(out, e)
		}
	}
	return out
}

// SortByStart returns a copy sorted ascending by start time. The sort is
// stable: ties keep their original relative order.
func SortByStart(events []*Event) []*Event {
	out := make([]*Event, len(events))
	copy(out, events)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start.Time)
	})
	return out
}

// Overlaps reports whether any other event on e's calendar day has an
// interval intersecting e's under half-open [start, end) semantics. An
// event touching another exactly end-to-start does not overlap, and an
// event never overlaps itself.
func Overlaps(e *Event, all []*Event) bool {
	for _, other := range ForDate(all, e.Start.Time) {
		if other.ID == e.ID {
			continue
		}
		if e.Start.Before(other.End.Time) && other.Start.Before(e.End.Time) {
			return true
		}
	}
	return false
}

// GroupByDate partitions events by calendar day, each bucket sorted by
// start time. Iteration order over the map is unspecified; display
// callers sort the keys with DayKeys.
func GroupByDate(events []*Event) map[string][]*Event {
	grouped := make(map[string][]*Event)
	for _, e := range events {
		key := DayKey(e.Start.Time)
		grouped[key] = append(grouped[key], e)
	}
	for key := range grouped {
		grouped[key] = SortByStart(grouped[key])
	}
	return grouped
}

// DayKeys returns the group keys in chronological order.
func DayKeys(grouped map[string][]*Event) []string {
	keys := make([]string, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
