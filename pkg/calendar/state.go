// Package calendar holds the navigation state behind the views: the
// anchor date, the active view mode, and the transient day selection.
// Transitions are value in, value out, with no hidden captures, so each
// one is independently testable.
package calendar

import (
	"time"

	"almanac/pkg/dates"
)

// View selects which renderer consumes the state.
type View int

const (
	ViewMonth View = iota
	ViewWeek
	ViewList
)

func (v View) String() string {
	switch v {
	case ViewWeek:
		return "week"
	case ViewList:
		return "list"
	default:
		return "month"
	}
}

// ParseView maps a config or flag value onto a view mode, defaulting to
// month.
func ParseView(s string) View {
	switch s {
	case "week":
		return ViewWeek
	case "list", "agenda":
		return ViewList
	default:
		return ViewMonth
	}
}

// State anchors the calendar display. Current drives grid generation,
// Selected is UI focus only; no invariant ties Selected to any event.
type State struct {
	Current  time.Time
	View     View
	Selected *time.Time
}

// NewState returns a month-view state anchored at the given date.
func NewState(current time.Time) State {
	return State{Current: current, View: ViewMonth}
}

// NextMonth advances the anchor one calendar month, clamping the day so
// Jan 31 lands on Feb 28/29.
func (s State) NextMonth() State {
	s.Current = dates.AddMonths(s.Current, 1)
	return s
}

// PreviousMonth is the inverse of NextMonth.
func (s State) PreviousMonth() State {
	s.Current = dates.AddMonths(s.Current, -1)
	return s
}

// NextWeek advances the anchor seven days for week-view paging.
func (s State) NextWeek() State {
	s.Current = s.Current.AddDate(0, 0, 7)
	return s
}

// PreviousWeek is the inverse of NextWeek.
func (s State) PreviousWeek() State {
	s.Current = s.Current.AddDate(0, 0, -7)
	return s
}

// Today re-anchors on the wall clock.
func (s State) Today() State {
	return s.GoTo(time.Now())
}

// GoTo re-anchors on an arbitrary date.
func (s State) GoTo(d time.Time) State {
	s.Current = d
	return s
}

// SetView switches view mode without touching the anchor or selection.
func (s State) SetView(v View) State {
	s.View = v
	return s
}

// Select focuses a day.
func (s State) Select(d time.Time) State {
	s.Selected = &d
	return s
}

// ClearSelection drops the day focus.
func (s State) ClearSelection() State {
	s.Selected = nil
	return s
}

// IsSelected reports whether d is the focused day.
func (s State) IsSelected(d time.Time) bool {
	return s.Selected != nil && dates.SameDay(*s.Selected, d)
}
