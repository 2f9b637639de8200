// Package dates holds the pure date arithmetic behind the calendar views:
// month grids, week bounds, day slots, and whole-day math. Everything here
// is local-time and side-effect free.
package dates

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// DaysBetween returns the whole-day difference between start and end,
// flooring toward negative infinity. Negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	diff := end.Sub(start)
	days := diff / day
	if diff%day != 0 && diff < 0 {
		days--
	}
	return int(days)
}

// SameDay reports whether a and b fall on the same local calendar date,
// ignoring time of day.
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Day() == bl.Day() && al.Month() == bl.Month() && al.Year() == bl.Year()
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	tl := t.Local()
	return time.Date(tl.Year(), tl.Month(), tl.Day(), 0, 0, 0, 0, tl.Location())
}

// StartOfMonth returns midnight on the first of t's month.
func StartOfMonth(t time.Time) time.Time {
	tl := t.Local()
	return time.Date(tl.Year(), tl.Month(), 1, 0, 0, 0, 0, tl.Location())
}

// EndOfMonth returns midnight on the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfWeek returns midnight on the Sunday of t's week.
func StartOfWeek(t time.Time) time.Time {
	sod := StartOfDay(t)
	return sod.AddDate(0, 0, -int(sod.Weekday()))
}

// EndOfWeek returns midnight on the Saturday of t's week.
func EndOfWeek(t time.Time) time.Time {
	sod := StartOfDay(t)
	return sod.AddDate(0, 0, int(time.Saturday-sod.Weekday()))
}

// DaysIn returns the number of days in t's month.
func DaysIn(t time.Time) int {
	return EndOfMonth(t).Day()
}

// DaysInMonth returns every date of t's month, first to last, ascending.
func DaysInMonth(t time.Time) []time.Time {
	first := StartOfMonth(t)
	n := DaysIn(t)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days
}

// CalendarGrid returns the padded date sequence used to render t's month:
// it starts on the Sunday of the week containing the 1st, ends on the
// Saturday of the week containing the last day, and steps one calendar day
// per element. The length is always a multiple of 7 and the grid includes
// the leading/trailing days borrowed from adjacent months.
func CalendarGrid(t time.Time) []time.Time {
	cur := StartOfWeek(StartOfMonth(t))
	end := EndOfWeek(EndOfMonth(t))

	grid := make([]time.Time, 0, 42)
	for !cur.After(end) {
		grid = append(grid, cur)
		cur = cur.AddDate(0, 0, 1)
	}
	return grid
}

// AddMonths shifts t by n calendar months, clamping the day of month so
// the result stays inside the target month (Jan 31 + 1 month is Feb 28 or
// 29, never Mar 2). Time of day is preserved.
func AddMonths(t time.Time, n int) time.Time {
	tl := t.Local()
	first := time.Date(tl.Year(), tl.Month()+time.Month(n), 1, 0, 0, 0, 0, tl.Location())
	d := tl.Day()
	if max := DaysIn(first); d > max {
		d = max
	}
	return time.Date(first.Year(), first.Month(), d,
		tl.Hour(), tl.Minute(), tl.Second(), tl.Nanosecond(), tl.Location())
}

// WeekdayLabels returns the fixed Sunday-first weekday abbreviations used
// for grid headers.
func WeekdayLabels() []string {
	return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// TimeSlots returns the 48 half-hour labels covering a day, "00:00"
// through "23:30", ascending.
func TimeSlots() []string {
	slots := make([]string, 0, 48)
	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// ParseSlot converts an "HH:MM" slot label back into its offset from
// midnight.
func ParseSlot(slot string) (time.Duration, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(slot, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("dates: invalid time slot %q: %w", slot, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("dates: time slot %q out of range", slot)
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, nil
}

// SlotIndex returns the index of the half-hour slot containing t, 0..47.
func SlotIndex(t time.Time) int {
	tl := t.Local()
	return tl.Hour()*2 + tl.Minute()/30
}
