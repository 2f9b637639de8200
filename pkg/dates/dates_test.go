package dates

import (
	"testing"
	"time"
)

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	if got := DaysBetween(base, base.AddDate(0, 0, 3)); got != 3 {
		t.Fatalf("expected 3 days, got %d", got)
	}
	if got := DaysBetween(base, base); got != 0 {
		t.Fatalf("expected 0 days, got %d", got)
	}
	if got := DaysBetween(base, base.AddDate(0, 0, -2)); got != -2 {
		t.Fatalf("expected -2 days, got %d", got)
	}
	// Partial days floor toward negative infinity.
	if got := DaysBetween(base, base.Add(30*time.Hour)); got != 1 {
		t.Fatalf("expected 1 day for +30h, got %d", got)
	}
	if got := DaysBetween(base, base.Add(-30*time.Hour)); got != -2 {
		t.Fatalf("expected -2 days for -30h, got %d", got)
	}
}

func TestSameDayIgnoresTime(t *testing.T) {
	morning := time.Date(2025, time.June, 5, 8, 0, 0, 0, time.Local)
	night := time.Date(2025, time.June, 5, 23, 45, 0, 0, time.Local)
	next := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.Local)

	if !SameDay(morning, night) {
		t.Fatalf("expected %v and %v on the same day", morning, night)
	}
	if SameDay(night, next) {
		t.Fatalf("did not expect %v and %v on the same day", night, next)
	}
}

func TestDaysInMonth(t *testing.T) {
	feb := time.Date(2024, time.February, 15, 10, 0, 0, 0, time.Local)
	days := DaysInMonth(feb)
	if len(days) != 29 {
		t.Fatalf("expected 29 days in Feb 2024, got %d", len(days))
	}
	if days[0].Day() != 1 || days[len(days)-1].Day() != 29 {
		t.Fatalf("expected 1..29, got %d..%d", days[0].Day(), days[len(days)-1].Day())
	}
	for i := 1; i < len(days); i++ {
		if DaysBetween(days[i-1], days[i]) != 1 {
			t.Fatalf("days not ascending at index %d", i)
		}
	}
}

func TestCalendarGridProperties(t *testing.T) {
	months := []time.Time{
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.Local),
		time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local),
		time.Date(2025, time.June, 30, 23, 59, 0, 0, time.Local),
		time.Date(2026, time.September, 12, 0, 0, 0, 0, time.Local),
	}

	for _, month := range months {
		grid := CalendarGrid(month)

		if len(grid)%7 != 0 {
			t.Fatalf("%v: grid length %d not a multiple of 7", month, len(grid))
		}
		if grid[0].Weekday() != time.Sunday {
			t.Fatalf("%v: grid starts on %v, want Sunday", month, grid[0].Weekday())
		}
		if grid[len(grid)-1].Weekday() != time.Saturday {
			t.Fatalf("%v: grid ends on %v, want Saturday", month, grid[len(grid)-1].Weekday())
		}
		for i := 1; i < len(grid); i++ {
			if DaysBetween(grid[i-1], grid[i]) != 1 {
				t.Fatalf("%v: grid not monotonic at index %d", month, i)
			}
		}

		// The whole month must be contained.
		want := DaysInMonth(month)
		found := 0
		for _, g := range grid {
			for _, w := range want {
				if SameDay(g, w) {
					found++
					break
				}
			}
		}
		if found != len(want) {
			t.Fatalf("%v: grid contains %d of %d month days", month, found, len(want))
		}
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	jan31 := time.Date(2025, time.January, 31, 9, 30, 0, 0, time.Local)

	feb := AddMonths(jan31, 1)
	if feb.Month() != time.February || feb.Day() != 28 {
		t.Fatalf("expected Feb 28, got %v", feb)
	}
	if feb.Hour() != 9 || feb.Minute() != 30 {
		t.Fatalf("expected time of day preserved, got %v", feb)
	}

	leap := AddMonths(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local), 1)
	if leap.Month() != time.February || leap.Day() != 29 {
		t.Fatalf("expected Feb 29 in a leap year, got %v", leap)
	}

	back := AddMonths(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.Local), -1)
	if back.Month() != time.February || back.Day() != 28 {
		t.Fatalf("expected Feb 28 going backward, got %v", back)
	}
}

func TestWeekdayLabels(t *testing.T) {
	labels := WeekdayLabels()
	want := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if len(labels) != len(want) {
		t.Fatalf("expected %d labels, got %d", len(want), len(labels))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("label %d: expected %q, got %q", i, want[i], labels[i])
		}
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 48 {
		t.Fatalf("expected 48 slots, got %d", len(slots))
	}
	if slots[0] != "00:00" || slots[1] != "00:30" || slots[47] != "23:30" {
		t.Fatalf("unexpected slot endpoints: %q %q %q", slots[0], slots[1], slots[47])
	}
	// Restartable: a second call yields the same sequence.
	again := TimeSlots()
	for i := range slots {
		if slots[i] != again[i] {
			t.Fatalf("slot %d changed between calls: %q vs %q", i, slots[i], again[i])
		}
	}
}

func TestParseSlot(t *testing.T) {
	d, err := ParseSlot("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 9*time.Hour+30*time.Minute {
		t.Fatalf("expected 9h30m, got %v", d)
	}
	if _, err := ParseSlot("25:00"); err == nil {
		t.Fatalf("expected error for out-of-range slot")
	}
	if _, err := ParseSlot("noon"); err == nil {
		t.Fatalf("expected error for malformed slot")
	}
}

func TestSlotIndex(t *testing.T) {
	at := time.Date(2025, time.May, 1, 9, 45, 0, 0, time.Local)
	if got := SlotIndex(at); got != 19 {
		t.Fatalf("expected slot 19 for 09:45, got %d", got)
	}
	midnight := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.Local)
	if got := SlotIndex(midnight); got != 0 {
		t.Fatalf("expected slot 0 for midnight, got %d", got)
	}
}
