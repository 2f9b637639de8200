// Package monthgrid renders the padded month view grid.
package monthgrid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"almanac/pkg/calendar"
	"almanac/pkg/dates"
	"almanac/pkg/event"
)

// Cell describes one rendered day.
type Cell struct {
	Date       time.Time
	InMonth    bool
	IsToday    bool
	IsSelected bool
	Count      int
}

// Options controls grid styling.
type Options struct {
	WeekdayStyle  lipgloss.Style
	DayStyle      lipgloss.Style
	AdjacentStyle lipgloss.Style
	BusyStyle     lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions returns the stock styling.
func DefaultOptions() Options {
	return Options{
		WeekdayStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		DayStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		AdjacentStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		BusyStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		SelectedStyle: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowHeader:    true,
	}
}

// BuildCells computes the cells for the month containing state.Current,
// marking today, the selection, and days holding events.
func BuildCells(state calendar.State, now time.Time, events []*event.Event) []Cell {
	grid := dates.CalendarGrid(state.Current)
	cells := make([]Cell, 0, len(grid))
	for _, day := range grid {
		cells = append(cells, Cell{
			Date:       day,
			InMonth:    day.Month() == state.Current.Local().Month(),
			IsToday:    dates.SameDay(day, now),
			IsSelected: state.IsSelected(day),
			Count:      len(event.ForDate(events, day)),
		})
	}
	return cells
}

// Render produces the multi-line month grid, seven cells per row.
func Render(cells []Cell, opts Options) string {
	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.WeekdayStyle.Render(strings.Join(dates.WeekdayLabels(), " ")))
	}

	var row []string
	for i, c := range cells {
		row = append(row, renderCell(c, opts))
		if i%7 == 6 {
			lines = append(lines, strings.Join(row, " "))
			row = row[:0]
		}
	}
	return strings.Join(lines, "\n")
}

func renderCell(c Cell, opts Options) string {
	style := opts.AdjacentStyle
	if c.InMonth {
		style = opts.DayStyle
		if c.Count > 0 {
			style = opts.BusyStyle
		}
	}
	if c.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if c.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}

	mark := " "
	if c.Count > 0 {
		mark = "•"
	}
	return style.Render(fmt.Sprintf("%2d%s", c.Date.Day(), mark))
}
