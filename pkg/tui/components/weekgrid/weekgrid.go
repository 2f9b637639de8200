// Package weekgrid lays the week view out as half-hour slot rows against
// seven day columns inside a scrolling viewport.
package weekgrid

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"

	"almanac/pkg/dates"
	"almanac/pkg/event"
)

const colWidth = 12

// Styles controls the grid's presentation.
type Styles struct {
	DayHeader lipgloss.Style
	Today     lipgloss.Style
	SlotLabel lipgloss.Style
	Event     lipgloss.Style
	Cursor    lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	return Styles{
		DayHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		Today:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		SlotLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Event:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Cursor:    lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
	}
}

// Model renders one week of time slots.
type Model struct {
	viewport viewport.Model
	styles   Styles

	header string
	width  int
	height int
}

// New constructs an empty week grid.
func New() *Model {
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	return &Model{viewport: vp, styles: DefaultStyles()}
}

// SetSize resizes the viewport, reserving one row for the day header.
func (m *Model) SetSize(width, height int) {
	if width < colWidth {
		width = colWidth
	}
	if height < 2 {
		height = 2
	}
	m.width = width
	m.height = height
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(height - 1)
}

// SetWeek rebuilds the grid content for the week containing anchor.
// cursorSlot (0..47, -1 for none) and cursorDay highlight the reschedule
// target.
func (m *Model) SetWeek(anchor time.Time, events []*event.Event, now time.Time, cursorSlot int, cursorDay time.Time) {
	weekStart := dates.StartOfWeek(anchor)

	days := make([]time.Time, 7)
	headers := make([]string, 0, 8)
	headers = append(headers, m.styles.SlotLabel.Render(fmt.Sprintf("%5s", "")))
	for i := range days {
		days[i] = weekStart.AddDate(0, 0, i)
		label := fmt.Sprintf("%-*s", colWidth, dates.Format(days[i], "EEE dd"))
		style := m.styles.DayHeader
		if dates.SameDay(days[i], now) {
			style = m.styles.Today
		}
		headers = append(headers, style.Render(label))
	}
	m.header = strings.Join(headers, " ")

	slots := dates.TimeSlots()
	lines := make([]string, 0, len(slots))
	for si, slot := range slots {
		cols := make([]string, 0, 8)
		cols = append(cols, m.styles.SlotLabel.Render(fmt.Sprintf("%5s", slot)))
		for _, day := range days {
			cols = append(cols, m.renderCell(events, day, si, cursorSlot, cursorDay))
		}
		lines = append(lines, strings.Join(cols, " "))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) renderCell(events []*event.Event, day time.Time, slot, cursorSlot int, cursorDay time.Time) string {
	text := strings.Repeat(" ", colWidth)
	styled := false
	for _, e := range event.ForDate(events, day) {
		if dates.SlotIndex(e.Start.Time) == slot {
			text = fmt.Sprintf("%-*s", colWidth, truncate(e.Title, colWidth))
			styled = true
			break
		}
	}

	if cursorSlot == slot && dates.SameDay(day, cursorDay) {
		return m.styles.Cursor.Render(text)
	}
	if styled {
		return m.styles.Event.Render(text)
	}
	return text
}

// ScrollTo centers the viewport on the given slot index.
func (m *Model) ScrollTo(slot int) {
	offset := slot - m.viewport.Height()/2
	if offset < 0 {
		offset = 0
	}
	m.viewport.SetYOffset(offset)
}

// ScrollBy moves the viewport by delta rows.
func (m *Model) ScrollBy(delta int) {
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

// View renders the header plus the visible slot rows.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.header, m.viewport.View())
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
