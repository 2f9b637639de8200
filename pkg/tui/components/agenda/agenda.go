// Package agenda renders the list view: events grouped by day in
// chronological order inside a scrolling viewport.
package agenda

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/charmbracelet/lipgloss/v2"

	"almanac/pkg/dates"
	"almanac/pkg/event"
	"almanac/pkg/tui/theme"
)

// Styles controls the list's presentation.
type Styles struct {
	Heading lipgloss.Style
	Line    lipgloss.Style
	Detail  lipgloss.Style
	Empty   lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		Line:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
	}
}

// Model renders grouped events.
type Model struct {
	viewport viewport.Model
	styles   Styles
	width    int
}

// New constructs an empty agenda.
func New() *Model {
	vp := viewport.New(
		viewport.WithWidth(1),
		viewport.WithHeight(1),
	)
	return &Model{viewport: vp, styles: DefaultStyles()}
}

// SetSize resizes the viewport.
func (m *Model) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 1 {
		height = 1
	}
	m.width = width
	m.viewport.SetWidth(width)
	m.viewport.SetHeight(height)
}

// SetEvents rebuilds the list content from grouped events and their
// sorted day keys.
func (m *Model) SetEvents(grouped map[string][]*event.Event, keys []string) {
	if len(keys) == 0 {
		m.viewport.SetContent(m.styles.Empty.Render("No events yet — press a to add one"))
		return
	}

	var lines []string
	for _, key := range keys {
		events := grouped[key]
		if len(events) == 0 {
			continue
		}
		heading := dates.Format(events[0].Start.Time, "EEEE, MMMM d, yyyy")
		lines = append(lines, m.styles.Heading.Render(heading))
		for _, e := range events {
			lines = append(lines, m.renderEvent(e))
		}
		lines = append(lines, "")
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) renderEvent(e *event.Event) string {
	span := fmt.Sprintf("%s–%s",
		dates.Format(e.Start.Time, "HH:mm"),
		dates.Format(e.End.Time, "HH:mm"))

	title := e.Title
	if e.Color != "" {
		title = theme.EventStyle(e.Color, m.styles.Line).Render(" " + e.Title + " ")
	}

	line := fmt.Sprintf("  %s  %s", m.styles.Detail.Render(span), title)
	if e.Category != "" {
		line += m.styles.Detail.Render("  [" + e.Category + "]")
	}
	return line
}

// ScrollBy moves the viewport by delta rows.
func (m *Model) ScrollBy(delta int) {
	m.viewport.SetYOffset(m.viewport.YOffset + delta)
}

// GoTop resets scrolling.
func (m *Model) GoTop() {
	m.viewport.GotoTop()
}

// View renders the visible lines.
func (m *Model) View() string {
	if m.width == 0 {
		return ""
	}
	return m.viewport.View()
}
