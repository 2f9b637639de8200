// Package editor is the event form overlay: one text input per event
// field with validation messages routed to the field they belong to.
package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"almanac/pkg/event"
)

const timeLayout = "2006-01-02T15:04"

// Extra field names beyond the validated ones.
const (
	FieldDescription = "description"
	FieldColor       = "color"
	FieldCategory    = "category"
)

var fieldOrder = []string{
	event.FieldTitle,
	event.FieldStart,
	event.FieldEnd,
	FieldDescription,
	FieldColor,
	FieldCategory,
}

var fieldLabels = map[string]string{
	event.FieldTitle: "Title",
	event.FieldStart: "Start",
	event.FieldEnd:   "End",
	FieldDescription: "Description",
	FieldColor:       "Color",
	FieldCategory:    "Category",
}

// Styles controls the form's presentation.
type Styles struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Focus lipgloss.Style
	Error lipgloss.Style
	Help  lipgloss.Style
}

// DefaultStyles returns the stock styling.
func DefaultStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2),
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Focus: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// Model is the form state.
type Model struct {
	title  string
	inputs map[string]*textinput.Model
	focus  int
	errors map[string]string
	styles Styles
}

// New constructs an empty form.
func New(title string) *Model {
	m := &Model{
		title:  title,
		inputs: make(map[string]*textinput.Model, len(fieldOrder)),
		errors: make(map[string]string),
		styles: DefaultStyles(),
	}

	for _, field := range fieldOrder {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		switch field {
		case event.FieldStart, event.FieldEnd:
			ti.Placeholder = timeLayout
		case FieldColor:
			ti.Placeholder = "#3b82f6"
		}
		m.inputs[field] = &ti
	}

	m.inputs[fieldOrder[0]].Focus()
	return m
}

// Prefill loads an existing event into the form for editing.
func (m *Model) Prefill(e *event.Event) {
	m.inputs[event.FieldTitle].SetValue(e.Title)
	m.inputs[event.FieldStart].SetValue(e.Start.Local().Format(timeLayout))
	m.inputs[event.FieldEnd].SetValue(e.End.Local().Format(timeLayout))
	m.inputs[FieldDescription].SetValue(e.Description)
	m.inputs[FieldColor].SetValue(e.Color)
	m.inputs[FieldCategory].SetValue(e.Category)
}

// PrefillTimes seeds the start/end inputs, used when adding from a
// selected day.
func (m *Model) PrefillTimes(start, end time.Time) {
	m.inputs[event.FieldStart].SetValue(start.Format(timeLayout))
	m.inputs[event.FieldEnd].SetValue(end.Format(timeLayout))
}

// SetErrors replaces the per-field messages shown under the inputs.
func (m *Model) SetErrors(errs map[string]string) {
	if errs == nil {
		errs = make(map[string]string)
	}
	m.errors = errs
}

// Update moves focus on tab/arrows and forwards everything else to the
// focused input. Enter and escape are the parent's business.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return nil
		}
	}

	field := fieldOrder[m.focus]
	updated, cmd := m.inputs[field].Update(msg)
	m.inputs[field] = &updated
	return cmd
}

func (m *Model) setFocus(idx int) {
	m.inputs[fieldOrder[m.focus]].Blur()
	m.focus = (idx + len(fieldOrder)) % len(fieldOrder)
	m.inputs[fieldOrder[m.focus]].Focus()
}

// Draft assembles the form values. Unparseable dates come back as field
// errors without touching the store.
func (m *Model) Draft() (event.Draft, map[string]string) {
	parseErrs := make(map[string]string)

	d := event.Draft{
		Title:       m.inputs[event.FieldTitle].Value(),
		Description: m.inputs[FieldDescription].Value(),
		Color:       strings.TrimSpace(m.inputs[FieldColor].Value()),
		Category:    strings.TrimSpace(m.inputs[FieldCategory].Value()),
	}

	d.Start = m.parseTime(event.FieldStart, parseErrs)
	d.End = m.parseTime(event.FieldEnd, parseErrs)

	if len(parseErrs) > 0 {
		return d, parseErrs
	}
	return d, nil
}

func (m *Model) parseTime(field string, parseErrs map[string]string) time.Time {
	raw := strings.TrimSpace(m.inputs[field].Value())
	if raw == "" {
		return time.Time{}
	}
	t, err := event.ParseTime(raw)
	if err != nil {
		parseErrs[field] = "Invalid date (use " + timeLayout + ")"
		return time.Time{}
	}
	return t
}

// View renders the framed form.
func (m *Model) View() string {
	var lines []string
	lines = append(lines, m.styles.Title.Render(m.title), "")

	for i, field := range fieldOrder {
		label := fieldLabels[field]
		style := m.styles.Label
		if i == m.focus {
			style = m.styles.Focus
		}
		lines = append(lines, style.Render(label))
		lines = append(lines, m.inputs[field].View())
		if msg, ok := m.errors[field]; ok {
			lines = append(lines, m.styles.Error.Render(msg))
		}
	}

	lines = append(lines, "", m.styles.Help.Render("enter save · esc cancel · tab next field"))
	return m.styles.Frame.Render(strings.Join(lines, "\n"))
}
