// Package theme centralizes Lip Gloss styles for the calendar UI.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles used across the views.
type Theme struct {
	Header  lipgloss.Style
	Weekday lipgloss.Style

	Day      lipgloss.Style
	Adjacent lipgloss.Style
	Busy     lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style

	SlotLabel    lipgloss.Style
	GroupHeading lipgloss.Style
	EventLine    lipgloss.Style

	FieldLabel lipgloss.Style
	FieldError lipgloss.Style
	Focus      lipgloss.Style

	Overlay lipgloss.Style
	Status  lipgloss.Style
	Help    lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Weekday: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),

		Day:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Adjacent: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Busy:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		Today:    lipgloss.NewStyle().Underline(true),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),

		SlotLabel:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		GroupHeading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("248")),
		EventLine:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		FieldLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F")),
		Focus:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// EventStyle turns an event's color tag into a swatch style. Hex tags get
// the tag as background with a foreground picked for contrast; anything
// else falls back to the plain event style.
func EventStyle(tag string, fallback lipgloss.Style) lipgloss.Style {
	c, err := colorful.Hex(tag)
	if err != nil {
		return fallback
	}
	_, _, l := c.Hsl()
	fg := "0"
	if l < 0.5 {
		fg = "15"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(tag)).
		Foreground(lipgloss.Color(fg))
}
