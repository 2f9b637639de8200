package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"almanac/pkg/dates"
	"almanac/pkg/event"
)

// PrettyPrint renders events for the terminal.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Day prints one day's events as a table: time range, title, category.
func (pp *PrettyPrint) Day(events ...*event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " no events\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	for _, e := range events {
		span := fmt.Sprintf("%s–%s",
			dates.Format(e.Start.Time, "HH:mm"),
			dates.Format(e.End.Time, "HH:mm"))
		row := []interface{}{span, e.Title, e.Category}
		if pp.ShowID {
			row = append(row, e.ID)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Agenda prints events grouped by day, one dated heading per group.
func (pp *PrettyPrint) Agenda(grouped map[string][]*event.Event, keys []string) {
	if len(keys) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, "no events")
		return
	}

	h := color.New(color.Bold)
	c := color.New(color.Faint)
	for _, key := range keys {
		events := grouped[key]
		if len(events) == 0 {
			continue
		}
		heading := dates.Format(events[0].Start.Time, "EEE MMM dd, yyyy")
		_, _ = h.Fprint(color.Output, heading)
		switch len(events) {
		case 1:
			_, _ = c.Fprintln(color.Output, " - 1 event")
		default:
			_, _ = c.Fprintf(color.Output, " - %d events\n", len(events))
		}
		pp.Day(events...)
	}
}

// Conflicts flags events that collide with another on their day.
func (pp *PrettyPrint) Conflicts(all []*event.Event) {
	w := color.New(color.FgHiYellow)
	for _, e := range all {
		if event.Overlaps(e, all) {
			_, _ = w.Fprintf(color.Output, "! %s overlaps another event on %s\n",
				e.Title, dates.Format(e.Start.Time, ""))
		}
	}
}
