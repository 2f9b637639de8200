package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"almanac/pkg/dates"
	"almanac/pkg/event"
)

const monthWidth = len("Sun Mon Tue Wed Thu Fri Sat")

// Month prints the padded month grid for on, marking days that hold
// events and the current day.
func (pp *PrettyPrint) Month(on time.Time, events ...*event.Event) {
	tf := color.New(color.FgWhite, color.Italic)
	hf := color.New(color.Faint)
	plain := color.New(color.FgWhite)
	faint := color.New(color.Faint, color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := color.New(color.Bold, color.Underline)

	label := dates.Format(on, "MMMM yyyy")
	mid := (monthWidth - len(label)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(color.Output, "%s%s\n", strings.Repeat(" ", mid), label)
	_, _ = hf.Fprintln(color.Output, strings.Join(dates.WeekdayLabels(), " "))

	now := time.Now()
	for i, day := range dates.CalendarGrid(on) {
		printer := faint
		if day.Month() == on.Month() {
			printer = plain
			if len(event.ForDate(events, day)) > 0 {
				printer = busy
			}
			if dates.SameDay(day, now) {
				printer = today
			}
		}
		_, _ = printer.Fprintf(color.Output, "%3d ", day.Day())

		if i%7 == 6 {
			fmt.Fprintln(color.Output, "")
		}
	}
	fmt.Fprintln(color.Output, "")
}
