package export

import (
	"context"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"almanac/pkg/app"
)

// Export writes the whole store as an iCalendar stream.
type Export struct {
	Out     io.Writer
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	events, err := n.Service.Events(ctx)
	if err != nil {
		return err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//almanac//EN")

	now := time.Now().UTC()
	for _, e := range events {
		ve := ical.NewComponent(ical.CompEvent)
		ve.Props.SetText(ical.PropUID, e.ID)
		ve.Props.SetText(ical.PropSummary, e.Title)
		ve.Props.SetDateTime(ical.PropDateTimeStamp, now)
		ve.Props.SetDateTime(ical.PropDateTimeStart, e.Start.Time)
		ve.Props.SetDateTime(ical.PropDateTimeEnd, e.End.Time)
		if e.Description != "" {
			ve.Props.SetText(ical.PropDescription, e.Description)
		}
		if e.Category != "" {
			ve.Props.SetText(ical.PropCategories, e.Category)
		}
		if e.Color != "" {
			ve.Props.SetText(ical.PropColor, e.Color)
		}
		cal.Children = append(cal.Children, ve)
	}

	return ical.NewEncoder(n.Out).Encode(cal)
}
