package add

import (
	"context"
	"time"

	"almanac/pkg/app"
	"almanac/pkg/event"
	"almanac/pkg/printers"
)

// Add admits one event from the command line and prints the resulting
// day.
type Add struct {
	Title       string
	Description string
	Start       time.Time
	End         time.Time
	Color       string
	Category    string

	ShowID  bool
	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	e, err := n.Service.Add(ctx, event.Draft{
		Title:       n.Title,
		Description: n.Description,
		Start:       n.Start,
		End:         n.End,
		Color:       n.Color,
		Category:    n.Category,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(e.Start.Local().Format("January 2, 2006"))

	day, err := n.Service.On(ctx, e.Start.Time)
	if err != nil {
		return err
	}
	pp.Day(day...)

	if overlap, err := n.Service.Overlapping(ctx, e); err == nil && overlap {
		pp.Conflicts(day)
	}
	return nil
}
