package month

import (
	"context"
	"time"

	"almanac/pkg/app"
	"almanac/pkg/printers"
)

// Month prints the padded grid for one month plus the selected day's
// events.
type Month struct {
	On     time.Time
	ShowID bool

	Service *app.Service
}

func (n *Month) Do(ctx context.Context) error {
	if n.On.IsZero() {
		n.On = time.Now()
	}

	events, err := n.Service.Events(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Month(n.On, events...)

	day, err := n.Service.On(ctx, n.On)
	if err != nil {
		return err
	}
	if len(day) > 0 {
		pp.Title(n.On.Format("January 2, 2006"))
		pp.Day(day...)
	}
	return nil
}
