package agenda

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"almanac/pkg/app"
	"almanac/pkg/printers"
)

// Agenda prints every event grouped by day, chronologically.
type Agenda struct {
	JSON   bool
	ShowID bool

	Service *app.Service
}

func (n *Agenda) Do(ctx context.Context) error {
	grouped, keys, err := n.Service.Agenda(ctx)
	if err != nil {
		return err
	}

	if n.JSON {
		events, err := n.Service.Events(ctx)
		if err != nil {
			return err
		}
		b, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Agenda(grouped, keys)
	return nil
}
