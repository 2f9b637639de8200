package options

import (
	"time"

	"github.com/spf13/cobra"

	"almanac/pkg/event"
)

// EventOptions collects the event field flags shared by the mutating
// commands. Times stay as raw strings until the command parses them, so
// unset flags are distinguishable from bad input.
type EventOptions struct {
	Title       string
	Description string
	StartString string
	EndString   string
	Color       string
	Category    string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVar(&o.StartString, "start", "",
		`Event start, example: --start="2026-03-02T09:00".`)
	cmd.Flags().StringVar(&o.EndString, "end", "",
		`Event end, example: --end="2026-03-02T10:00".`)
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Free-form event description.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Display color as a hex tag, example: --color="#3b82f6".`)
	cmd.Flags().StringVar(&o.Category, "category", "",
		"Event category label.")
}

// GetStart parses the start flag; unset comes back as the zero time so
// validation can report it as missing.
func (o *EventOptions) GetStart() (time.Time, error) {
	if o.StartString == "" {
		return time.Time{}, nil
	}
	return event.ParseTime(o.StartString)
}

// GetEnd parses the end flag like GetStart.
func (o *EventOptions) GetEnd() (time.Time, error) {
	if o.EndString == "" {
		return time.Time{}, nil
	}
	return event.ParseTime(o.EndString)
}
