package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"almanac/pkg/app"
	"almanac/pkg/calendar"
	tuiapp "almanac/pkg/tui/app"
)

// UI launches the interactive calendar.
type UI struct {
	Service     *app.Service
	InitialView calendar.View
}

func (n *UI) Do(ctx context.Context) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("ui: stdout is not a terminal")
	}
	return tuiapp.Run(n.Service, n.InitialView)
}
