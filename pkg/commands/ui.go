package commands

import (
	"context"

	"github.com/spf13/cobra"

	"almanac/pkg/calendar"
	"almanac/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	view := ""

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive calendar",
		Example: `
almanac ui
almanac ui --view week
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, initial, err := loadService()
			if err != nil {
				return err
			}
			if view != "" {
				initial = calendar.ParseView(view)
			}

			i := ui.UI{Service: svc, InitialView: initial}
			return i.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&view, "view", "", "Initial view: month, week, or list.")
	topLevel.AddCommand(cmd)
}
