package commands

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"almanac/pkg/runner/export"
)

func addExport(topLevel *cobra.Command) {
	out := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all events as iCalendar",
		Example: `
almanac export > calendar.ics
almanac export --output calendar.ics
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			w := os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			s := export.Export{Out: w, Service: svc}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to a file instead of stdout.")
	topLevel.AddCommand(cmd)
}
