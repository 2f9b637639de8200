package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"almanac/pkg/commands/options"
	"almanac/pkg/runner/month"
)

func addMonth(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the month grid",
		Example: `
almanac month
almanac month --on="2026-3-1"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			on, err := oo.GetOn()
			if err != nil {
				return err
			}

			s := month.Month{
				ShowID:  io.ShowID,
				Service: svc,
			}
			if on != nil {
				s.On = *on
			} else {
				s.On = time.Now()
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
