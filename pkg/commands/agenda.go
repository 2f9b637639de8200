package commands

import (
	"context"

	"github.com/spf13/cobra"

	"almanac/pkg/commands/options"
	"almanac/pkg/runner/agenda"
)

func addAgenda(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "List all events grouped by day",
		Example: `
almanac agenda
almanac agenda --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			s := agenda.Agenda{
				JSON:    output.JSON,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
