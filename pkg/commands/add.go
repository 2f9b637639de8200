package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"almanac/pkg/commands/options"
	"almanac/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an event",
		Example: `
almanac add "Team sync" --start="2026-03-02T09:00" --end="2026-03-02T09:30"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			eo.Title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := loadService()
			if err != nil {
				return err
			}

			start, err := eo.GetStart()
			if err != nil {
				return output.HandleError(err)
			}
			end, err := eo.GetEnd()
			if err != nil {
				return output.HandleError(err)
			}

			s := add.Add{
				Title:       eo.Title,
				Description: eo.Description,
				Start:       start,
				End:         end,
				Color:       eo.Color,
				Category:    eo.Category,
				ShowID:      io.ShowID,
				Service:     svc,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
