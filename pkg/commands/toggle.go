package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "toggle",
		Aliases: []string{"complete", "done"},
		Short:   "Toggle a task's completed flag",
		Example: `
studyplan toggle <task id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task id")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("task id must be a number")
			}
			io.ID = id

			return nil
		},

		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			r := toggle.Toggle{
				ID:    io.ID,
				Store: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
