package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/progress"
)

func addProgress(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	value := 0

	cmd := &cobra.Command{
		Use:   "progress <goal id> <value>",
		Short: "Set a goal's progress percentage",
		Example: `
studyplan progress <goal id> 60
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires a goal id and a progress value")
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return errors.New("goal id must be a number")
			}
			io.ID = id
			value, err = strconv.Atoi(args[1])
			if err != nil {
				return errors.New("progress must be a number")
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			r := progress.Progress{
				ID:    io.ID,
				Value: value,
				Store: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
