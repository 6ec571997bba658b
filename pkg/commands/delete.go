package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task or goal",
		Example: `
studyplan delete task <id>
studyplan delete goal <id> --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addDeleteKind(cmd, remove.KindTask)
	addDeleteKind(cmd, remove.KindGoal)

	topLevel.AddCommand(cmd)
}

func addDeleteKind(topLevel *cobra.Command, kind remove.Kind) {
	io := &options.IDOptions{}
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   string(kind),
		Short: fmt.Sprintf("Delete a %s", kind),
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return fmt.Errorf("requires a %s id", kind)
			}
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%s id must be a number", kind)
			}
			io.ID = id

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			// The store deletes unconditionally; confirmation happens here.
			if !co.Yes {
				fmt.Printf("Are you sure you want to delete %s %d? (y/N): ", kind, io.ID)
				reader := bufio.NewReader(cmd.InOrStdin())
				answer, _ := reader.ReadString('\n')
				answer = strings.ToLower(strings.TrimSpace(answer))
				if answer != "y" && answer != "yes" {
					return errors.New("aborted")
				}
			}

			s, _, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			r := remove.Remove{
				Kind:  kind,
				ID:    io.ID,
				Store: s,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
