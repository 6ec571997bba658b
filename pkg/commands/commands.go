package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "studyplan",
		Short: "Plan study tasks, goals, and reminders from the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSignup(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addWhoami(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addToggle(topLevel)
	addDelete(topLevel)
	addProgress(topLevel)
	addRemind(topLevel)
	addUI(topLevel)
	addInfo(topLevel)
	addVersion(topLevel)
}
