package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/get"
	"tableflip.dev/studyplan/pkg/timeutil"
)

var getViews = []get.View{
	get.ViewTasks,
	get.ViewGoals,
	get.ViewReminders,
	get.ViewToday,
	get.ViewUpcoming,
	get.ViewTimeline,
	get.ViewStats,
}

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get [view]",
		Short: "Print a planner view",
		Example: `
studyplan get tasks --filter pending
studyplan get upcoming --within 1w
studyplan get stats
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	for _, v := range getViews {
		addGetView(cmd, v)
	}

	topLevel.AddCommand(cmd)
}

func addGetView(topLevel *cobra.Command, v get.View) {
	io := &options.IDOptions{}
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   string(v),
		Short: fmt.Sprintf("Print the %s view", v),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, id, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			var within time.Duration
			if fo.Within != "" {
				within, err = timeutil.ParseWindow(fo.Within)
				if err != nil {
					return output.HandleError(err)
				}
			}

			r := get.Get{
				ShowID:   io.ShowID,
				Store:    s,
				Identity: id,
				View:     v,
				Filter:   fo.Filter,
				Within:   within,
				Limit:    fo.Limit,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	if v == get.ViewTasks {
		options.AddFilterArgs(cmd, fo)
	}
	if v == get.ViewUpcoming {
		options.AddWindowArgs(cmd, fo)
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
