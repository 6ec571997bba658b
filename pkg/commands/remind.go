package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/runner/remind"
)

func addRemind(topLevel *cobra.Command) {
	interval := time.Minute
	once := false

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Watch for due reminders and print notifications",
		Example: `
studyplan remind
studyplan remind --once
studyplan remind --interval 10s
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			r := remind.Remind{
				Store:    s,
				Interval: interval,
				Once:     once,
			}
			return output.HandleError(r.Do(ctx))
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Minute,
		"How often to sweep for due reminders.")
	cmd.Flags().BoolVar(&once, "once", false,
		"Run a single sweep and exit.")

	topLevel.AddCommand(cmd)
}
