package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	interval := time.Minute

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Example: `
studyplan ui
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, s, id, err := loadSessionPersistence()
			if err != nil {
				return output.HandleError(err)
			}

			r := ui.UI{
				Store:       s,
				Identity:    id,
				Persistence: p,
				Interval:    interval,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Minute,
		"How often to sweep for due reminders.")

	topLevel.AddCommand(cmd)
}
