package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/runner/info"
	"tableflip.dev/studyplan/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show config and stored records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}

			r := info.Info{
				Config:      cfg,
				Persistence: p,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
