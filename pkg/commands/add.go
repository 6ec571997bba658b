package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/studyplan/pkg/commands/options"
	"tableflip.dev/studyplan/pkg/runner/add"
	"tableflip.dev/studyplan/pkg/timeutil"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something",
		Example: `
studyplan add task finish chapter 4 --due "2026-09-01 17:00" --priority high --subject math
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTask(cmd)
	addGoal(cmd)
	addReminder(cmd)

	topLevel.AddCommand(cmd)
}

func addTask(topLevel *cobra.Command) {
	to := &options.TaskOptions{}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Add a task",
		Example: `
studyplan add task read chapter 4 --due "2026-09-01 17:00" --priority high --subject math
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a task title")
			}
			to.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			due, err := timeutil.ParseWhen(to.Due)
			if err != nil {
				return output.HandleError(err)
			}

			r := add.Task{
				Store:       s,
				Title:       to.Title,
				Description: to.Description,
				Due:         due,
				Priority:    to.Priority,
				Subject:     to.Subject,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddTaskArgs(cmd, to)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoal(topLevel *cobra.Command) {
	gopts := &options.GoalOptions{}

	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Add a goal",
		Example: `
studyplan add goal pass the algebra final --target 2026-12-01 --progress 10
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a goal title")
			}
			gopts.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			target, err := timeutil.ParseWhen(gopts.Target)
			if err != nil {
				return output.HandleError(err)
			}

			r := add.Goal{
				Store:       s,
				Title:       gopts.Title,
				Description: gopts.Description,
				Target:      target,
				Progress:    gopts.Progress,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddGoalArgs(cmd, gopts)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addReminder(topLevel *cobra.Command) {
	ro := &options.ReminderOptions{}

	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Add a reminder",
		Example: `
studyplan add reminder mock exam --at "2026-09-01 08:00" --message "bring a calculator"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a reminder title")
			}
			ro.Title = strings.Join(args, " ")

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, _, err := loadSession()
			if err != nil {
				return output.HandleError(err)
			}

			at, err := timeutil.ParseWhen(ro.At)
			if err != nil {
				return output.HandleError(err)
			}

			r := add.Reminder{
				Store:   s,
				Title:   ro.Title,
				Message: ro.Message,
				Due:     at,
			}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	options.AddReminderArgs(cmd, ro)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
