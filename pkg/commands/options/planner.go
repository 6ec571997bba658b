// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// TaskOptions captures the fields of the add-task form.
type TaskOptions struct {
	Title       string
	Description string
	Due         string
	Priority    string
	Subject     string
}

// AddTaskArgs wires task creation flags on the provided command.
func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Due, "due", "d", "",
		"Due date, e.g. '2026-09-01 17:00'.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Priority: low, medium, or high.")
	cmd.Flags().StringVarP(&o.Subject, "subject", "s", "",
		"Subject the task belongs to.")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Longer task description.")
}

// GoalOptions captures the fields of the add-goal form.
type GoalOptions struct {
	Title       string
	Description string
	Target      string
	Progress    int
}

// AddGoalArgs wires goal creation flags on the provided command.
func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVarP(&o.Target, "target", "t", "",
		"Target date, e.g. '2026-12-01'.")
	cmd.Flags().IntVar(&o.Progress, "progress", 0,
		"Starting progress percentage (clamped to 0-100).")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Longer goal description.")
}

// ReminderOptions captures the fields of the add-reminder form.
type ReminderOptions struct {
	Title   string
	Message string
	At      string
}

// AddReminderArgs wires reminder creation flags on the provided command.
func AddReminderArgs(cmd *cobra.Command, o *ReminderOptions) {
	cmd.Flags().StringVarP(&o.At, "at", "a", "",
		"When to fire, e.g. '2026-09-01 08:00'.")
	cmd.Flags().StringVarP(&o.Message, "message", "m", "",
		"Message shown with the notification.")
}

// FilterOptions selects a slice of the task list.
type FilterOptions struct {
	Filter string
	Within string
	Limit  int
}

// AddFilterArgs wires task filter flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Filter, "filter", "f", "all",
		"Filter tasks: all, pending, or completed.")
}

// AddWindowArgs wires the deadline window flags on the provided command.
func AddWindowArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Within, "within", "w", "",
		"Only include deadlines within this window, e.g. 1w or 3d.")
	cmd.Flags().IntVar(&o.Limit, "limit", 0,
		"Maximum deadlines to show (default 5).")
}

// ConfirmOptions skips destructive-operation prompts.
type ConfirmOptions struct {
	Yes bool
}

// AddConfirmArgs wires the confirmation flag on the provided command.
func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Skip the confirmation prompt.")
}
