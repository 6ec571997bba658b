// Package add provides the runners that create tasks, goals, and reminders.
package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
)

// Task creates a task and reprints the task list.
type Task struct {
	Store *planner.Store

	Title       string
	Description string
	Due         time.Time
	Priority    string
	Subject     string
}

func (n *Task) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	priority, err := planner.ParsePriority(n.Priority)
	if err != nil {
		return err
	}

	if _, err := n.Store.AddTask(n.Title, n.Description, n.Due, priority, n.Subject); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Tasks")
	pp.Tasks(time.Now(), n.Store.Tasks()...)
	return nil
}

// Goal creates a goal and reprints the goal list.
type Goal struct {
	Store *planner.Store

	Title       string
	Description string
	Target      time.Time
	Progress    int
}

func (n *Goal) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	if _, err := n.Store.AddGoal(n.Title, n.Description, n.Target, n.Progress); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Goals")
	pp.Goals(n.Store.Goals()...)
	return nil
}

// Reminder creates a reminder and reprints the reminder list.
type Reminder struct {
	Store *planner.Store

	Title   string
	Message string
	Due     time.Time
}

func (n *Reminder) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}

	if _, err := n.Store.AddReminder(n.Title, n.Due, n.Message); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("Reminders")
	pp.Reminders(n.Store.Reminders()...)
	return nil
}
