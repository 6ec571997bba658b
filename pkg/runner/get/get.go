// Package get provides the runners for the planner's read-side views.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/printers"
	"tableflip.dev/studyplan/pkg/quote"
	"tableflip.dev/studyplan/pkg/view"
)

// View selects which projection to print.
type View string

const (
	ViewTasks     View = "tasks"
	ViewGoals     View = "goals"
	ViewReminders View = "reminders"
	ViewToday     View = "today"
	ViewUpcoming  View = "upcoming"
	ViewTimeline  View = "timeline"
	ViewStats     View = "stats"
)

// Get prints one of the planner's derived views.
type Get struct {
	ShowID   bool
	Store    *planner.Store
	Identity *auth.Identity

	View   View
	Filter string // all, pending, completed
	Within time.Duration
	Limit  int
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no store")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	now := time.Now()
	fmt.Println("")

	switch n.View {
	case ViewTasks:
		tasks := filterTasks(n.Store.Tasks(), n.Filter)
		pp.TitleWithCount("Tasks", len(tasks))
		pp.Tasks(now, tasks...)

	case ViewGoals:
		goals := n.Store.Goals()
		pp.TitleWithCount("Goals", len(goals))
		pp.Goals(goals...)

	case ViewReminders:
		reminders := n.Store.Reminders()
		pp.TitleWithCount("Reminders", len(reminders))
		pp.Reminders(reminders...)

	case ViewToday:
		tasks := view.TodayTasks(n.Store.Tasks(), now)
		pp.TitleWithCount("Today", len(tasks))
		pp.Tasks(now, tasks...)

	case ViewUpcoming:
		tasks := view.UpcomingDeadlines(n.Store.Tasks(), now, n.Limit)
		if n.Within > 0 {
			cutoff := now.Add(n.Within)
			kept := tasks[:0]
			for _, t := range tasks {
				if !t.DueDate.After(cutoff) {
					kept = append(kept, t)
				}
			}
			tasks = kept
		}
		pp.TitleWithCount("Upcoming deadlines", len(tasks))
		pp.Tasks(now, tasks...)

	case ViewTimeline:
		items := view.Timeline(n.Store.Tasks(), n.Store.Goals(), now)
		pp.TitleWithCount("Timeline", len(items))
		pp.Timeline(items...)

	case ViewStats:
		n.dashboard(pp, now)

	default:
		return fmt.Errorf("unknown view %q", n.View)
	}

	return nil
}

// dashboard mirrors the web planner's landing page: greeting, daily quote,
// counters, today's tasks, and upcoming deadlines.
func (n *Get) dashboard(pp printers.PrettyPrint, now time.Time) {
	if n.Identity != nil {
		pp.Title(fmt.Sprintf("%s Welcome back, %s!", quote.Greeting(now), n.Identity.FirstName))
	} else {
		pp.Title(quote.Greeting(now))
	}
	q := quote.Daily(now)
	fmt.Printf("%q - %s\n\n", q.Text, q.Author)

	tasks := n.Store.Tasks()
	goals := n.Store.Goals()

	pp.Stats(view.Statistics(tasks, goals), view.ProgressRatio(tasks))

	today := view.TodayTasks(tasks, now)
	pp.TitleWithCount("Today", len(today))
	pp.Tasks(now, today...)

	upcoming := view.UpcomingDeadlines(tasks, now, n.Limit)
	pp.TitleWithCount("Upcoming deadlines", len(upcoming))
	pp.Tasks(now, upcoming...)
}

func filterTasks(tasks []*planner.Task, filter string) []*planner.Task {
	switch filter {
	case "pending":
		kept := make([]*planner.Task, 0, len(tasks))
		for _, t := range tasks {
			if !t.Completed {
				kept = append(kept, t)
			}
		}
		return kept
	case "completed":
		kept := make([]*planner.Task, 0, len(tasks))
		for _, t := range tasks {
			if t.Completed {
				kept = append(kept, t)
			}
		}
		return kept
	default:
		return tasks
	}
}
