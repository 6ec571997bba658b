// Package view computes derived read-side projections from planner
// snapshots. Every function is pure: views are recomputed in full on each
// call rather than maintained incrementally, since the collections are small
// and recomputation cannot go stale.
package view

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
)

// DefaultDeadlineLimit caps the upcoming-deadlines view when the caller does
// not ask for a specific count.
const DefaultDeadlineLimit = 5

// Stats summarizes the dashboard counters.
type Stats struct {
	TotalTasks     int
	CompletedTasks int
	PendingTasks   int
	TotalGoals     int
}

// Statistics counts tasks by completion plus the goal total.
func Statistics(tasks []*planner.Task, goals []*planner.Goal) Stats {
	s := Stats{TotalTasks: len(tasks), TotalGoals: len(goals)}
	for _, t := range tasks {
		if t.Completed {
			s.CompletedTasks++
		}
	}
	s.PendingTasks = s.TotalTasks - s.CompletedTasks
	return s
}

// TodayTasks returns the incomplete tasks due within [midnight, midnight+24h)
// of now, in collection order.
func TodayTasks(tasks []*planner.Task, now time.Time) []*planner.Task {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	today := make([]*planner.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed {
			continue
		}
		due := t.DueDate.Time
		if !due.Before(start) && due.Before(end) {
			today = append(today, t)
		}
	}
	return today
}

// UpcomingDeadlines returns the incomplete tasks due strictly after now,
// ascending by due date, truncated to limit. Ties keep collection order.
// A non-positive limit falls back to DefaultDeadlineLimit.
func UpcomingDeadlines(tasks []*planner.Task, now time.Time, limit int) []*planner.Task {
	if limit <= 0 {
		limit = DefaultDeadlineLimit
	}

	upcoming := make([]*planner.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Completed || !t.DueDate.After(now) {
			continue
		}
		upcoming = append(upcoming, t)
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate.Time)
	})
	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// ProgressRatio is the completed percentage over all tasks, rounded to the
// nearest whole number, and 0 when there are no tasks.
func ProgressRatio(tasks []*planner.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}
	return int(float64(completed)/float64(len(tasks))*100 + 0.5)
}

// ItemKind tags a timeline entry as a task or a goal.
type ItemKind string

const (
	KindTask ItemKind = "task"
	KindGoal ItemKind = "goal"
)

// TimelineItem is a task or goal flattened for the merged timeline view.
type TimelineItem struct {
	Kind        ItemKind
	ID          int64
	Title       string
	Description string
	Date        time.Time
	Priority    planner.Priority
	Progress    int
	Completed   bool
	Overdue     bool
}

// Timeline merges tasks and goals into one sequence sorted ascending by due
// or target date. An item is overdue when its date has passed and it is not
// complete; a goal at 100% counts as complete.
func Timeline(tasks []*planner.Task, goals []*planner.Goal, now time.Time) []TimelineItem {
	items := make([]TimelineItem, 0, len(tasks)+len(goals))
	for _, t := range tasks {
		items = append(items, TimelineItem{
			Kind:        KindTask,
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Date:        t.DueDate.Time,
			Priority:    t.Priority,
			Completed:   t.Completed,
		})
	}
	for _, g := range goals {
		items = append(items, TimelineItem{
			Kind:        KindGoal,
			ID:          g.ID,
			Title:       g.Title,
			Description: g.Description,
			Date:        g.TargetDate.Time,
			Progress:    g.Progress,
			Completed:   g.Progress == 100,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
	for i := range items {
		items[i].Overdue = items[i].Date.Before(now) && !items[i].Completed
	}
	return items
}

// Color is a presentation token for badge rendering.
type Color string

const (
	ColorInfo      Color = "info"
	ColorWarning   Color = "warning"
	ColorDanger    Color = "danger"
	ColorSecondary Color = "secondary"
)

// PriorityColor maps a task priority to its badge color. Unknown priorities
// fall back to the neutral token rather than failing.
func PriorityColor(p planner.Priority) Color {
	switch p {
	case planner.PriorityLow:
		return ColorInfo
	case planner.PriorityMedium:
		return ColorWarning
	case planner.PriorityHigh:
		return ColorDanger
	default:
		return ColorSecondary
	}
}

// TimeUntil renders the distance to a date as one of four categories:
// overdue, whole days left, whole hours left, or due soon. Days and hours
// round down.
func TimeUntil(date, now time.Time) string {
	diff := date.Sub(now)
	if diff < 0 {
		return "Overdue"
	}

	days := int(diff / (24 * time.Hour))
	hours := int((diff % (24 * time.Hour)) / time.Hour)

	if days > 0 {
		return fmt.Sprintf("%d %s left", days, plural(days, "day"))
	}
	if hours > 0 {
		return fmt.Sprintf("%d %s left", hours, plural(hours, "hour"))
	}
	return "Due soon"
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
