package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/schedule"
	"tableflip.dev/studyplan/pkg/view"
)

const (
	layoutDate     = "Jan 2, 2006"
	layoutDateTime = "Jan 2, 2006 3:04 PM"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Tasks renders a task table: status mark, title, priority badge, subject,
// and how long until the due date.
func (pp *PrettyPrint) Tasks(now time.Time, tasks ...*planner.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		mark := "●"
		if t.Completed {
			mark = "✘"
		}
		row := []interface{}{
			mark,
			t.Title,
			badge(t.Priority),
			t.Subject,
			t.DueDate.Local().Format(layoutDateTime),
			view.TimeUntil(t.DueDate.Time, now),
		}
		if pp.ShowID {
			row = append([]interface{}{t.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Goals renders each goal with a progress bar.
func (pp *PrettyPrint) Goals(goals ...*planner.Goal) {
	if len(goals) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range goals {
		row := []interface{}{
			progressBar(g.Progress),
			fmt.Sprintf("%3d%%", g.Progress),
			g.Title,
			"target " + g.TargetDate.Local().Format(layoutDate),
		}
		if pp.ShowID {
			row = append([]interface{}{g.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Reminders renders the reminder table with trigger state.
func (pp *PrettyPrint) Reminders(reminders ...*planner.Reminder) {
	if len(reminders) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, r := range reminders {
		mark := "○"
		if r.Triggered {
			mark = "✘"
		}
		row := []interface{}{
			mark,
			r.Title,
			r.Message,
			r.DateTime.Local().Format(layoutDateTime),
		}
		if pp.ShowID {
			row = append([]interface{}{r.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Timeline renders the merged task and goal sequence.
func (pp *PrettyPrint) Timeline(items ...view.TimelineItem) {
	if len(items) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, item := range items {
		status := ""
		switch {
		case item.Completed:
			status = "done"
		case item.Overdue:
			status = color.New(color.FgHiRed).Sprint("overdue")
		}
		detail := badge(item.Priority)
		if item.Kind == view.KindGoal {
			detail = fmt.Sprintf("%d%%", item.Progress)
		}
		row := []interface{}{
			string(item.Kind),
			item.Title,
			detail,
			item.Date.Local().Format(layoutDateTime),
			status,
		}
		if pp.ShowID {
			row = append([]interface{}{item.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Stats renders the dashboard counters and the overall completion bar.
func (pp *PrettyPrint) Stats(s view.Stats, ratio int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("tasks", s.TotalTasks)
	tbl.AddRow("completed", s.CompletedTasks)
	tbl.AddRow("pending", s.PendingTasks)
	tbl.AddRow("goals", s.TotalGoals)
	_, _ = fmt.Fprintln(color.Output, tbl)

	fmt.Printf("%s %d%%\n\n", progressBar(ratio), ratio)
}

// Notification prints a fired reminder the way the web planner's alert
// banner did: bold title, then message.
func (pp *PrettyPrint) Notification(n schedule.Notification) {
	b := color.New(color.Bold, color.FgHiYellow)
	_, _ = b.Printf("⏰ %s\n", n.Title)
	if n.Message != "" {
		fmt.Printf("   %s\n", n.Message)
	}
	fmt.Println("")
}

func badge(p planner.Priority) string {
	label := strings.ToUpper(string(p))
	switch view.PriorityColor(p) {
	case view.ColorInfo:
		return color.New(color.FgHiCyan).Sprint(label)
	case view.ColorWarning:
		return color.New(color.FgHiYellow).Sprint(label)
	case view.ColorDanger:
		return color.New(color.FgHiRed).Sprint(label)
	default:
		return color.New(color.Faint).Sprint(label)
	}
}

func progressBar(progress int) string {
	progress = planner.ClampProgress(progress)
	const width = 20
	filled := progress * width / 100
	return "[" + strings.Repeat("█", filled) + strings.Repeat("─", width-filled) + "]"
}
