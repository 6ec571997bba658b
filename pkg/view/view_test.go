package view

import (
	"testing"
	"time"

	"tableflip.dev/studyplan/pkg/planner"
)

func ts(t time.Time) planner.Timestamp {
	return planner.Timestamp{Time: t}
}

func task(id int64, title string, due time.Time, completed bool) *planner.Task {
	return &planner.Task{
		ID:        id,
		Title:     title,
		DueDate:   ts(due),
		Priority:  planner.PriorityMedium,
		Completed: completed,
	}
}

func TestStatistics(t *testing.T) {
	now := time.Now()
	tasks := []*planner.Task{
		task(1, "a", now, true),
		task(2, "b", now, false),
		task(3, "c", now, false),
	}
	goals := []*planner.Goal{{ID: 4}, {ID: 5}}

	s := Statistics(tasks, goals)
	if s.TotalTasks != 3 || s.CompletedTasks != 1 || s.PendingTasks != 2 || s.TotalGoals != 2 {
		t.Fatalf("unexpected stats: %+v", s)
	}

	empty := Statistics(nil, nil)
	if empty.TotalTasks != 0 || empty.PendingTasks != 0 {
		t.Fatalf("empty snapshot must produce zero counts: %+v", empty)
	}
}

func TestTodayTasks(t *testing.T) {
	now := time.Date(2026, 8, 28, 14, 0, 0, 0, time.Local)
	midnight := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)

	tasks := []*planner.Task{
		task(1, "earlier today", midnight.Add(9*time.Hour), false),
		task(2, "late tonight", midnight.Add(23*time.Hour+59*time.Minute), false),
		task(3, "yesterday", midnight.Add(-time.Hour), false),
		task(4, "tomorrow", midnight.Add(24*time.Hour), false),
		task(5, "done today", midnight.Add(10*time.Hour), true),
		task(6, "exactly midnight", midnight, false),
	}

	today := TodayTasks(tasks, now)
	if len(today) != 3 {
		t.Fatalf("expected 3 tasks today, got %d", len(today))
	}
	// Collection order is preserved.
	if today[0].ID != 1 || today[1].ID != 2 || today[2].ID != 6 {
		t.Fatalf("unexpected order: %d %d %d", today[0].ID, today[1].ID, today[2].ID)
	}
}

func TestUpcomingDeadlines(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	tasks := []*planner.Task{
		task(1, "in three days", now.AddDate(0, 0, 3), false),
		task(2, "in one day", now.AddDate(0, 0, 1), false),
		task(3, "past", now.Add(-time.Hour), false),
		task(4, "done", now.AddDate(0, 0, 2), true),
		task(5, "in two days", now.AddDate(0, 0, 2), false),
	}

	got := UpcomingDeadlines(tasks, now, 0)
	if len(got) != 3 {
		t.Fatalf("expected 3 upcoming tasks, got %d", len(got))
	}
	if got[0].ID != 2 || got[1].ID != 5 || got[2].ID != 1 {
		t.Fatalf("expected ascending due dates, got %d %d %d", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestUpcomingDeadlinesLimit(t *testing.T) {
	now := time.Now()
	var tasks []*planner.Task
	for i := 1; i <= 8; i++ {
		tasks = append(tasks, task(int64(i), "t", now.AddDate(0, 0, i), false))
	}

	if got := UpcomingDeadlines(tasks, now, 0); len(got) != DefaultDeadlineLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultDeadlineLimit, len(got))
	}
	if got := UpcomingDeadlines(tasks, now, 2); len(got) != 2 {
		t.Fatalf("expected 2, got %d", len(got))
	}
}

func TestProgressRatio(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"no tasks", 0, 0, 0},
		{"none done", 0, 4, 0},
		{"all done", 4, 4, 100},
		{"one third rounds", 1, 3, 33},
		{"two thirds rounds", 2, 3, 67},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var tasks []*planner.Task
			for i := 0; i < tc.total; i++ {
				tasks = append(tasks, task(int64(i), "t", now, i < tc.completed))
			}
			if got := ProgressRatio(tasks); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestTimeline(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	tasks := []*planner.Task{
		task(1, "overdue task", now.Add(-48*time.Hour), false),
		task(2, "future task", now.Add(72*time.Hour), false),
		task(3, "finished task", now.Add(-24*time.Hour), true),
	}
	goals := []*planner.Goal{
		{ID: 4, Title: "midway goal", TargetDate: ts(now.Add(24 * time.Hour)), Progress: 50},
		{ID: 5, Title: "done goal", TargetDate: ts(now.Add(-12 * time.Hour)), Progress: 100},
	}

	items := Timeline(tasks, goals, now)
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}

	wantOrder := []int64{1, 3, 5, 4, 2}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Fatalf("position %d: expected id %d, got %d", i, want, items[i].ID)
		}
	}

	if !items[0].Overdue {
		t.Fatalf("incomplete past task must be overdue")
	}
	if items[1].Overdue {
		t.Fatalf("completed task is never overdue")
	}
	if items[2].Overdue {
		t.Fatalf("goal at 100%% is complete, never overdue")
	}
	if items[2].Kind != KindGoal || items[0].Kind != KindTask {
		t.Fatalf("items must be tagged with their kind")
	}
}

func TestPriorityColor(t *testing.T) {
	tests := []struct {
		p    planner.Priority
		want Color
	}{
		{planner.PriorityLow, ColorInfo},
		{planner.PriorityMedium, ColorWarning},
		{planner.PriorityHigh, ColorDanger},
		{planner.Priority("urgent"), ColorSecondary},
		{planner.Priority(""), ColorSecondary},
	}
	for _, tc := range tests {
		if got := PriorityColor(tc.p); got != tc.want {
			t.Fatalf("PriorityColor(%q): expected %q, got %q", tc.p, tc.want, got)
		}
	}
}

func TestTimeUntil(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"past", now.Add(-time.Minute), "Overdue"},
		{"several days", now.Add(72*time.Hour + 30*time.Minute), "3 days left"},
		{"single day", now.Add(25 * time.Hour), "1 day left"},
		{"hours", now.Add(5 * time.Hour), "5 hours left"},
		{"single hour", now.Add(90 * time.Minute), "1 hour left"},
		{"minutes only", now.Add(30 * time.Minute), "Due soon"},
		{"exactly now", now, "Due soon"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeUntil(tc.date, now); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
