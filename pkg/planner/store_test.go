package planner

import (
	"errors"
	"testing"
	"time"
)

type fakePersistence struct {
	tasks     []*Task
	goals     []*Goal
	reminders []*Reminder

	failWrites bool
	taskWrites int
}

func (f *fakePersistence) Tasks() ([]*Task, error)         { return f.tasks, nil }
func (f *fakePersistence) Goals() ([]*Goal, error)         { return f.goals, nil }
func (f *fakePersistence) Reminders() ([]*Reminder, error) { return f.reminders, nil }

func (f *fakePersistence) SaveTasks(tasks []*Task) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	f.taskWrites++
	f.tasks = tasks
	return nil
}

func (f *fakePersistence) SaveGoals(goals []*Goal) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	f.goals = goals
	return nil
}

func (f *fakePersistence) SaveReminders(reminders []*Reminder) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	f.reminders = reminders
	return nil
}

func newTestStore(t *testing.T) (*Store, *fakePersistence) {
	t.Helper()
	f := &fakePersistence{}
	s, err := New(f)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s, f
}

func TestAddTask(t *testing.T) {
	s, f := newTestStore(t)
	due := time.Date(2026, 9, 1, 17, 0, 0, 0, time.Local)

	task, err := s.AddTask("read chapter 4", "sections 4.1-4.3", due, PriorityHigh, "math")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID == 0 {
		t.Fatalf("expected a fresh id")
	}
	if task.Completed {
		t.Fatalf("new tasks start incomplete")
	}
	if len(s.Tasks()) != 1 {
		t.Fatalf("expected 1 task, got %d", len(s.Tasks()))
	}
	if f.taskWrites != 1 {
		t.Fatalf("expected a write-through, got %d writes", f.taskWrites)
	}
}

func TestAddTaskUniqueIDs(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2026, 8, 28, 10, 0, 0, 0, time.Local)
	s.now = func() time.Time { return fixed }

	due := fixed.Add(24 * time.Hour)
	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		task, err := s.AddTask("task", "", due, PriorityLow, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("duplicate id %d", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestAddTaskValidation(t *testing.T) {
	s, f := newTestStore(t)
	due := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		title string
		due   time.Time
	}{
		{"empty title", "", due},
		{"whitespace title", "   ", due},
		{"zero due date", "read", time.Time{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddTask(tc.title, "", tc.due, PriorityMedium, "")
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if len(s.Tasks()) != 0 {
				t.Fatalf("collection must be unchanged")
			}
			if f.taskWrites != 0 {
				t.Fatalf("nothing may be persisted on validation failure")
			}
		})
	}
}

func TestToggleTaskInvolution(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.AddTask("read", "", time.Now().Add(time.Hour), PriorityMedium, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	toggled, err := s.ToggleTask(task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.Completed {
		t.Fatalf("expected completed after first toggle")
	}

	toggled, err = s.ToggleTask(task.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.Completed {
		t.Fatalf("expected pending after second toggle")
	}
}

func TestToggleTaskNotFound(t *testing.T) {
	s, _ := newTestStore(t)
	_, err := s.ToggleTask(42)
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.AddTask("read", "", time.Now().Add(time.Hour), PriorityMedium, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.DeleteTask(999); err == nil {
		t.Fatalf("expected NotFoundError for unknown id")
	}
	if len(s.Tasks()) != 1 {
		t.Fatalf("failed delete must not change the collection")
	}

	if err := s.DeleteTask(task.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Tasks()) != 0 {
		t.Fatalf("expected empty collection after delete")
	}
}

func TestGoalProgressClamped(t *testing.T) {
	s, _ := newTestStore(t)
	goal, err := s.AddGoal("finish algebra", "", time.Now().Add(24*time.Hour), 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Progress != 100 {
		t.Fatalf("creation must clamp progress, got %d", goal.Progress)
	}

	goal, err = s.SetGoalProgress(goal.ID, -1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Progress != 0 {
		t.Fatalf("expected progress clamped to 0, got %d", goal.Progress)
	}

	goal, err = s.SetGoalProgress(goal.ID, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Progress != 100 {
		t.Fatalf("expected progress clamped to 100, got %d", goal.Progress)
	}

	goal, err = s.SetGoalProgress(goal.ID, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if goal.Progress != 60 {
		t.Fatalf("expected progress 60, got %d", goal.Progress)
	}
}

func TestAddReminderValidation(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.AddReminder("", time.Now(), "msg"); err == nil {
		t.Fatalf("expected error for empty title")
	}
	if _, err := s.AddReminder("exam", time.Time{}, "msg"); err == nil {
		t.Fatalf("expected error for zero time")
	}
}

func TestTriggerDueRemindersOnce(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Now()

	past, err := s.AddReminder("past", now.Add(-time.Hour), "already due")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AddReminder("future", now.Add(time.Hour), "not yet"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fired, err := s.TriggerDueReminders(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fired) != 1 || fired[0].ID != past.ID {
		t.Fatalf("expected only the past reminder to fire, got %v", fired)
	}
	if !fired[0].Triggered {
		t.Fatalf("fired reminder must be marked triggered")
	}

	fired, err = s.TriggerDueReminders(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fired) != 0 {
		t.Fatalf("a reminder must fire at most once, got %d", len(fired))
	}
}

func TestTriggerDueRemindersCollectionOrder(t *testing.T) {
	s, _ := newTestStore(t)
	now := time.Now()

	first, _ := s.AddReminder("first", now.Add(-2*time.Hour), "")
	second, _ := s.AddReminder("second", now.Add(-time.Hour), "")

	fired, err := s.TriggerDueReminders(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fired) != 2 || fired[0].ID != first.ID || fired[1].ID != second.ID {
		t.Fatalf("reminders due in the same sweep fire in collection order")
	}
}

func TestWriteFailureSurfacesAndKeepsMemory(t *testing.T) {
	s, f := newTestStore(t)
	task, err := s.AddTask("read", "", time.Now().Add(time.Hour), PriorityMedium, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.failWrites = true
	_, err = s.ToggleTask(task.ID)
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if !s.Tasks()[0].Completed {
		t.Fatalf("in-memory mutation is kept when the write fails")
	}
}

func TestReload(t *testing.T) {
	f := &fakePersistence{}
	s, err := New(f)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// Another process wrote records behind the store's back.
	f.tasks = []*Task{{ID: 42, Title: "external", DueDate: Timestamp{Time: time.Now()}}}
	f.goals = []*Goal{{ID: 50, Title: "goal", Progress: 10}}

	if err := s.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(s.Tasks()) != 1 || s.Tasks()[0].ID != 42 {
		t.Fatalf("expected the external task after reload, got %+v", s.Tasks())
	}

	s.now = func() time.Time { return time.UnixMilli(5) }
	task, err := s.AddTask("new", "", time.Now().Add(time.Hour), PriorityLow, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID <= 50 {
		t.Fatalf("ids must stay above the reloaded maximum, got %d", task.ID)
	}
}

func TestHydration(t *testing.T) {
	f := &fakePersistence{
		tasks: []*Task{{ID: 7, Title: "kept", DueDate: Timestamp{Time: time.Now()}}},
		goals: []*Goal{{ID: 9, Title: "goal", Progress: 40}},
	}
	s, err := New(f)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if len(s.Tasks()) != 1 || len(s.Goals()) != 1 {
		t.Fatalf("expected hydrated collections")
	}

	// New ids must not collide with hydrated ones.
	s.now = func() time.Time { return time.UnixMilli(5) }
	task, err := s.AddTask("new", "", time.Now().Add(time.Hour), PriorityLow, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID <= 9 {
		t.Fatalf("expected id above hydrated maximum, got %d", task.ID)
	}
}
